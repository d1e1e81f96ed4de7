// Package transport provides two connection drivers: a blocking driver
// (one background goroutine per connection) and a cooperative driver
// (reader submitted to a shared task pool). Both produce pipeline.Chunk
// values on an inbound channel and expose a synchronous Write, so either
// can drive a pipeline.Pipeline interchangeably.
package transport

import "time"

const defaultReadBufferCap = 64 * 1024

type options struct {
	readBufferCap int
	releaseWait   time.Duration
}

func defaultOptions() options {
	return options{
		readBufferCap: defaultReadBufferCap,
		releaseWait:   5 * time.Second,
	}
}

// Option configures a transport driver.
type Option func(*options)

// WithReadBufferCap overrides the fixed-size buffer the reader allocates
// per Read call. Grounded on IceFireDB-redhub's Options.ReadBufferCap,
// whose default this package also adopts (64KiB).
func WithReadBufferCap(n int) Option {
	return func(o *options) { o.readBufferCap = n }
}

// WithReleaseWait bounds how long Cooperative.Close waits for its
// owned task pool to drain before reporting a release error.
func WithReleaseWait(d time.Duration) Option {
	return func(o *options) { o.releaseWait = d }
}
