package client

import (
	"go.uber.org/zap"

	"github.com/respkv/client/internal/obsmetrics"
	"github.com/respkv/client/transport"
)

type options struct {
	logger      *zap.Logger
	sink        *obsmetrics.Sink
	cooperative bool
	transport   []transport.Option
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// Option configures Dial/DialContext.
type Option func(*options)

// WithLogger attaches logger to the Client and every Pipeline it opens.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithMetrics attaches a shared obsmetrics.Sink. Pass the same Sink to
// every Client in a process to avoid duplicate collector registration.
func WithMetrics(sink *obsmetrics.Sink) Option {
	return func(o *options) { o.sink = sink }
}

// WithCooperativeTransport uses transport.Cooperative (an ants.Pool
// reader task) instead of the default transport.Blocking goroutine.
func WithCooperativeTransport() Option {
	return func(o *options) { o.cooperative = true }
}

// WithTransportOptions forwards opts to the underlying transport driver.
func WithTransportOptions(opts ...transport.Option) Option {
	return func(o *options) { o.transport = append(o.transport, opts...) }
}
