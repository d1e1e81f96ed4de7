package transport

import (
	"net"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/multierr"

	"github.com/respkv/client/pipeline"
)

// Cooperative is the cooperative connection driver: the reader runs as
// a task submitted to an ants.Pool instead of a bare goroutine.
// Grounded on IceFireDB-redhub's own indirect dependency on
// panjf2000/ants/v2 (pulled in transitively via gnet there; used
// directly here).
type Cooperative struct {
	conn    net.Conn
	pool    *ants.Pool
	ownPool bool
	inbound chan pipeline.Chunk
	opts    options

	closeOnce sync.Once
	closeErr  error
}

// NewCooperative submits the reader task to pool, or to a freshly
// created single-worker pool if pool is nil (in which case Close also
// releases it).
func NewCooperative(conn net.Conn, pool *ants.Pool, opts ...Option) (*Cooperative, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ownPool := false
	if pool == nil {
		var err error
		pool, err = ants.NewPool(1)
		if err != nil {
			return nil, err
		}
		ownPool = true
	}

	t := &Cooperative{
		conn:    conn,
		pool:    pool,
		ownPool: ownPool,
		inbound: make(chan pipeline.Chunk),
		opts:    o,
	}
	if err := pool.Submit(t.readLoop); err != nil {
		if ownPool {
			pool.Release()
		}
		return nil, err
	}
	return t, nil
}

// Inbound returns the channel a pipeline.Pipeline consumes Chunks from.
func (t *Cooperative) Inbound() <-chan pipeline.Chunk { return t.inbound }

// Write writes b to the connection synchronously on the calling
// goroutine; only the reader runs on the task pool.
func (t *Cooperative) Write(b []byte) error {
	_, err := t.conn.Write(b)
	return err
}

func (t *Cooperative) readLoop() {
	defer close(t.inbound)
	buf := make([]byte, t.opts.readBufferCap)
	for {
		n, err := t.conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			t.inbound <- pipeline.Chunk{Data: chunk}
		}
		if err != nil {
			t.inbound <- pipeline.Chunk{Err: err}
			return
		}
	}
}

// Close closes the connection and, if Cooperative created its own pool,
// releases it too. The two shutdown errors are independent failure
// sources, combined with multierr rather than one silently shadowing the
// other — the same shape go.uber.org/zap uses multierr for internally.
func (t *Cooperative) Close() error {
	t.closeOnce.Do(func() {
		connErr := t.conn.Close()
		// Drain inbound so the reader can deliver its final Chunk and
		// return, freeing its pool worker.
		go func() {
			for range t.inbound {
			}
		}()
		var poolErr error
		if t.ownPool {
			poolErr = t.pool.ReleaseTimeout(t.opts.releaseWait)
		}
		t.closeErr = multierr.Append(connErr, poolErr)
	})
	return t.closeErr
}
