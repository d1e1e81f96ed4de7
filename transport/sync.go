package transport

import (
	"net"
	"sync"

	"github.com/respkv/client/pipeline"
)

// Blocking is the blocking connection driver: one background goroutine
// performs blocking conn.Read calls and pushes pipeline.Chunk values onto
// the inbound channel; Write is synchronous on the calling goroutine.
type Blocking struct {
	conn    net.Conn
	inbound chan pipeline.Chunk
	opts    options

	closeOnce sync.Once
	closeErr  error
}

// NewBlocking starts the background reader over conn.
func NewBlocking(conn net.Conn, opts ...Option) *Blocking {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Blocking{
		conn:    conn,
		inbound: make(chan pipeline.Chunk),
		opts:    o,
	}
	go t.readLoop()
	return t
}

// Inbound returns the channel a pipeline.Pipeline consumes Chunks from.
func (t *Blocking) Inbound() <-chan pipeline.Chunk { return t.inbound }

// Write writes b to the connection and returns once it has been handed
// to the kernel.
func (t *Blocking) Write(b []byte) error {
	_, err := t.conn.Write(b)
	return err
}

func (t *Blocking) readLoop() {
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

// Close closes the underlying connection. The reader goroutine observes
// the resulting error on its next Read and exits, closing the inbound
// channel.
func (t *Blocking) Close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}
