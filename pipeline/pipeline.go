// Package pipeline implements spec.md §4.5's sans-I/O command pipeline:
// it binds a resp.Parser to an inbound channel of byte chunks and a
// transport write function, and pairs each issued command with the next
// decoded response in strict FIFO order. Nothing in this package touches
// a socket; it is driven entirely by whatever produces Chunks (see
// package transport).
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/respkv/client/command"
	"github.com/respkv/client/resp"
)

// Chunk is one inbound unit pushed by a transport's reader: either a
// successfully read byte slice, or the I/O error that ended the stream.
type Chunk struct {
	Data []byte
	Err  error
}

// Pipeline binds a resp.Parser to an inbound Chunk channel and a write
// function, serving typed command responses in FIFO order. A Pipeline is
// not safe for concurrent use: spec.md declares concurrent use of a
// single pipeline undefined, and once Await returns a connection-level or
// protocol error the Pipeline is permanently unusable.
type Pipeline struct {
	parser  *resp.Parser
	inbound <-chan Chunk
	write   func([]byte) error

	id      string
	logger  *zap.Logger
	metrics *Metrics

	unusable error
}

// New builds a Pipeline. write is called once per encoded command;
// inbound delivers the chunks a transport's reader produces. logger may
// be nil (a no-op logger is used); metrics may be nil (no observations
// are recorded).
func New(inbound <-chan Chunk, write func([]byte) error, logger *zap.Logger, metrics *Metrics) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Pipeline{
		parser:  resp.NewParser(),
		inbound: inbound,
		write:   write,
		id:      id,
		logger:  logger.With(zap.String("pipeline_id", id)),
		metrics: metrics,
	}
}

// ID returns the pipeline's correlation ID, attached to every log line it
// emits, for distinguishing concurrent Client instances in one process's
// logs.
func (p *Pipeline) ID() string { return p.id }

// Close releases the pipeline's parser buffer back to its pool. The
// pipeline must not be used afterwards.
func (p *Pipeline) Close() {
	p.parser.Release()
}

// Encode renders cmd to its RESP bulk-array request frame. It is a pure
// function of cmd and does not touch the pipeline's state; it exists
// alongside Await as a free function, not a method, because Go methods
// cannot carry their own type parameters.
func Encode[T any](cmd command.Command[T]) []byte {
	return cmd.Encode()
}

// Await writes cmd's encoded request, then blocks until a full response
// has been decoded and converted, or until ctx is cancelled, the
// transport fails, or the stream closes early. Per spec.md §5's
// cancellation policy, any of these permanently poisons the Pipeline:
// every subsequent Await call returns the same unusable error without
// touching the transport again.
func Await[T any](ctx context.Context, p *Pipeline, cmd command.Command[T]) (T, error) {
	var zero T

	if p.unusable != nil {
		return zero, p.unusable
	}

	start := time.Now()

	if err := p.write(cmd.Encode()); err != nil {
		cerr := newConnectionError(err)
		p.fail(cerr)
		p.observe(start, "connection_error")
		return zero, cerr
	}

	for {
		v, status, err := p.parser.Pull()
		switch status {
		case resp.StatusValue:
			result, convErr := cmd.Convert(v)
			if convErr != nil {
				p.logger.Debug("conversion error", zap.Error(convErr))
				p.observe(start, "conversion_error")
				return zero, convErr
			}
			p.observe(start, "value")
			return result, nil

		case resp.StatusErrored:
			perr := newProtocolParseError(err)
			p.fail(perr)
			p.observe(start, "protocol_error")
			return zero, perr

		case resp.StatusNeedMore:
			select {
			case <-ctx.Done():
				p.fail(ctx.Err())
				return zero, ctx.Err()
			case chunk, ok := <-p.inbound:
				if !ok {
					ierr := newInternalConnectionError()
					p.fail(ierr)
					p.observe(start, "connection_error")
					return zero, ierr
				}
				if chunk.Err != nil {
					cerr := newConnectionError(chunk.Err)
					p.fail(cerr)
					p.observe(start, "connection_error")
					return zero, cerr
				}
				p.parser.Feed(chunk.Data)
			}
		}
	}
}

func (p *Pipeline) fail(err error) {
	p.unusable = err
	p.logger.Warn("pipeline is now unusable", zap.Error(err))
}

func (p *Pipeline) observe(start time.Time, outcome string) {
	if p.metrics == nil {
		return
	}
	if p.metrics.Latency != nil {
		p.metrics.Latency.Observe(time.Since(start).Seconds())
	}
	if p.metrics.Outcomes != nil {
		p.metrics.Outcomes.WithLabelValues(outcome).Inc()
	}
}
