// Package client ties the resp/command/pipeline/transport layers into
// the ergonomic surface most callers use: Dial a connection and call one
// method per command, instead of constructing a command.Command and
// driving a pipeline.Pipeline by hand.
package client

import (
	"context"
	"net"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/respkv/client/command"
	"github.com/respkv/client/pipeline"
	"github.com/respkv/client/resp"
	"github.com/respkv/client/transport"
)

// driver is the subset of transport.Blocking/transport.Cooperative a
// Client depends on.
type driver interface {
	Inbound() <-chan pipeline.Chunk
	Write([]byte) error
	Close() error
}

// Client is a single connection to a server, wrapping one Pipeline.
// It is not safe for concurrent typed-command calls: callers issuing
// commands from multiple goroutines must synchronize externally or use
// one Client per goroutine.
type Client struct {
	conn     net.Conn
	drv      driver
	pipeline *pipeline.Pipeline
	logger   *zap.Logger
}

// Dial connects to address over network (e.g. "tcp", "host:6379") and
// wraps the connection in a Client. Equivalent to
// DialContext(context.Background(), ...).
func Dial(network, address string, opts ...Option) (*Client, error) {
	return DialContext(context.Background(), network, address, opts...)
}

// DialContext connects to address, honoring ctx's deadline/cancellation
// for the dial itself (not for subsequent commands, which each take
// their own context).
func DialContext(ctx context.Context, network, address string, opts ...Option) (*Client, error) {
	conn, err := (&net.Dialer{}).DialContext(ctx, network, address)
	if err != nil {
		return nil, err
	}
	return newClient(conn, opts...)
}

func newClient(conn net.Conn, opts ...Option) (*Client, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var drv driver
	if o.cooperative {
		ct, err := transport.NewCooperative(conn, nil, o.transport...)
		if err != nil {
			conn.Close()
			return nil, err
		}
		drv = ct
	} else {
		drv = transport.NewBlocking(conn, o.transport...)
	}

	p := pipeline.New(drv.Inbound(), drv.Write, o.logger, o.sink.Metrics())

	return &Client{
		conn:     conn,
		drv:      drv,
		pipeline: p,
		logger:   o.logger,
	}, nil
}

// Close releases the Client's transport and pipeline resources. It is
// idempotent: calling Close more than once returns the first error, if
// any, and is otherwise a no-op on subsequent calls.
func (c *Client) Close() error {
	c.pipeline.Close()
	return c.drv.Close()
}

// Do is the generic escape hatch every typed method below is built
// from: it encodes cmd, awaits its response, and converts it to T. Free
// function rather than a (*Client) method because Go methods cannot
// introduce their own type parameters.
func Do[T any](ctx context.Context, c *Client, cmd command.Command[T]) (T, error) {
	encoded := cmd.Encode()
	c.logger.Debug("issuing command",
		zap.String("name", cmd.Name),
		zap.Uint64("hash", xxhash.Sum64(encoded)),
	)
	return pipeline.Await(ctx, c.pipeline, cmd)
}

// Raw issues an arbitrary command this library has no dedicated builder
// for, returning the server's response unconverted.
func (c *Client) Raw(ctx context.Context, name string, args ...resp.Arg) (resp.Value, error) {
	return Do(ctx, c, command.Raw(name, args...))
}

// Set stores value at key, subject to opts (WithExpiry, ...).
func (c *Client) Set(ctx context.Context, key string, value resp.Arg, opts ...command.SetOption) error {
	_, err := Do(ctx, c, command.Set(key, value, opts...))
	return err
}

// SetAny casts value to its string representation via spf13/cast before
// storing it, a convenience for callers holding loosely-typed data (CLI
// flags, JSON-decoded values, ...) who would otherwise hand-convert to
// resp.Arg themselves.
func (c *Client) SetAny(ctx context.Context, key string, value any, opts ...command.SetOption) error {
	s, err := cast.ToStringE(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, resp.ArgString(s), opts...)
}

// SetIfExists stores value at key only if key already exists (SET ...
// XX), reporting whether the write happened.
func (c *Client) SetIfExists(ctx context.Context, key string, value resp.Arg, opts ...command.SetOption) (bool, error) {
	return Do(ctx, c, command.SetIfExists(key, value, opts...))
}

// SetIfNotExists stores value at key only if key is absent (SET ... NX),
// reporting whether the write happened.
func (c *Client) SetIfNotExists(ctx context.Context, key string, value resp.Arg, opts ...command.SetOption) (bool, error) {
	return Do(ctx, c, command.SetIfNotExists(key, value, opts...))
}

// GetBytes retrieves key's raw bytes, Present false if it does not exist.
func (c *Client) GetBytes(ctx context.Context, key string) (command.Optional[[]byte], error) {
	return Get(ctx, c, key, resp.AsBytes)
}

// GetString retrieves key's value as a UTF-8 string, Present false if it
// does not exist.
func (c *Client) GetString(ctx context.Context, key string) (command.Optional[string], error) {
	return Get(ctx, c, key, resp.AsString)
}

// Del deletes keys, returning the count actually removed.
func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	return Do(ctx, c, command.Del(keys...))
}

// Exists counts how many of keys are present.
func (c *Client) Exists(ctx context.Context, keys ...string) (int64, error) {
	return Do(ctx, c, command.Exists(keys...))
}

// Incr increments key by 1.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return Do(ctx, c, command.Incr(key))
}

// Decr decrements key by 1.
func (c *Client) Decr(ctx context.Context, key string) (int64, error) {
	return Do(ctx, c, command.Decr(key))
}

// IncrBy adds n to key, collapsing to INCR/DECR for |n|==1 per
// command.IncrBy's encoding rule.
func (c *Client) IncrBy(ctx context.Context, key string, n int64) (int64, error) {
	return Do(ctx, c, command.IncrBy(key, n))
}

// DecrBy subtracts n from key.
func (c *Client) DecrBy(ctx context.Context, key string, n int64) (int64, error) {
	return Do(ctx, c, command.DecrBy(key, n))
}

// IncrByFloat adds x to key.
func (c *Client) IncrByFloat(ctx context.Context, key string, x float64) (float64, error) {
	return Do(ctx, c, command.IncrByFloat(key, x))
}

// SetBit sets the bit at offset within key, returning its previous value.
func (c *Client) SetBit(ctx context.Context, key string, offset int64, bit bool) (bool, error) {
	return Do(ctx, c, command.SetBit(key, offset, bit))
}

// GetBit returns the bit at offset within key.
func (c *Client) GetBit(ctx context.Context, key string, offset int64) (bool, error) {
	return Do(ctx, c, command.GetBit(key, offset))
}

// BitCount counts set bits across the whole of key.
func (c *Client) BitCount(ctx context.Context, key string) (uint32, error) {
	return Do(ctx, c, command.BitCount(key))
}

// BitOp applies op across sources, storing the result at dest and
// returning the length of the resulting string.
func (c *Client) BitOp(ctx context.Context, op command.BitOperator, dest string, sources ...string) (uint32, error) {
	return Do(ctx, c, command.BitOp(op, dest, sources...))
}

// Ping round-trips PING.
func (c *Client) Ping(ctx context.Context) error {
	_, err := Do(ctx, c, command.Ping())
	return err
}

// Echo round-trips text through ECHO.
func (c *Client) Echo(ctx context.Context, text string) (string, error) {
	return Do(ctx, c, command.Echo(text))
}
