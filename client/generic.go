package client

import (
	"context"

	"github.com/respkv/client/command"
	"github.com/respkv/client/resp"
)

// Get retrieves key and converts it with convert, Present false if the
// key does not exist. A free function, not a (*Client) method, because
// Go methods cannot introduce their own type parameters — the same
// reason pipeline.Await and command.Get are free functions.
func Get[T any](ctx context.Context, c *Client, key string, convert func(resp.Value) (T, error)) (command.Optional[T], error) {
	return Do(ctx, c, command.Get(key, convert))
}

// GetWithDefault retrieves key, converts it with convert, and
// substitutes def when the key does not exist.
func GetWithDefault[T any](ctx context.Context, c *Client, key string, convert func(resp.Value) (T, error), def T) (T, error) {
	return Do(ctx, c, command.GetWithDefault(key, convert, def))
}

// GetSet atomically stores value at key and returns its previous value,
// Present false if it did not exist.
func GetSet[T any](ctx context.Context, c *Client, key string, value resp.Arg, convert func(resp.Value) (T, error)) (command.Optional[T], error) {
	return Do(ctx, c, command.GetSet(key, value, convert))
}

// MGet retrieves keys in order, one Optional[T] per key.
func MGet[T any](ctx context.Context, c *Client, keys []string, convert func(resp.Value) (T, error)) ([]command.Optional[T], error) {
	return Do(ctx, c, command.MGet(keys, convert))
}

// MSet stores every pair, atomically.
func MSet(ctx context.Context, c *Client, pairs []command.Pair) error {
	_, err := Do(ctx, c, command.MSet(pairs))
	return err
}

// MSetIfNoneExists stores every pair only if none of their keys exist,
// reporting whether the write happened.
func MSetIfNoneExists(ctx context.Context, c *Client, pairs []command.Pair) (bool, error) {
	return Do(ctx, c, command.MSetIfNoneExists(pairs))
}
