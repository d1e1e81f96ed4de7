package client

import (
	"context"

	"github.com/respkv/client/resp"
)

// WithAuth dials address and issues a single AUTH <credential> command
// before returning the Client. A non-nil error means authentication
// failed (typically command.RedisReturnedError) or the dial itself did;
// the Client is nil in both cases.
//
// This lives in package client rather than package transport: a
// transport-level WithAuth returning a *Client would make transport
// import client, while client already imports transport to dial
// connections — a circular import Go disallows.
func WithAuth(ctx context.Context, network, address, credential string, opts ...Option) (*Client, error) {
	c, err := DialContext(ctx, network, address, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := c.Raw(ctx, "AUTH", resp.ArgString(credential)); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}
