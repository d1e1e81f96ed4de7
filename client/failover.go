package client

import (
	"context"

	"github.com/hashicorp/go-multierror"
)

// DialFirstReachable tries each of addresses in order and returns a
// Client for the first one that dials successfully. If every address
// fails, the returned error aggregates all of their dial errors.
func DialFirstReachable(ctx context.Context, network string, addresses []string, opts ...Option) (*Client, error) {
	var errs *multierror.Error
	for _, addr := range addresses {
		c, err := DialContext(ctx, network, addr, opts...)
		if err == nil {
			return c, nil
		}
		errs = multierror.Append(errs, err)
	}
	return nil, errs.ErrorOrNil()
}
