package command

import (
	"time"

	"github.com/respkv/client/resp"
)

// SetOption configures SET's optional expiry. Existence guards are
// expressed by which builder is called (Set, SetIfExists,
// SetIfNotExists), not by an option, since they change the declared
// output type (() versus bool).
type SetOption func(*setOptions)

type setOptions struct {
	expiry time.Duration
}

// WithExpiry sets SET's PX expiry in milliseconds, rounding down to
// millisecond precision. Expiry must be strictly positive; a
// non-positive duration is a programming error and panics immediately.
func WithExpiry(d time.Duration) SetOption {
	if d <= 0 {
		panic("command: SET expiry must be strictly positive")
	}
	return func(o *setOptions) { o.expiry = d }
}

func buildSetArgs(key string, value resp.Arg, guard string, opts []SetOption) []resp.Arg {
	validateKey(key)
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	args := []resp.Arg{resp.ArgString(key), value}
	if o.expiry > 0 {
		args = append(args, resp.ArgString("PX"), resp.ArgInt(o.expiry.Milliseconds()))
	}
	if guard != "" {
		args = append(args, resp.ArgString(guard))
	}
	return args
}

// Set builds SET key value [PX millis]. Output is () on success.
func Set(key string, value resp.Arg, opts ...SetOption) Command[struct{}] {
	return Command[struct{}]{
		Name:    "SET",
		Args:    buildSetArgs(key, value, "", opts),
		Convert: unitConvert,
	}
}

// SetIfExists builds SET key value [PX millis] XX. Output is true iff the
// server performed the set (a Null response means it did not, because the
// key did not already exist).
func SetIfExists(key string, value resp.Arg, opts ...SetOption) Command[bool] {
	return Command[bool]{
		Name:    "SET",
		Args:    buildSetArgs(key, value, "XX", opts),
		Convert: guardConvert,
	}
}

// SetIfNotExists builds SET key value [PX millis] NX. Output is true iff
// the server performed the set.
func SetIfNotExists(key string, value resp.Arg, opts ...SetOption) Command[bool] {
	return Command[bool]{
		Name:    "SET",
		Args:    buildSetArgs(key, value, "NX", opts),
		Convert: guardConvert,
	}
}

func guardConvert(v resp.Value) (bool, error) {
	if v.Kind == resp.KindServerError {
		return false, NewRedisReturnedError(v.Err)
	}
	return !v.Null(), nil
}
