package command

import "github.com/respkv/client/resp"

// RedisReturnedError wraps a server-returned error payload. Every command's
// Convert function checks for resp.KindServerError before attempting its
// own conversion and returns this regardless of the declared output type,
// per spec.md §4.3's "ServerError in the input always yields
// ConversionError::RedisReturnedError(error) regardless of target."
type RedisReturnedError struct {
	inner resp.ServerError
}

// NewRedisReturnedError wraps a decoded server error.
func NewRedisReturnedError(e resp.ServerError) *RedisReturnedError {
	return &RedisReturnedError{inner: e}
}

// ServerError returns the wrapped error payload.
func (e *RedisReturnedError) ServerError() resp.ServerError { return e.inner }

func (e *RedisReturnedError) Error() string {
	return "command: server returned error: " + e.inner.Error()
}

func (e *RedisReturnedError) Unwrap() error { return e.inner }
