package command

import "github.com/respkv/client/resp"

// Get builds GET key. Output is Optional[T]: Present is false when the
// server responded with Null. convert decodes a present byte-string (or
// whichever Value kind the server returns) into T; callers typically pass
// resp.AsString, resp.AsInt64, or resp.AsBytes.
func Get[T any](key string, convert func(resp.Value) (T, error)) Command[Optional[T]] {
	validateKey(key)
	return Command[Optional[T]]{
		Name:    "GET",
		Args:    []resp.Arg{resp.ArgString(key)},
		Convert: optionalConvert(convert),
	}
}

// GetWithDefault builds GET key, converting a Null response to def
// instead of an absent Optional.
func GetWithDefault[T any](key string, convert func(resp.Value) (T, error), def T) Command[T] {
	validateKey(key)
	return Command[T]{
		Name: "GET",
		Args: []resp.Arg{resp.ArgString(key)},
		Convert: func(v resp.Value) (T, error) {
			if v.Kind == resp.KindServerError {
				var zero T
				return zero, NewRedisReturnedError(v.Err)
			}
			if v.Null() {
				return def, nil
			}
			return convert(v)
		},
	}
}
