package command

import "github.com/respkv/client/resp"

// MGet builds MGET k1 k2 .... Output is one Optional[T] per input key, in
// the same order, Present false wherever the server returned Null.
func MGet[T any](keys []string, convert func(resp.Value) (T, error)) Command[[]Optional[T]] {
	args := make([]resp.Arg, len(keys))
	for i, k := range keys {
		validateKey(k)
		args[i] = resp.ArgString(k)
	}
	elem := optionalConvert(convert)
	return Command[[]Optional[T]]{
		Name: "MGET",
		Args: args,
		Convert: func(v resp.Value) ([]Optional[T], error) {
			if v.Kind == resp.KindServerError {
				return nil, NewRedisReturnedError(v.Err)
			}
			return resp.AsSlice(v, elem)
		},
	}
}
