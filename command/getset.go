package command

import "github.com/respkv/client/resp"

// GetSet builds GETSET key value: atomically sets key to value and
// returns its previous contents. Output is Optional[T], Present false
// when the key had no previous value.
func GetSet[T any](key string, value resp.Arg, convert func(resp.Value) (T, error)) Command[Optional[T]] {
	validateKey(key)
	return Command[Optional[T]]{
		Name:    "GETSET",
		Args:    []resp.Arg{resp.ArgString(key), value},
		Convert: optionalConvert(convert),
	}
}
