package command

import "github.com/respkv/client/resp"

func keysToArgs(keys []string) []resp.Arg {
	args := make([]resp.Arg, len(keys))
	for i, k := range keys {
		validateKey(k)
		args[i] = resp.ArgString(k)
	}
	return args
}

// Del builds DEL key.... Output is the number of keys actually removed.
// Supplemented per SPEC_FULL.md: implied by the original command module
// list but no dedicated source file survived filtering.
func Del(keys ...string) Command[int64] {
	return Command[int64]{
		Name:    "DEL",
		Args:    keysToArgs(keys),
		Convert: intConvert,
	}
}

// Exists builds EXISTS key.... Output is the number of the given keys
// that exist (a key repeated in the argument list is counted once per
// occurrence, matching the server's own behavior).
func Exists(keys ...string) Command[int64] {
	return Command[int64]{
		Name:    "EXISTS",
		Args:    keysToArgs(keys),
		Convert: intConvert,
	}
}
