package command

import "github.com/respkv/client/resp"

// Pair is one key/value entry for MSet/MSetIfNoneExists.
type Pair struct {
	Key   string
	Value resp.Arg
}

func msetArgs(pairs []Pair) []resp.Arg {
	args := make([]resp.Arg, 0, len(pairs)*2)
	for _, p := range pairs {
		validateKey(p.Key)
		args = append(args, resp.ArgString(p.Key), p.Value)
	}
	return args
}

// MSet builds MSET k1 v1 k2 v2 .... Output is () on success.
func MSet(pairs []Pair) Command[struct{}] {
	return Command[struct{}]{
		Name:    "MSET",
		Args:    msetArgs(pairs),
		Convert: unitConvert,
	}
}

// MSetIfNoneExists builds MSETNX k1 v1 k2 v2 .... Output is true iff the
// server performed the set (it refuses if any key already existed).
func MSetIfNoneExists(pairs []Pair) Command[bool] {
	return Command[bool]{
		Name:    "MSETNX",
		Args:    msetArgs(pairs),
		Convert: boolFromOneZero,
	}
}

func boolFromOneZero(v resp.Value) (bool, error) {
	if v.Kind == resp.KindServerError {
		return false, NewRedisReturnedError(v.Err)
	}
	n, err := resp.AsInt64(v)
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
