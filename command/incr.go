package command

import "github.com/respkv/client/resp"

func intCommand(name, key string) Command[int64] {
	return Command[int64]{
		Name:    name,
		Args:    []resp.Arg{resp.ArgString(key)},
		Convert: intConvert,
	}
}

func intCommandWithArg(name, key string, n int64) Command[int64] {
	return Command[int64]{
		Name:    name,
		Args:    []resp.Arg{resp.ArgString(key), resp.ArgInt(n)},
		Convert: intConvert,
	}
}

// Incr builds INCR key. Output is the resulting value.
func Incr(key string) Command[int64] {
	validateKey(key)
	return intCommand("INCR", key)
}

// Decr builds DECR key.
func Decr(key string) Command[int64] {
	validateKey(key)
	return intCommand("DECR", key)
}

// IncrBy collapses to INCR/DECR when |n| == 1, otherwise to
// INCRBY/DECRBY with a positive magnitude: the sign flips the command
// name, never the encoded argument. incr_by("k", -1) therefore encodes
// exactly as DECR k, and incr_by("k", 120) encodes exactly as
// INCRBY k 120, per spec.md scenario L.
func IncrBy(key string, n int64) Command[int64] {
	validateKey(key)
	switch {
	case n == 1:
		return intCommand("INCR", key)
	case n == -1:
		return intCommand("DECR", key)
	case n >= 0:
		return intCommandWithArg("INCRBY", key, n)
	default:
		return intCommandWithArg("DECRBY", key, -n)
	}
}

// DecrBy decrements key by n; it is defined in terms of IncrBy with the
// sign flipped so the same collapse rule applies.
func DecrBy(key string, n int64) Command[int64] {
	return IncrBy(key, -n)
}

func floatCommand(key string, x float64) Command[float64] {
	return Command[float64]{
		Name: "INCRBYFLOAT",
		Args: []resp.Arg{resp.ArgString(key), resp.ArgFloat(x)},
		Convert: func(v resp.Value) (float64, error) {
			if v.Kind == resp.KindServerError {
				return 0, NewRedisReturnedError(v.Err)
			}
			return resp.AsFloat64(v)
		},
	}
}

// IncrByFloat builds INCRBYFLOAT key x.
func IncrByFloat(key string, x float64) Command[float64] {
	validateKey(key)
	return floatCommand(key, x)
}

// DecrByFloat builds INCRBYFLOAT key -x; Redis has no DECRBYFLOAT, so the
// sign is folded into the argument instead of the command name.
func DecrByFloat(key string, x float64) Command[float64] {
	validateKey(key)
	return floatCommand(key, -x)
}
