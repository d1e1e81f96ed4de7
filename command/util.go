package command

import (
	"github.com/pkg/errors"

	"github.com/respkv/client/resp"
)

// Ping builds PING. Output is () when the server's payload is exactly
// "PONG"; any other payload is a conversion error.
func Ping() Command[struct{}] {
	return Command[struct{}]{
		Name: "PING",
		Convert: func(v resp.Value) (struct{}, error) {
			if v.Kind == resp.KindServerError {
				return struct{}{}, NewRedisReturnedError(v.Err)
			}
			s, err := resp.AsString(v)
			if err != nil {
				return struct{}{}, err
			}
			if s != "PONG" {
				return struct{}{}, errors.Errorf("command: ping response %q is not PONG", s)
			}
			return struct{}{}, nil
		},
	}
}

// Echo builds ECHO text. Output is the text the server echoed back.
// Non-UTF-8 payloads fail at conversion; callers needing a binary echo
// should issue Raw("ECHO", resp.ArgBytes(payload)) and convert the result
// with resp.AsBytes instead.
func Echo(text string) Command[string] {
	return Command[string]{
		Name: "ECHO",
		Args: []resp.Arg{resp.ArgString(text)},
		Convert: func(v resp.Value) (string, error) {
			if v.Kind == resp.KindServerError {
				return "", NewRedisReturnedError(v.Err)
			}
			return resp.AsString(v)
		},
	}
}
