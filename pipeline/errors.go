package pipeline

import "github.com/pkg/errors"

// ConnectionError means the transport's underlying I/O failed while the
// pipeline was awaiting a response.
type ConnectionError struct {
	cause error
}

func newConnectionError(cause error) *ConnectionError {
	return &ConnectionError{cause: errors.Wrap(cause, "pipeline: connection error")}
}

func (e *ConnectionError) Error() string { return e.cause.Error() }
func (e *ConnectionError) Unwrap() error { return e.cause }

// InternalConnectionError means the inbound channel closed before a
// response arrived: the transport's reader exited without reporting an
// I/O error, most often because the pipeline's transport was closed while
// a command was still in flight.
type InternalConnectionError struct {
	cause error
}

func newInternalConnectionError() *InternalConnectionError {
	return &InternalConnectionError{cause: errors.New("pipeline: inbound channel closed before a response was received")}
}

func (e *InternalConnectionError) Error() string { return e.cause.Error() }
func (e *InternalConnectionError) Unwrap() error { return e.cause }

// ProtocolParseError means the byte stream violated the RESP grammar; the
// wrapped cause is a *resp.ParseError carrying the specific kind.
type ProtocolParseError struct {
	cause error
}

func newProtocolParseError(cause error) *ProtocolParseError {
	return &ProtocolParseError{cause: errors.Wrap(cause, "pipeline: protocol parse error")}
}

func (e *ProtocolParseError) Error() string { return e.cause.Error() }
func (e *ProtocolParseError) Unwrap() error { return e.cause }
