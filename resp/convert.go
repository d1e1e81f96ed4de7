package resp

import (
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ConversionErrorKind identifies why a Value could not be converted to the
// type a caller requested.
type ConversionErrorKind int

const (
	// ErrNoConversionTypeMatch means the Value's Kind cannot be converted
	// to the requested Go type at all (e.g. asking an array for AsInt64).
	ErrNoConversionTypeMatch ConversionErrorKind = iota
	// ErrCannotParseStringResponse means the Value was a byte string whose
	// contents did not parse as the requested numeric type, or a number
	// outside what the requested type accepts (out of range for AsUint32,
	// neither 0 nor 1 for AsBool).
	ErrCannotParseStringResponse
	// ErrInvalidUTF8String means AsString was called on a byte string
	// whose contents are not valid UTF-8.
	ErrInvalidUTF8String
)

// ConversionError reports a failed Value-to-Go-type conversion. It is
// returned by every As* helper and by generated command Convert functions.
type ConversionError struct {
	Kind ConversionErrorKind
	From Kind
	To   string
	err  error
}

func (e *ConversionError) Error() string { return e.err.Error() }
func (e *ConversionError) Unwrap() error { return e.err }

func convErr(kind ConversionErrorKind, from Kind, to string, format string, args ...any) *ConversionError {
	return &ConversionError{
		Kind: kind,
		From: from,
		To:   to,
		err:  errors.Errorf("resp: "+format, args...),
	}
}

func noMatch(v Value, to string) *ConversionError {
	return convErr(ErrNoConversionTypeMatch, v.Kind, to, "cannot convert %s to %s", v.Kind, to)
}

// AsInt64 converts an integer Value, or a byte-string Value whose contents
// parse as a base-10 signed integer, to int64.
func AsInt64(v Value) (int64, error) {
	switch v.Kind {
	case KindInteger:
		return v.Integer, nil
	case KindByteString:
		n, err := parseInt64(v.ByteString)
		if err != nil {
			return 0, convErr(ErrCannotParseStringResponse, v.Kind, "int64", "cannot parse %q as int64", v.ByteString)
		}
		return n, nil
	default:
		return 0, noMatch(v, "int64")
	}
}

// AsUint32 converts via AsInt64 and range-checks the result.
func AsUint32(v Value) (uint32, error) {
	n, err := AsInt64(v)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > int64(^uint32(0)) {
		return 0, convErr(ErrCannotParseStringResponse, v.Kind, "uint32", "%d out of range for uint32", n)
	}
	return uint32(n), nil
}

// AsFloat64 converts a byte-string Value whose contents parse as a decimal
// float to float64. Redis itself only ever returns floats as bulk strings.
func AsFloat64(v Value) (float64, error) {
	switch v.Kind {
	case KindByteString:
		f, err := parseFloat64(v.ByteString)
		if err != nil {
			return 0, convErr(ErrCannotParseStringResponse, v.Kind, "float64", "cannot parse %q as float64", v.ByteString)
		}
		return f, nil
	case KindInteger:
		return float64(v.Integer), nil
	default:
		return 0, noMatch(v, "float64")
	}
}

// AsBytes returns a byte-string Value's raw payload unchanged.
func AsBytes(v Value) ([]byte, error) {
	if v.Kind != KindByteString {
		return nil, noMatch(v, "[]byte")
	}
	return v.ByteString, nil
}

// AsString converts a byte-string Value to a string, rejecting payloads
// that are not valid UTF-8.
func AsString(v Value) (string, error) {
	if v.Kind != KindByteString {
		return "", noMatch(v, "string")
	}
	if !utf8.Valid(v.ByteString) {
		return "", convErr(ErrInvalidUTF8String, v.Kind, "string", "byte string is not valid utf8")
	}
	return string(v.ByteString), nil
}

// AsBool converts the integers 0 and 1 to false and true. Any other
// integer, or any non-integer Value, is a conversion error.
func AsBool(v Value) (bool, error) {
	n, err := AsInt64(v)
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, convErr(ErrCannotParseStringResponse, v.Kind, "bool", "%d is not a valid bool", n)
	}
}

// AsOptionalInt64 converts Null to (0, false) and everything else via
// AsInt64 to (n, true).
func AsOptionalInt64(v Value) (int64, bool, error) {
	if v.Null() {
		return 0, false, nil
	}
	n, err := AsInt64(v)
	return n, err == nil, err
}

// AsOptionalString converts Null to ("", false) and everything else via
// AsString to (s, true).
func AsOptionalString(v Value) (string, bool, error) {
	if v.Null() {
		return "", false, nil
	}
	s, err := AsString(v)
	return s, err == nil, err
}

// AsOptionalBytes converts Null to (nil, false) and everything else via
// AsBytes to (b, true).
func AsOptionalBytes(v Value) ([]byte, bool, error) {
	if v.Null() {
		return nil, false, nil
	}
	b, err := AsBytes(v)
	return b, err == nil, err
}

// AsSlice converts an array Value by applying conv to each element,
// stopping at and returning the first conversion error. This is the one
// generic conversion helper in the package: it is deliberately narrow
// (slice-of-element-type only) rather than a general Value-to-T generic,
// per the design note that per-command Convert functions, not a single
// generic entry point, are the primary conversion API.
func AsSlice[T any](v Value, conv func(Value) (T, error)) ([]T, error) {
	if v.Kind != KindArray {
		var zero []T
		return zero, noMatch(v, "array")
	}
	out := make([]T, len(v.Array))
	for i, elem := range v.Array {
		converted, err := conv(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}
		out[i] = converted
	}
	return out, nil
}

func parseInt64(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, errors.New("empty")
	}
	neg := false
	i := 0
	if b[0] == '-' || b[0] == '+' {
		neg = b[0] == '-'
		i = 1
	}
	if i == len(b) {
		return 0, errors.New("no digits")
	}
	var n int64
	for ; i < len(b); i++ {
		if b[i] < '0' || b[i] > '9' {
			return 0, errors.Errorf("invalid digit %q", b[i])
		}
		n = n*10 + int64(b[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}

func parseFloat64(b []byte) (float64, error) {
	return strconv.ParseFloat(string(b), 64)
}
