package resp

import "strconv"

// appendPrefix appends a "<marker><decimal>\r\n" header, used for both the
// ":" integer frame and the "*"/"$" length headers. Grounded on
// IceFireDB-redhub/pkg/resp.appendPrefix.
func appendPrefix(b []byte, marker byte, n int64) []byte {
	b = append(b, marker)
	b = strconv.AppendInt(b, n, 10)
	return append(b, '\r', '\n')
}

// AppendArrayHeader appends a RESP array header "*<n>\r\n". Callers append
// n elements themselves.
func AppendArrayHeader(b []byte, n int) []byte {
	return appendPrefix(b, '*', int64(n))
}

// AppendBulk appends a RESP bulk string "$<len>\r\n<bytes>\r\n". The byte
// length, not a character count, is used as the length prefix so arbitrary
// 8-bit-clean payloads round-trip exactly.
func AppendBulk(b []byte, bulk []byte) []byte {
	b = appendPrefix(b, '$', int64(len(bulk)))
	b = append(b, bulk...)
	return append(b, '\r', '\n')
}

// AppendBulkString is a convenience wrapper around AppendBulk for text.
func AppendBulkString(b []byte, s string) []byte {
	b = appendPrefix(b, '$', int64(len(s)))
	b = append(b, s...)
	return append(b, '\r', '\n')
}

// EncodeCommand builds the bulk-array request frame for a command name and
// its arguments: "*<count>\r\n" followed by one "$<len>\r\n<bytes>\r\n" per
// element, where count includes the command name itself. The encoder is
// total: every (name, args) pair it is given produces a well-formed frame.
func EncodeCommand(name string, args [][]byte) []byte {
	out := AppendArrayHeader(make([]byte, 0, 32), 1+len(args))
	out = AppendBulkString(out, name)
	for _, a := range args {
		out = AppendBulk(out, a)
	}
	return out
}
