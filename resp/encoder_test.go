package resp

import "testing"

func TestEncodeCommand(t *testing.T) {
	got := EncodeCommand("SET", [][]byte{[]byte("my-first-key"), []byte("42")})
	want := "*3\r\n$3\r\nSET\r\n$12\r\nmy-first-key\r\n$2\r\n42\r\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeCommandNoArgs(t *testing.T) {
	got := EncodeCommand("PING", nil)
	want := "*1\r\n$4\r\nPING\r\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Scenario K, encoder side: an 8-bit payload is framed by its byte length
// and written unchanged.
func TestAppendBulkIsByteLengthPrefixed(t *testing.T) {
	payload := []byte{0x00, 0xFF}
	got := AppendBulk(nil, payload)
	want := "$2\r\n\x00\xff\r\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// Property 6: command encoding is always a well-formed bulk-array.
func TestEncodeCommandIsWellFormedBulkArray(t *testing.T) {
	args := [][]byte{[]byte("a"), []byte("bb"), {0x00, 0x01}}
	encoded := EncodeCommand("CMD", args)

	p := NewParser()
	defer p.Release()
	p.Feed(encoded)
	v, status, err := p.Pull()
	if status != StatusValue || err != nil {
		t.Fatalf("encoded command did not parse back: status=%v err=%v", status, err)
	}
	if v.Kind != KindArray || len(v.Array) != 1+len(args) {
		t.Fatalf("got %+v, want %d-element array", v, 1+len(args))
	}
	if string(v.Array[0].ByteString) != "CMD" {
		t.Fatalf("first element = %+v, want CMD", v.Array[0])
	}
	for i, a := range args {
		if string(v.Array[i+1].ByteString) != string(a) {
			t.Fatalf("element %d = %+v, want %q", i+1, v.Array[i+1], a)
		}
	}
}
