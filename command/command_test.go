package command

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/respkv/client/resp"
)

func TestValidateKeyPanicsOverLimit(t *testing.T) {
	oversized := strings.Repeat("k", maxKeyBytes+1)
	require.Panics(t, func() {
		Set(oversized, resp.ArgString("v"))
	})
}

func TestValidateKeyAllowsAtLimit(t *testing.T) {
	atLimit := strings.Repeat("k", maxKeyBytes)
	require.NotPanics(t, func() {
		Set(atLimit, resp.ArgString("v"))
	})
}

func TestRawEncodesAndConvertsServerError(t *testing.T) {
	cmd := Raw("TYPE", resp.ArgString("my-key"))
	assert.Equal(t, "*2\r\n$4\r\nTYPE\r\n$6\r\nmy-key\r\n", string(cmd.Encode()))

	_, err := cmd.Convert(resp.ServerErr([]byte("ERR no such key")))
	require.Error(t, err)
	var rre *RedisReturnedError
	require.ErrorAs(t, err, &rre)
}

// Scenario I.
func TestSetWithExpiryEncoding(t *testing.T) {
	cmd := Set("my-first-key", resp.ArgInt(42), WithExpiry(400*time.Second))
	want := "*5\r\n$3\r\nSET\r\n$12\r\nmy-first-key\r\n$2\r\n42\r\n$2\r\nPX\r\n$6\r\n400000\r\n"
	assert.Equal(t, want, string(cmd.Encode()))
}

func TestWithExpiryRejectsNonPositive(t *testing.T) {
	require.Panics(t, func() { WithExpiry(0) })
	require.Panics(t, func() { WithExpiry(-1) })
}

func TestSetIfExistsConvertsNullToFalse(t *testing.T) {
	cmd := SetIfExists("k", resp.ArgString("v"))
	assert.Contains(t, string(cmd.Encode()), "XX")

	ok, err := cmd.Convert(resp.NullValue())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = cmd.Convert(resp.Bytes([]byte("OK")))
	require.NoError(t, err)
	assert.True(t, ok)
}

// Scenario J.
func TestSetBitEncodingAndConversion(t *testing.T) {
	cmd := SetBit("test-key", 100, true)
	want := "*4\r\n$6\r\nSETBIT\r\n$8\r\ntest-key\r\n$3\r\n100\r\n$1\r\n1\r\n"
	assert.Equal(t, want, string(cmd.Encode()))

	prior, err := cmd.Convert(resp.Int(0))
	require.NoError(t, err)
	assert.False(t, prior)
}

// Scenario L.
func TestIncrByCollapseRule(t *testing.T) {
	assert.Equal(t, "*2\r\n$4\r\nDECR\r\n$1\r\nk\r\n", string(IncrBy("k", -1).Encode()))
	assert.Equal(t, "*3\r\n$6\r\nINCRBY\r\n$1\r\nk\r\n$3\r\n120\r\n", string(IncrBy("k", 120).Encode()))
	assert.Equal(t, "*2\r\n$4\r\nINCR\r\n$1\r\nk\r\n", string(IncrBy("k", 1).Encode()))
}

func TestDecrByDelegatesToIncrBy(t *testing.T) {
	assert.Equal(t, IncrBy("k", -5).Encode(), DecrBy("k", 5).Encode())
}

func TestGetOptionalConversion(t *testing.T) {
	cmd := Get("k", resp.AsString)

	opt, err := cmd.Convert(resp.NullValue())
	require.NoError(t, err)
	assert.False(t, opt.Present)

	opt, err = cmd.Convert(resp.Bytes([]byte("hello")))
	require.NoError(t, err)
	assert.True(t, opt.Present)
	assert.Equal(t, "hello", opt.Value)
}

func TestGetWithDefault(t *testing.T) {
	cmd := GetWithDefault("k", resp.AsInt64, int64(-1))
	v, err := cmd.Convert(resp.NullValue())
	require.NoError(t, err)
	assert.Equal(t, int64(-1), v)
}

func TestMGetPreservesOrderAndAbsence(t *testing.T) {
	cmd := MGet([]string{"a", "b", "c"}, resp.AsInt64)
	result, err := cmd.Convert(resp.Arr([]resp.Value{
		resp.Int(1),
		resp.NullValue(),
		resp.Int(3),
	}))
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.True(t, result[0].Present)
	assert.Equal(t, int64(1), result[0].Value)
	assert.False(t, result[1].Present)
	assert.True(t, result[2].Present)
	assert.Equal(t, int64(3), result[2].Value)
}

func TestMSetIfNoneExists(t *testing.T) {
	cmd := MSetIfNoneExists([]Pair{{Key: "a", Value: resp.ArgString("1")}, {Key: "b", Value: resp.ArgString("2")}})
	assert.Equal(t, "*5\r\n$7\r\nMSETNX\r\n$1\r\na\r\n$1\r\n1\r\n$1\r\nb\r\n$1\r\n2\r\n", string(cmd.Encode()))

	ok, err := cmd.Convert(resp.Int(1))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cmd.Convert(resp.Int(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBitOpNotRequiresExactlyOneSource(t *testing.T) {
	require.Panics(t, func() { BitOp(BitOpNot, "dest", "a", "b") })
	require.NotPanics(t, func() { BitOp(BitOpNot, "dest", "a") })
}

func TestBitPosNullBecomesAbsent(t *testing.T) {
	cmd := BitPos("k", true)
	opt, err := cmd.Convert(resp.Int(-1))
	require.NoError(t, err)
	assert.False(t, opt.Present)
}

func TestPingRejectsNonPongPayload(t *testing.T) {
	cmd := Ping()
	_, err := cmd.Convert(resp.Bytes([]byte("PONG")))
	require.NoError(t, err)
	_, err = cmd.Convert(resp.Bytes([]byte("WRONG")))
	require.Error(t, err)
}

func TestEchoRejectsNonUtf8(t *testing.T) {
	cmd := Echo("hi")
	_, err := cmd.Convert(resp.Bytes([]byte{0xff, 0xfe}))
	require.Error(t, err)
}
