package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/respkv/client/resp"
)

// fakeServer echoes a canned RESP script back for each request it reads,
// enough to drive a Client through a handful of typed calls without a
// real server.
func fakeServer(t *testing.T, server net.Conn, script map[string]string) {
	t.Helper()
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := server.Read(buf)
			if err != nil {
				return
			}
			req := string(buf[:n])
			if resp, ok := script[req]; ok {
				server.Write([]byte(resp))
			}
		}
	}()
}

func TestClientSetAndGetString(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	fakeServer(t, serverConn, map[string]string{
		"*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n": "+OK\r\n",
		"*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n":               "$3\r\nbar\r\n",
	})

	c, err := newClient(clientConn)
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, c.Set(ctx, "foo", resp.ArgString("bar")))

	got, err := c.GetString(ctx, "foo")
	require.NoError(t, err)
	assert.True(t, got.Present)
	assert.Equal(t, "bar", got.Value)
}

func TestClientGetStringAbsentKey(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	fakeServer(t, serverConn, map[string]string{
		"*2\r\n$3\r\nGET\r\n$4\r\nnope\r\n": "$-1\r\n",
	})

	c, err := newClient(clientConn)
	require.NoError(t, err)
	defer c.Close()

	ctx := context.Background()
	got, err := c.GetString(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, got.Present)
}

func TestClientIncrByCollapsesToIncr(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	fakeServer(t, serverConn, map[string]string{
		"*2\r\n$4\r\nINCR\r\n$7\r\ncounter\r\n": ":1\r\n",
	})

	c, err := newClient(clientConn)
	require.NoError(t, err)
	defer c.Close()

	got, err := c.IncrBy(context.Background(), "counter", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestClientPingRejectsUnexpectedReply(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	fakeServer(t, serverConn, map[string]string{
		"*1\r\n$4\r\nPING\r\n": "+NOTPONG\r\n",
	})

	c, err := newClient(clientConn)
	require.NoError(t, err)
	defer c.Close()

	err = c.Ping(context.Background())
	assert.Error(t, err)
}

func TestClientCloseIsIdempotent(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	c, err := newClient(clientConn)
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}

func TestDialFirstReachableFallsBackToSecondAddress(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4096)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				return
			}
			if string(buf[:n]) == "*1\r\n$4\r\nPING\r\n" {
				conn.Write([]byte("+PONG\r\n"))
			}
		}
	}()

	unreachable := "127.0.0.1:1"
	c, err := DialFirstReachable(context.Background(), "tcp", []string{unreachable, ln.Addr().String()})
	require.NoError(t, err)
	defer c.Close()

	require.NoError(t, c.Ping(context.Background()))
}

func TestDialFirstReachableAggregatesErrors(t *testing.T) {
	_, err := DialFirstReachable(context.Background(), "tcp", []string{"127.0.0.1:1", "127.0.0.1:2"})
	assert.Error(t, err)
}
