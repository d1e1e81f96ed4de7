package transport

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panjf2000/ants/v2"
)

func TestCooperativeWriteAndRead(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	ct, err := NewCooperative(client, nil, WithReadBufferCap(16))
	require.NoError(t, err)
	defer ct.Close()

	go func() {
		buf := make([]byte, 64)
		n, _ := server.Read(buf)
		server.Write(buf[:n])
	}()

	require.NoError(t, ct.Write([]byte("ping")))

	select {
	case chunk := <-ct.Inbound():
		require.NoError(t, chunk.Err)
		assert.Equal(t, "ping", string(chunk.Data))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for echoed chunk")
	}
}

func TestCooperativeClosesOwnedPool(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	ct, err := NewCooperative(client, nil)
	require.NoError(t, err)
	assert.True(t, ct.ownPool)

	require.NoError(t, ct.Close())
}

func TestCooperativeUsesSuppliedPoolWithoutReleasingIt(t *testing.T) {
	pool, err := ants.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	client, server := net.Pipe()
	defer server.Close()

	ct, err := NewCooperative(client, pool)
	require.NoError(t, err)
	require.NoError(t, ct.Close())

	assert.False(t, pool.IsClosed())
}

// closeErrConn reports an error from Close, which net.Pipe's own Close
// never does.
type closeErrConn struct{ net.Conn }

func (c closeErrConn) Close() error {
	c.Conn.Close()
	return errors.New("close failed")
}

func TestCooperativeCloseSurfacesConnError(t *testing.T) {
	client, server := net.Pipe()
	server.Close()
	client.Close()

	ct, err := NewCooperative(closeErrConn{client}, nil)
	require.NoError(t, err)

	assert.Error(t, ct.Close())
}
