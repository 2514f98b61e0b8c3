package system

import (
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreePortAny(t *testing.T) {
	port, err := FreePort(0)

	require.NoError(t, err)
	assert.Greater(t, port, 0)
}

func TestFreePortPreference(t *testing.T) {
	preferred, err := FreePort(0)
	require.NoError(t, err)

	port, err := FreePort(preferred)

	require.NoError(t, err)
	assert.Equal(t, preferred, port)
}

func TestFreePortFallback(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	defer l.Close()

	busy := l.Addr().(*net.TCPAddr).Port

	port, err := FreePort(busy)

	require.NoError(t, err)
	assert.NotEqual(t, busy, port, "port %s is taken", strconv.Itoa(busy))
}
