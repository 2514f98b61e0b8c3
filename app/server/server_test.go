package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/adrianliechti/serve/pkg/cli"
	"github.com/adrianliechti/serve/pkg/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Writer:    out,
		ErrWriter: io.Discard,

		Flags:  Flags(),
		Action: Action,
	}
}

func TestServeFromEnv(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.html"), []byte("hello"), 0644))

	port, err := system.FreePort(9090)
	require.NoError(t, err)

	t.Setenv("PORT", strconv.Itoa(port))
	t.Setenv("SERVE_DIR", root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := &syncBuffer{}
	result := make(chan error, 1)

	go func() {
		result <- newApp(out).RunContext(ctx, []string{"serve"})
	}()

	url := "http://localhost:" + strconv.Itoa(port)

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), url)
	}, 5*time.Second, 20*time.Millisecond)

	assert.Equal(t, "Server running at "+url+"\n", out.String())

	resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/")
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))
	assert.Equal(t, "no-cache, no-store, must-revalidate", resp.Header.Get("Cache-Control"))

	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeBindError(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)

	defer l.Close()

	t.Setenv("PORT", strconv.Itoa(l.Addr().(*net.TCPAddr).Port))
	t.Setenv("SERVE_DIR", t.TempDir())

	out := &syncBuffer{}

	err = newApp(out).RunContext(context.Background(), []string{"serve"})

	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestServeMalformedPort(t *testing.T) {
	for _, env := range []string{"not-a-port", ""} {
		t.Run(env, func(t *testing.T) {
			t.Setenv("PORT", env)
			t.Setenv("SERVE_DIR", t.TempDir())

			out := &syncBuffer{}

			err := newApp(out).RunContext(context.Background(), []string{"serve"})

			assert.Error(t, err)
			assert.NotContains(t, out.String(), "Server running")
		})
	}
}
