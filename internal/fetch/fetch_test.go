package fetch

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "def.yml")
	require.NoError(t, os.WriteFile(path, []byte("id: demo\n"), 0o644))

	data, err := File(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "id: demo\n", string(data))

	_, err = File(context.Background(), filepath.Join(dir, "missing.yml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = File(context.Background(), "")
	assert.Error(t, err)
}

func TestFileHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := File(ctx, "whatever.yml")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.yml")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("#"), MaxDocumentSize+1), 0o644))

	_, err := File(context.Background(), path)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestFS(t *testing.T) {
	files := fstest.MapFS{"defs/demo.yml": {Data: []byte("id: demo")}}

	data, err := FS(context.Background(), files, "defs/demo.yml")
	require.NoError(t, err)
	assert.Equal(t, "id: demo", string(data))

	_, err = FS(context.Background(), files, "defs/other.yml")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = FS(context.Background(), nil, "defs/demo.yml")
	assert.Error(t, err)
}

func TestHTTP(t *testing.T) {
	var accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		switch r.URL.Path {
		case "/missing.yml":
			http.NotFound(w, r)
		case "/slow.yml":
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("id: slow"))
		default:
			_, _ = w.Write([]byte("id: remote"))
		}
	}))
	defer srv.Close()

	data, err := HTTP(context.Background(), srv.Client(), srv.URL+"/demo.yml", 0)
	require.NoError(t, err)
	assert.Equal(t, "id: remote", string(data))
	assert.Contains(t, accept, "application/yaml")

	_, err = HTTP(context.Background(), srv.Client(), srv.URL+"/missing.yml", 0)
	var status *StatusError
	require.True(t, errors.As(err, &status), "got %v", err)
	assert.Equal(t, http.StatusNotFound, status.Code)
	assert.Contains(t, err.Error(), "/missing.yml")

	_, err = HTTP(context.Background(), srv.Client(), srv.URL+"/slow.yml", 20*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = HTTP(context.Background(), nil, srv.URL, 0)
	assert.Error(t, err)
}
