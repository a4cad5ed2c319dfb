// Package fetch reads raw definition documents from disk, an fs.FS, or HTTP.
// Every reader enforces the same size cap.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"time"
)

// MaxDocumentSize caps a single definition; published ones are a few KiB.
const MaxDocumentSize = 4 << 20

// ErrTooLarge reports a document above MaxDocumentSize.
var ErrTooLarge = fmt.Errorf("fetch: document exceeds %d bytes", MaxDocumentSize)

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: GET %s: unexpected status %s", e.URL, e.Status)
}

// File reads the document at path.
func File(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("fetch: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDocument(f)
}

// FS reads name from files.
func FS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	switch {
	case files == nil:
		return nil, errors.New("fetch: fs is nil")
	case name == "":
		return nil, errors.New("fetch: fs path is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readDocument(f)
}

// HTTP issues a GET for url and returns the body of a 2xx response. A
// positive timeout bounds the whole exchange.
func HTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	switch {
	case client == nil:
		return nil, errors.New("fetch: http client is not configured")
	case url == "":
		return nil, errors.New("fetch: url is required")
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/yaml, text/yaml, text/plain;q=0.9, */*;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<10))
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	return readDocument(resp.Body)
}

// readDocument drains r, failing once more than MaxDocumentSize bytes arrive.
// Directories surface the read error of the underlying file.
func readDocument(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > MaxDocumentSize {
		return nil, ErrTooLarge
	}
	return data, nil
}
