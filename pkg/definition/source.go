package definition

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Source identifies where a definition document lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind selects how the loader reads a Source.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// location is the single Source implementation. Paths are cleaned on
// construction so equal documents share a cache key.
type location struct {
	kind SourceKind
	at   string
}

func (l location) Kind() SourceKind { return l.kind }
func (l location) Location() string { return l.at }
func (l location) String() string   { return string(l.kind) + ":" + l.at }

// SourceFromFile names a definition on the local disk.
func SourceFromFile(p string) Source {
	return location{kind: SourceKindFile, at: filepath.Clean(p)}
}

// SourceFromFS names an entry in the loader's fs.FS. Names use forward
// slashes regardless of platform.
func SourceFromFS(name string) Source {
	return location{kind: SourceKindFS, at: path.Clean(strings.TrimPrefix(name, "/"))}
}

// ParseURLSource names an http or https definition, reporting malformed
// input as an error. Use it for URLs supplied at runtime.
func ParseURLSource(raw string) (Source, error) {
	if raw == "" {
		return nil, errors.New("definition: empty URL source")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return nil, fmt.Errorf("definition: invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("definition: unsupported URL scheme %q", u.Scheme)
	}
	return location{kind: SourceKindURL, at: raw}, nil
}

// SourceFromURL is ParseURLSource for URLs fixed in code. It panics on
// malformed input.
func SourceFromURL(raw string) Source {
	src, err := ParseURLSource(raw)
	if err != nil {
		panic(err.Error())
	}
	return src
}
