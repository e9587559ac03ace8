// Package blob abstracts evidence byte storage behind a minimal
// "store bytes, get a retrievable URI" contract. The rest of the application
// only ever sees opaque URIs; which backend produced them is a deployment
// decision. No size or content-type policy lives here: callers cap request
// bodies at the HTTP edge and the deployed store owns any further limits.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists an evidence byte stream and returns an opaque, retrievable
// URI for it. Implementations must be safe for concurrent use.
type Store interface {
	// Put stores the bytes read from r under a backend-chosen key derived
	// from name and returns the URI identifying the stored object.
	Put(ctx context.Context, name string, r io.Reader) (uri string, err error)

	// Remove deletes the object identified by a URI previously returned by
	// Put. Removing an unknown URI is an error.
	Remove(ctx context.Context, uri string) error
}

// FSStore stores blobs as files under a base directory. URIs have the form
// "file://<abs-path>". Suitable for single-node deployments and tests.
type FSStore struct {
	dir string
}

// NewFSStore creates the base directory if needed and returns a store over it.
func NewFSStore(dir string) (*FSStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{dir: abs}, nil
}

// Put writes the stream to a uniquely named file. The original name only
// contributes its sanitized base and extension; the uuid prefix prevents both
// collisions and path traversal via attacker-controlled filenames.
func (s *FSStore) Put(ctx context.Context, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, uuid.NewString()+"_"+sanitizeName(name))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return "file://" + path, nil
}

// Remove deletes the file behind a "file://" URI.
func (s *FSStore) Remove(ctx context.Context, uri string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, ok := strings.CutPrefix(uri, "file://")
	if !ok {
		return fmt.Errorf("blob: not a file URI: %q", uri)
	}
	// Refuse anything outside the base dir.
	if rel, err := filepath.Rel(s.dir, path); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("blob: URI outside store: %q", uri)
	}
	return os.Remove(path)
}

// sanitizeName reduces a client filename to a safe base name.
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
