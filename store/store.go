// SPDX-License-Identifier: MIT

// Package store writes finished artifacts to a local directory or to an
// S3 bucket.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadLocation indicates an output location that cannot be parsed.
var ErrBadLocation = errors.New("store: bad output location")

// Store receives whole artifacts. Put must not leave a partial object
// behind when it fails.
type Store interface {
	Put(ctx context.Context, name string, data []byte) error
	Location(name string) string
}

// FS stores artifacts as files in Dir. Writes go to a temporary file that is
// renamed into place.
type FS struct {
	Dir string
}

// NewFS creates dir if needed.
func NewFS(dir string) (*FS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &FS{Dir: dir}, nil
}

// Location returns the file path of name.
func (s *FS) Location(name string) string { return filepath.Join(s.Dir, name) }

// Put writes data atomically.
func (s *FS) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.Dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("store: sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", name, err)
	}
	if err := os.Rename(tmpName, s.Location(name)); err != nil {
		return fmt.Errorf("store: rename %s: %w", name, err)
	}
	return nil
}

// ParseS3 splits "s3://bucket/prefix" into bucket and prefix. ok is false
// for locations without the s3 scheme.
func ParseS3(location string) (bucket, prefix string, ok bool, err error) {
	const scheme = "s3://"
	if !strings.HasPrefix(location, scheme) {
		return "", "", false, nil
	}
	rest := strings.TrimPrefix(location, scheme)
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", true, fmt.Errorf("%w: %q has no bucket", ErrBadLocation, location)
	}
	return bucket, strings.Trim(prefix, "/"), true, nil
}
