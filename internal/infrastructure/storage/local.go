package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps reports on disk under a fixed folder. Used when no object
// store is configured.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload folder if needed
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes the report to disk, overwriting an existing file of the same name
func (s *LocalStore) Save(_ context.Context, key string, r io.Reader, _ int64) error {
	// filepath.Base stops a crafted filename escaping the upload folder.
	f, err := os.Create(filepath.Join(s.dir, filepath.Base(key)))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return err
	}
	return f.Sync()
}

// Open reads a stored report from disk
func (s *LocalStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, filepath.Base(key)))
}
