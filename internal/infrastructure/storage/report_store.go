package storage

import (
	"context"
	"io"
)

// ReportStore retains uploaded medical reports. Objects are keyed by the
// client-supplied filename, so identical filenames overwrite silently.
type ReportStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
