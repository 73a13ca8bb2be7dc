package storage

import (
	"context"
	"io"
)

// FileStore abstracts where uploaded files live. Implementations return a
// path that is stored on the owning record and later passed back to Delete
// when the record goes away.
type FileStore interface {
	Store(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}
