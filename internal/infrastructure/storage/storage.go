package storage

import (
	"context"
	"io"
)

// Storage persists uploaded file bytes under a relative path.
type Storage interface {
	Save(ctx context.Context, relativePath string, content io.Reader) (int64, error)
	// Remove deletes the stored bytes. Removing a path that no longer
	// exists is not an error.
	Remove(ctx context.Context, relativePath string) error
}
