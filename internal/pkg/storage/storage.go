package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores a blob and returns the storage key it was written under.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// GetURL returns a stable, retrievable URL for a stored key.
	GetURL(ctx context.Context, path string) (string, error)
}
