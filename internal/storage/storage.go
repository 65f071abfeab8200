package storage

import (
	"context"
	"io"
)

// Storage abstracts saving, listing and deleting gallery images.
// The local filesystem implementation can be swapped for S3 / Cloudflare R2.
type Storage interface {
	// Save stores a file and returns its public URL.
	// key is a unique path within the store (e.g. "gallery/<uuid>.jpg").
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// List returns the public URLs of all files under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the file at key.
	Delete(ctx context.Context, key string) error
}
