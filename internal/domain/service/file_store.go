package service

import (
	"context"
	"io"
)

// FileStore abstracts durable storage for uploaded certificate documents.
// Submissions record only the key; the bytes live in the store.
type FileStore interface {
	// Save writes the document under the given key and content type.
	Save(ctx context.Context, key string, contentType string, data io.Reader) error

	// Open returns a reader over a previously saved document.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
