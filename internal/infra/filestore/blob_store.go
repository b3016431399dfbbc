// Package filestore stores uploaded certificate documents through the
// gocloud.dev blob portability layer, so the backing bucket is chosen by URL
// (file://, mem://, or a cloud provider) without code changes.
package filestore

import (
	"context"
	"io"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Drivers registered by side effect; the bucket URL scheme selects one.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStore implements service.FileStore on top of a gocloud blob bucket.
type blobStore struct {
	bucket *blob.Bucket
}

// NewBlobStore opens the bucket named by the upload configuration.
func NewBlobStore(ctx context.Context, cfg *config.Config) (service.FileStore, error) {
	bucketURL := "mem://"
	if cfg.Upload != nil && cfg.Upload.BucketURL != "" {
		bucketURL = cfg.Upload.BucketURL
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob bucket %q", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

// Save streams the reader into the bucket under the given key.
func (s *blobStore) Save(ctx context.Context, key string, contentType string, r io.Reader) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "failed to open blob writer for %q", key)
	}

	if _, err := io.Copy(w, r); err != nil {
		// Close discards the partial write when Copy failed.
		_ = w.Close()
		return errors.Wrapf(err, "failed to write blob %q", key)
	}

	if err := w.Close(); err != nil {
		return errors.Wrapf(err, "failed to finalize blob %q", key)
	}

	return nil
}

// Open returns a reader over the stored object.
func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open blob %q", key)
	}

	return r, nil
}
