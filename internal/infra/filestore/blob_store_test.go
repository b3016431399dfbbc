package filestore

import (
	"context"
	"io"
	"strings"
	"testing"

	"harvest/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T) *blobStore {
	t.Helper()

	store, err := NewBlobStore(context.Background(), &config.Config{
		Upload: &config.UploadConfig{BucketURL: "mem://"},
	})
	require.NoError(t, err)

	return store.(*blobStore)
}

func TestBlobStore_SaveAndOpen(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	content := "soil analysis report"
	err := store.Save(ctx, "certs/abc.pdf", "application/pdf", strings.NewReader(content))
	require.NoError(t, err)

	r, err := store.Open(ctx, "certs/abc.pdf")
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestBlobStore_OpenMissingKey(t *testing.T) {
	store := newMemStore(t)

	_, err := store.Open(context.Background(), "certs/missing.pdf")
	assert.Error(t, err)
}

func TestBlobStore_DefaultsToMemoryBucket(t *testing.T) {
	store, err := NewBlobStore(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, store)
}
