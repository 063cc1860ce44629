// Package storage implements the client-side key/value stores on top of gocloud.dev/blob
// buckets, with an optional shared Redis backend.
package storage

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

// BlobStore keeps one object per key in a blob bucket.
type BlobStore struct {
	bucket *blob.Bucket
	prefix string
}

var _ repository.KeyValueStore = (*BlobStore)(nil)

// NewBlobStore wraps an opened bucket. Keys are stored under prefix.
func NewBlobStore(bucket *blob.Bucket, prefix string) *BlobStore {
	return &BlobStore{bucket: bucket, prefix: prefix}
}

// NewFileStore opens a directory-backed store, creating the directory if needed.
func NewFileStore(dir string) (*BlobStore, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file store at %s", dir)
	}

	return NewBlobStore(bucket, ""), nil
}

// NewMemoryStore opens a store that lives as long as the process.
func NewMemoryStore() *BlobStore {
	return NewBlobStore(memblob.OpenBucket(nil), "")
}

// Get returns the value of key or repository.ErrKeyNotFound.
func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.prefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

// Set overwrites the value of key.
func (s *BlobStore) Set(ctx context.Context, key string, value []byte) error {
	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, s.prefix+key, value, opts); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, s.prefix+key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close releases the bucket.
func (s *BlobStore) Close() error {
	return s.bucket.Close()
}
