package storage

import (
	"context"

	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RedisStore keeps the client-side state in Redis so several shells can share one session.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

var _ repository.KeyValueStore = (*RedisStore)(nil)

// NewRedisStore wraps a connected client. Keys are stored under prefix.
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Get returns the value of key or repository.ErrKeyNotFound.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to read %s", key)
	}

	return data, nil
}

// Set overwrites the value of key without expiry.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to write %s", key)
	}

	return nil
}

// Delete removes key. A missing key is not an error.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
