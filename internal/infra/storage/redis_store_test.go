package storage

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/repository"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis answers the commands RedisStore issues from an in-memory map.
type fakeRedis struct {
	redis.UniversalClient

	values map[string][]byte
	err    error
	closed bool
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: make(map[string][]byte)}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	if expiration != 0 {
		return redis.NewStatusResult("", errors.Errorf("unexpected expiration %s", expiration))
	}
	f.values[key] = append([]byte(nil), value.([]byte)...)

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Close() error {
	f.closed = true

	return nil
}

func TestRedisStore_SetGetDelete(t *testing.T) {
	client := newFakeRedis()
	store := NewRedisStore(client, "shop:")
	ctx := context.Background()

	_, err := store.Get(ctx, repository.SessionKey)
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, repository.SessionKey, []byte(`{"token":"a"}`)))
	require.NoError(t, store.Set(ctx, repository.SessionKey, []byte(`{"token":"b"}`)))
	assert.Contains(t, client.values, "shop:"+repository.SessionKey)

	got, err := store.Get(ctx, repository.SessionKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"b"}`, string(got))

	require.NoError(t, store.Delete(ctx, repository.SessionKey))
	require.NoError(t, store.Delete(ctx, repository.SessionKey))

	_, err = store.Get(ctx, repository.SessionKey)
	require.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Close())
	assert.True(t, client.closed)
}

func TestRedisStore_ConnectionErrors(t *testing.T) {
	client := newFakeRedis()
	client.err = errors.New("connection refused")
	store := NewRedisStore(client, "")
	ctx := context.Background()

	_, err := store.Get(ctx, repository.WishlistKey)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "connection refused")

	assert.ErrorContains(t, store.Set(ctx, repository.WishlistKey, []byte(`[]`)), "failed to write")
	assert.ErrorContains(t, store.Delete(ctx, repository.WishlistKey), "failed to delete")
}
