package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStorage(client, "test:session:")
}

func TestRedisStorageRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rs := newRedisStorage(t)

	userJSON, token, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, userJSON)
	assert.Empty(t, token)

	require.NoError(t, rs.Store(ctx, `{"id":"1"}`, "tok-1"))

	userJSON, token, err = rs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, userJSON)
	assert.Equal(t, "tok-1", token)
}

func TestRedisStorageClearIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	rs := newRedisStorage(t)

	require.NoError(t, rs.Store(ctx, `{"id":"1"}`, "tok-1"))
	require.NoError(t, rs.Clear(ctx))
	require.NoError(t, rs.Clear(ctx))

	userJSON, token, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, userJSON)
	assert.Empty(t, token)
}

func TestRedisStorageKeysArePrefixed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rs := NewRedisStorage(client, "acct-9:")
	require.NoError(t, rs.Store(ctx, `{"id":"9"}`, "tok-9"))

	v, err := srv.Get("acct-9:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-9", v)
}
