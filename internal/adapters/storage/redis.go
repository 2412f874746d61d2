package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps the two session entries in Redis under a key prefix.
// Intended for shared or containerized front-ends where the process has no
// stable local filesystem.
type RedisStorage struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStorage creates a Redis-backed session storage.
func NewRedisStorage(client redis.UniversalClient, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "fintrack:session:"
	}
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) Load(ctx context.Context) (string, string, error) {
	userJSON, err := r.get(ctx, userEntry)
	if err != nil {
		return "", "", err
	}
	token, err := r.get(ctx, tokenEntry)
	if err != nil {
		return "", "", err
	}
	return userJSON, token, nil
}

func (r *RedisStorage) Store(ctx context.Context, userJSON, token string) error {
	// Both entries go in one round-trip so a failure cannot leave a
	// half-written pair.
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.prefix+userEntry, userJSON, 0)
		pipe.Set(ctx, r.prefix+tokenEntry, token, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis store session: %w", err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.prefix+userEntry, r.prefix+tokenEntry).Err(); err != nil {
		return fmt.Errorf("redis clear session: %w", err)
	}
	return nil
}

func (r *RedisStorage) get(ctx context.Context, name string) (string, error) {
	v, err := r.client.Get(ctx, r.prefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", name, err)
	}
	return v, nil
}
