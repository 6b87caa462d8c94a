package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// RedisClient stores values in Redis. Durability follows the server's
// persistence settings.
type RedisClient struct {
	client *redis.Client
}

// NewRedisClient wraps client and checks the connection.
func NewRedisClient(ctx context.Context, client *redis.Client) (*RedisClient, error) {
	r := &RedisClient{client: client}
	if err := r.Ping(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	slog.Info("Connected to Redis", "component", "RedisClient", "addr", client.Options().Addr)
	return r, nil
}

// Set sets a key-value pair in Redis without expiry
func (r *RedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Del removes keys; missing keys are ignored.
func (r *RedisClient) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// Keys walks the keyspace with SCAN rather than blocking on KEYS.
func (r *RedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan keys %q: %w", pattern, err)
	}
	return keys, nil
}

func (r *RedisClient) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
