package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for a key that holds no value.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable string store the app's caches sit on.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	// Keys lists keys matching a glob pattern such as "prefix:*".
	Keys(ctx context.Context, pattern string) ([]string, error)
	Ping(ctx context.Context) error
	Close() error
}
