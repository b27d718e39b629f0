package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// IdempotencyLock implements ports.IdempotencyLock using Redis SET NX.
type IdempotencyLock struct {
	client *goredis.Client
	keys   Keyspace
}

// NewIdempotencyLock creates a new Redis-backed in-flight marker.
func NewIdempotencyLock(client *goredis.Client, keys Keyspace) *IdempotencyLock {
	return &IdempotencyLock{client: client, keys: keys}
}

// Acquire atomically marks key as in flight.
// Returns true if the caller now owns the key, false if another request does.
func (l *IdempotencyLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := l.client.SetArgs(ctx, l.keys.key("inflight", key), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			// Key already exists, another request holds it
			return false, nil
		}
		return false, fmt.Errorf("redis idempotency lock: %w", err)
	}
	return result == "OK", nil
}

// Release clears the in-flight marker.
func (l *IdempotencyLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.keys.key("inflight", key)).Err(); err != nil {
		return fmt.Errorf("redis idempotency unlock: %w", err)
	}
	return nil
}
