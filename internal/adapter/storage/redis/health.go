package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck implements ports.HealthChecker for Redis. It probes with a
// short-lived write because the idempotency and rate-limit stores are
// useless on a read-only replica.
type HealthCheck struct {
	client *goredis.Client
	keys   Keyspace
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client, keys Keyspace) *HealthCheck {
	return &HealthCheck{client: client, keys: keys}
}

// Ping writes and expires a probe key.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, h.keys.key("health"), time.Now().Unix(), 10*time.Second).Err(); err != nil {
		return fmt.Errorf("redis write probe: %w", err)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "redis"
}
