package redis

import (
	"context"
	"fmt"
	"strings"

	"fractional-asset-registry/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const clientName = "fractional-asset-registry"

// Keyspace prefixes every key the stores write, so several registry
// deployments can share one Redis database without colliding.
type Keyspace string

// key joins the namespace, the store kind and the caller's parts with ':'.
func (k Keyspace) key(kind string, parts ...string) string {
	var b strings.Builder
	if k != "" {
		b.WriteString(string(k))
		b.WriteByte(':')
	}
	b.WriteString(kind)
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// NewClient creates a Redis client and verifies connectivity.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(clientOptions(cfg))

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("namespace", cfg.Namespace).
		Msg("Redis connection established")

	return client, nil
}

func clientOptions(cfg config.RedisConfig) *goredis.Options {
	return &goredis.Options{
		Addr:       cfg.Addr(),
		Password:   cfg.Password,
		DB:         cfg.DB,
		PoolSize:   cfg.PoolSize,
		ClientName: clientName,
	}
}
