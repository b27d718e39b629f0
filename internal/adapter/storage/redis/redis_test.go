package redis

import (
	"context"
	"io"
	"strconv"
	"testing"

	"fractional-asset-registry/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyspace_Key(t *testing.T) {
	assert.Equal(t, "far:idem:0xaa:mint:req-1", Keyspace("far").key("idem", "0xaa:mint:req-1"))
	assert.Equal(t, "far:ratelimit:0xaa:value:42", Keyspace("far").key("ratelimit", "0xaa:value", "42"))
	assert.Equal(t, "health", Keyspace("").key("health"))
}

func TestClientOptions(t *testing.T) {
	opts := clientOptions(config.RedisConfig{
		Host:     "redis.example.com",
		Port:     6380,
		Password: "pw",
		DB:       2,
		PoolSize: 16,
	})

	assert.Equal(t, "redis.example.com:6380", opts.Addr)
	assert.Equal(t, "pw", opts.Password)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 16, opts.PoolSize)
	assert.Equal(t, clientName, opts.ClientName)
}

func TestNewClient_Connects(t *testing.T) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)

	client, err := NewClient(context.Background(), config.RedisConfig{
		Host:      s.Host(),
		Port:      port,
		Namespace: "far",
	}, zerolog.New(io.Discard))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewClient_Unreachable(t *testing.T) {
	s := miniredis.RunT(t)
	port, err := strconv.Atoi(s.Port())
	require.NoError(t, err)
	s.Close()

	_, err = NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: port}, zerolog.New(io.Discard))
	assert.Error(t, err)
}
