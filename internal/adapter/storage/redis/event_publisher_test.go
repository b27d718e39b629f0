package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fractional-asset-registry/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventPublisher_Publish(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()
	ctx := context.Background()

	pub := NewEventPublisher(client, "asset-registry:events")
	sub := client.Subscribe(ctx, pub.Channel())
	defer sub.Close()
	_, err := sub.Receive(ctx) // subscription confirmation
	require.NoError(t, err)

	event := domain.NewEvent(domain.EventAssetFrozen, "registry", domain.DeriveAddress("recovery"), nil).ForAsset(7)
	require.NoError(t, pub.Publish(ctx, event))

	select {
	case msg := <-sub.Channel():
		var got domain.Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, event.ID, got.ID)
		assert.Equal(t, domain.EventAssetFrozen, got.Type)
		assert.Equal(t, uint64(7), got.AssetID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not received")
	}
}

func TestEventPublisher_RedisDown(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	defer client.Close()
	s.Close()

	pub := NewEventPublisher(client, "events")
	err := pub.Publish(context.Background(), domain.NewEvent(domain.EventPolicyPaused, "policy", domain.DeriveAddress("p"), nil))
	assert.Error(t, err)
}
