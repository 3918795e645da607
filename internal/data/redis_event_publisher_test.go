package data

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielwinstonmandela/ScalableArchitecturesCS/internal/domain/event"
)

func TestRedisEventPublisherPublish(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sub := client.Subscribe(ctx, event.ChannelUserEvents)
	t.Cleanup(func() { _ = sub.Close() })
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := NewRedisEventPublisher(client)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	payload := event.NewUserRegistered("u-1", "alice@example.com", at)
	require.NoError(t, publisher.Publish(ctx, event.ChannelUserEvents, payload))

	select {
	case msg := <-sub.Channel():
		var got event.UserRegistered
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, event.TypeUserRegistered, got.Type)
		assert.Equal(t, "u-1", got.UserID)
		assert.Equal(t, "alice@example.com", got.Email)
		assert.True(t, got.Timestamp.Equal(at))
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestRedisEventPublisherValidation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	publisher := NewRedisEventPublisher(client)

	t.Run("empty channel", func(t *testing.T) {
		err := publisher.Publish(ctx, "", event.NewTrackPlayed("t-1", "u-1", "play", time.Now()))
		assert.Error(t, err)
	})

	t.Run("unencodable payload", func(t *testing.T) {
		err := publisher.Publish(ctx, event.ChannelPlaybackEvents, func() {})
		assert.Error(t, err)
	})
}
