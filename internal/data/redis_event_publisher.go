package data

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisEventPublisher publishes domain event payloads over Redis pub/sub.
// Subscribers are other services; delivery is fire-and-forget, matching the
// at-most-once semantics of Redis channels.
type RedisEventPublisher struct {
	client redis.UniversalClient
}

// NewRedisEventPublisher creates a new RedisEventPublisher with the given Redis client.
func NewRedisEventPublisher(client redis.UniversalClient) *RedisEventPublisher {
	return &RedisEventPublisher{client: client}
}

// Publish JSON-encodes the payload and publishes it on the channel.
func (p *RedisEventPublisher) Publish(ctx context.Context, channel string, payload any) error {
	if channel == "" {
		return errors.New("channel cannot be empty")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}

	if err := p.client.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}
