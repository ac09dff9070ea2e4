package identity

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// NameCache stores resolved display names keyed by user id. A nil NameCache
// is valid and caches nothing.
type NameCache interface {
	Get(ctx context.Context, userID string) (string, bool)
	Set(ctx context.Context, userID, firstName string)
}

type RedisNameCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewRedisNameCache(client rueidis.Client, ttl time.Duration) *RedisNameCache {
	return &RedisNameCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisNameCache) Get(ctx context.Context, userID string) (string, bool) {
	cmd := c.client.B().Get().Key(cacheKey(userID)).Build()
	result := c.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		return "", false
	}

	name, err := result.ToString()
	if err != nil || name == "" {
		return "", false
	}

	return name, true
}

func (c *RedisNameCache) Set(ctx context.Context, userID, firstName string) {
	cmd := c.client.B().Set().
		Key(cacheKey(userID)).
		Value(firstName).
		Ex(c.ttl).
		Build()

	_ = c.client.Do(ctx, cmd).Error()
}

func cacheKey(userID string) string {
	return "firstname:" + userID
}
