package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"kotseai-backend/utils/logger"
)

// RedisCache backs the cost-report cache. Entries expire after ttl so a
// stale estimate cannot outlive parts-price drift for long.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisCache connects to the Redis instance at addr
func NewRedisCache(addr string, ttl time.Duration, log logger.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
		logger: log,
	}
}

// Ping verifies the connection is usable
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.logger.Warnf("Redis get failed for %s: %v", key, err)
		}
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}
