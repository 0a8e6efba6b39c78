// Package cache provides the Redis-backed reply cache.
package cache

import (
	"context"
	"time"

	"dirbot/config"
	"dirbot/internal/domain/lifecycle"
	"dirbot/internal/domain/service"
	"dirbot/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewClient creates a Redis client, verifies the connection on startup and
// closes it on shutdown.
func NewClient(lc fx.Lifecycle, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// replyCache implements service.ReplyCache on Redis.
type replyCache struct {
	client *redis.Client
}

// NewReplyCache is the constructor for replyCache.
func NewReplyCache(client *redis.Client) service.ReplyCache {
	return &replyCache{
		client: client,
	}
}

// Get returns the cached reply for key, reporting a miss without error.
func (c *replyCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read reply cache")
	}

	return value, true, nil
}

// Set stores the reply for key with the given TTL.
func (c *replyCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write reply cache")
	}

	return nil
}
