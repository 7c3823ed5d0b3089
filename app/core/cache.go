package core

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wayfarer-app/wayfarer/pkg/types"
)

type Cache struct {
	redis     redis.UniversalClient
	keyPrefix string
}

var _ types.Cache = (*Cache)(nil)

func NewRedisCache(cfg RedisConfig) *Cache {
	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        []string{cfg.Addr},
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
	return &Cache{
		redis:     client,
		keyPrefix: cfg.KeyPrefix,
	}
}

func (c *Cache) key(key string) string {
	if c.keyPrefix == "" {
		return key
	}
	return c.keyPrefix + ":" + key
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.redis.Get(ctx, c.key(key)).Result()
}

func (c *Cache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.redis.SetEx(ctx, c.key(key), value, expiresAt).Err()
}

func (c *Cache) SetNX(ctx context.Context, key, value string, expiresAt time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, c.key(key), value, expiresAt).Result()
}

func (c *Cache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.redis.Expire(ctx, c.key(key), expiration).Err()
}

func (c *Cache) Del(ctx context.Context, key string) error {
	return c.redis.Del(ctx, c.key(key)).Err()
}
