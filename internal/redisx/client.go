package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	r := redis.NewClient(&redis.Options{Addr: addr})
	_ = r.WithTimeout(2 * time.Second)
	return r
}

// Cache adapts a redis client to the small get/set surface handlers need.
type Cache struct{ R *redis.Client }

func (c Cache) Get(ctx context.Context, key string) (string, error) {
	return c.R.Get(ctx, key).Result()
}

func (c Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.R.Set(ctx, key, value, ttl).Err()
}
