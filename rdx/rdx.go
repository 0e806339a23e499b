package rdx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin best-effort wrapper around Redis. Every caller treats
// a cache failure as a miss: the request falls through to Mongo and the
// error is only logged.
type Cache struct {
	conn *redis.Client
}

func New(addr string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{conn: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.conn.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.conn.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	return c.conn.Del(ctx, keys...).Err()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.conn.Close()
}
