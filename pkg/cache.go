package pkg

import (
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

type Cache struct {
	Rdb *redis.Client
}

func NewCache(redisURL string) *Cache {
	if redisURL == "" {
		return &Cache{}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisURL,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		panic("failed to connect redis: " + err.Error())
	}

	return &Cache{Rdb: rdb}
}

// MarkProcessed records that a notification key was handled and reports
// whether this is the first time it was seen. Without a redis client, or
// when redis is unreachable, every delivery counts as first — processing
// must never block on the marker.
func (c *Cache) MarkProcessed(ctx context.Context, key string, ttl time.Duration) bool {
	if c == nil || c.Rdb == nil {
		return true
	}

	first, err := c.Rdb.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return true
	}
	return first
}
