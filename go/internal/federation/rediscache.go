package federation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// redisKeyPrefix namespaces federation entries so Clear cannot touch
// unrelated keys in a shared instance.
const redisKeyPrefix = "sportsfed:"

// RedisCache implements Cache on a shared Redis instance so multiple
// processes reuse each other's fetches. Hit/miss counters are local to the
// process.
type RedisCache struct {
	client *redis.Client
	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

var _ Cache = (*RedisCache)(nil)

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		c.misses.Add(1)
		return nil, false
	}
	if err != nil {
		// A flaky cache degrades to a miss, never to a failed call.
		log.Warn().Err(err).Str("key", key).Msg("redis cache get failed")
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return value, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	if err := c.client.Set(ctx, redisKeyPrefix+key, value, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache set failed")
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache delete failed")
	}
}

func (c *RedisCache) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Warn().Err(err).Str("key", iter.Val()).Msg("redis cache clear failed")
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("redis cache scan failed")
	}
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *RedisCache) Stats(ctx context.Context) CacheStats {
	total := 0
	iter := c.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		total++
	}

	hits := c.hits.Load()
	misses := c.misses.Load()
	stats := CacheStats{
		TotalEntries:  total,
		ActiveEntries: total, // redis drops expired keys itself
		Hits:          hits,
		Misses:        misses,
	}
	if sum := hits + misses; sum > 0 {
		stats.HitRate = float64(hits) / float64(sum)
	}
	return stats
}
