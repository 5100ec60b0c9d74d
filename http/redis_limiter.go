package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// RedisLimiter counts requests in a fixed window per client key. Keeping
// the counters in Redis lets multiple instances share one budget.
type RedisLimiter struct {
	client   *redis.Client
	capacity int
	window   time.Duration
}

func NewRedisLimiter(addr string, capacity int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:   redis.NewClient(&redis.Options{Addr: addr}),
		capacity: capacity,
		window:   window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	count, err := l.client.Incr(ctx, redisKeyPrefix+key).Result()
	if err != nil {
		// Redis being unreachable should not take the API down with it.
		return true
	}
	if count == 1 {
		l.client.Expire(ctx, redisKeyPrefix+key, l.window)
	}
	return count <= int64(l.capacity)
}

func (l *RedisLimiter) Stop() {
	_ = l.client.Close()
}
