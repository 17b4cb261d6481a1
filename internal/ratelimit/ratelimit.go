// Package ratelimit limits requests per client over a fixed window.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// Result is the outcome of one Allow call.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RedisLimiter keeps counters in Redis so every replica shares them.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRedisLimiter allows requests per window for each key.
func NewRedisLimiter(rdb *redis.Client, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(rdb),
		limit:   redis_rate.Limit{Rate: requests, Burst: requests, Period: window},
	}
}

// Allow consumes one request for key.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	res, err := l.limiter.Allow(ctx, keyPrefix+key, l.limit)
	if err != nil {
		return Result{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return Result{
		Allowed:    res.Allowed > 0,
		Limit:      l.limit.Rate,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}
