package ratelimit

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Counter is the subset of the Redis API the window limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) *goredis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *goredis.BoolCmd
}

// WindowLimiter is a fixed-window request counter stored in Redis, so the
// limit holds across service replicas.
type WindowLimiter struct {
	store  Counter
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewWindowLimiter allows limit hits per key per window.
func NewWindowLimiter(store Counter, prefix string, limit int, window time.Duration) *WindowLimiter {
	return &WindowLimiter{
		store:  store,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
		now:    time.Now,
	}
}

// Allow records one hit for key and reports whether it is within the limit.
func (l *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := l.now().Unix() / int64(l.window/time.Second)
	redisKey := fmt.Sprintf("%s:%s:%d", l.prefix, key, bucket)

	count, err := l.store.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", redisKey, err)
	}
	if count == 1 {
		if err := l.store.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", redisKey, err)
		}
	}
	return count <= l.limit, nil
}
