// Package ratelimit provides a fixed-window login rate limiter backed
// by Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts attempts per key within a window. When Redis is
// unreachable the limiter fails open: requests pass and the outage is
// logged.
type Limiter struct {
	client *redis.Client
	logger *slog.Logger
	max    int64
	window time.Duration
}

func NewLimiter(client *redis.Client, logger *slog.Logger, max int64, window time.Duration) *Limiter {
	return &Limiter{
		client: client,
		logger: logger,
		max:    max,
		window: window,
	}
}

// Allow increments the key's counter and reports whether the caller is
// still within the limit.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.client == nil {
		return true
	}

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.WarnContext(ctx, "rate limiter unavailable", "err", err.Error())
		return true
	}

	count, err := incr.Result()
	if err != nil {
		l.logger.WarnContext(ctx, "rate limiter unavailable", "err", err.Error())
		return true
	}

	if count > l.max {
		l.logger.WarnContext(ctx, "rate limit exceeded", "key", key, "count", count)
		return false
	}

	return true
}
