package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. ConsumeTokens refills the bucket for the elapsed
// intervals and takes n tokens only when enough are available. remaining is
// tokens left after the take, or negative when the request is denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, n int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// refill applies whole elapsed intervals to tokens and returns the new token
// count and refill timestamp. Partial intervals are carried over.
func refill(tokens int, lastRefill, now time.Time, cfg Config) (int, time.Time) {
	elapsed := now.Sub(lastRefill)
	if elapsed < cfg.RefillInterval {
		return tokens, lastRefill
	}
	intervals := int64(elapsed / cfg.RefillInterval)
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	if intervals > maxIntervals {
		return cfg.Capacity, now
	}
	tokens = min(tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
	return tokens, lastRefill.Add(time.Duration(intervals) * cfg.RefillInterval)
}
