// Package ratelimit counts requests per key in fixed time windows.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// RateLimiter reports whether one more request for key fits in the current
// window. An error means the backend could not answer; callers fail open.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// windowKey buckets now into a fixed window for key.
func windowKey(key string, window time.Duration, now time.Time) string {
	seconds := int64(window.Seconds())
	if seconds <= 0 {
		seconds = 1
	}
	return fmt.Sprintf("ratelimit:%s:%d", key, now.Unix()/seconds)
}
