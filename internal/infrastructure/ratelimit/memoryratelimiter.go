package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const memoryLimiterMaxKeys = 10000

// MemoryRateLimiter keeps counters in process. Used when Redis is disabled;
// limits then apply per instance.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	counters *expirable.LRU[string, int]
	now      func() time.Time
}

// NewMemoryRateLimiter creates a limiter whose counters expire after ttl,
// which should be at least the longest window in use.
func NewMemoryRateLimiter(ttl time.Duration) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counters: expirable.NewLRU[string, int](memoryLimiterMaxKeys, nil, ttl),
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	k := windowKey(key, window, l.now())

	l.mu.Lock()
	defer l.mu.Unlock()

	count, _ := l.counters.Get(k)
	count++
	l.counters.Add(k, count)

	return count <= limit, nil
}
