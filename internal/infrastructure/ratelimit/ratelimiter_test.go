package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func exerciseLimiter(t *testing.T, limiter RateLimiter) {
	t.Helper()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "login:10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "login:10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "4th request should be denied")

	allowed, err = limiter.Allow(ctx, "login:10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are not affected")

	allowed, err = limiter.Allow(ctx, "login:10.0.0.1", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed, "zero limit disables limiting")
}

func TestRedisRateLimiter_Allow(t *testing.T) {
	_, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	limiter.now = fixedClock(time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC))

	exerciseLimiter(t, limiter)
}

func TestRedisRateLimiter_NextWindowResets(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	start := time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = fixedClock(start)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := limiter.Allow(ctx, "k", 1, time.Minute)
		require.NoError(t, err)
	}

	key := windowKey("k", time.Minute, start)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute+time.Second, mr.TTL(key))

	limiter.now = fixedClock(start.Add(time.Minute))
	allowed, err := limiter.Allow(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiter_TTLSetOnceAndRepaired(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	start := time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = fixedClock(start)
	ctx := context.Background()
	key := windowKey("k", time.Minute, start)

	_, err := limiter.Allow(ctx, "k", 5, time.Minute)
	require.NoError(t, err)
	mr.FastForward(30 * time.Second)
	_, err = limiter.Allow(ctx, "k", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 31*time.Second, mr.TTL(key), "later hits do not extend the window")

	// A counter left without a TTL gets one on the next hit.
	orphan := windowKey("orphan", time.Minute, start)
	require.NoError(t, mr.Set(orphan, "2"))
	_, err = limiter.Allow(ctx, "orphan", 5, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute+time.Second, mr.TTL(orphan))
}

func TestRedisRateLimiter_BackendDown(t *testing.T) {
	mr, client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", 1, time.Minute)
	assert.Error(t, err)
}

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter(2 * time.Minute)
	limiter.now = fixedClock(time.Date(2026, 1, 1, 12, 0, 10, 0, time.UTC))

	exerciseLimiter(t, limiter)
}
