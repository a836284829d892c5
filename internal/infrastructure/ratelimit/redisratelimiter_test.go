package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisRateLimiter_Allow_PerMinute(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	limits := Limits{PerMinute: 5}

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "ip:10.0.0.1", limits)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "ip:10.0.0.1", limits)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")

	allowed, err = limiter.Allow(ctx, "ip:10.0.0.2", limits)
	require.NoError(t, err)
	assert.True(t, allowed, "other keys are independent")
}

func TestRedisRateLimiter_SameInstantRequestsCountSeparately(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	frozen := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return frozen }
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, "ip:burst", Limits{PerMinute: 10})
		require.NoError(t, err)
	}

	count, err := limiter.Count(ctx, "ip:burst", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	limiter := NewRedisRateLimiter(setupTestRedis(t))
	ctx := context.Background()
	limits := Limits{PerMinute: 1, PerHour: 10}

	allowed, err := limiter.Allow(ctx, "ip:reset", limits)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "ip:reset", limits)
	require.NoError(t, err)
	assert.False(t, allowed)

	require.NoError(t, limiter.Reset(ctx, "ip:reset"))

	allowed, err = limiter.Allow(ctx, "ip:reset", limits)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLimits_IsZero(t *testing.T) {
	assert.True(t, Limits{}.IsZero())
	assert.False(t, Limits{PerHour: 1}.IsZero())
}
