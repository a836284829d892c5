package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/logger"
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

func newTestCache(t *testing.T) (*RedisPaymentMethodCache, *redis.Client) {
	client := setupTestRedis(t)
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewRedisPaymentMethodCache(client, time.Minute, log), client
}

func TestPaymentMethodCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	updated := time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC)

	methods, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Nil(t, methods, "empty cache is a miss")

	require.NoError(t, c.SetAvailable(ctx, []*paymentmethod.Method{
		paymentmethod.ReconstructMethod(vo.PaymentMethodCOD, "Cash on delivery", "", true, vo.Zero(), 1, true, updated),
		paymentmethod.ReconstructMethod(vo.PaymentMethodVNPay, "VNPAY", "Cards and QR", true, vo.NewMoneyFromInt(1100), 3, false, updated),
	}))

	methods, err = c.GetAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, methods, 2)
	assert.Equal(t, vo.PaymentMethodCOD, methods[0].ID())
	assert.True(t, methods[0].IsDefault())
	assert.True(t, methods[1].Fee().Equals(vo.NewMoneyFromInt(1100)))
	assert.True(t, updated.Equal(methods[1].UpdatedAt()))

	require.NoError(t, c.Invalidate(ctx))
	methods, err = c.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Nil(t, methods)
}

func TestPaymentMethodCache_CorruptEntryIsAMiss(t *testing.T) {
	c, client := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, availableMethodsKey, "not json", time.Minute).Err())

	methods, err := c.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Nil(t, methods)

	exists, err := client.Exists(ctx, availableMethodsKey).Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}
