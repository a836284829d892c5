package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const (
	availableMethodsKey = "paycore:payment_methods:available"
	defaultMethodTTL    = 5 * time.Minute
	methodTTLJitter     = 30 * time.Second // anti-stampede
)

// cachedMethod is the wire form stored in Redis.
type cachedMethod struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Enabled     bool            `json:"enabled"`
	Fee         decimal.Decimal `json:"fee"`
	Position    int             `json:"position"`
	IsDefault   bool            `json:"is_default"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RedisPaymentMethodCache caches the checkout method list. Writers must call
// Invalidate after committing a registry change.
type RedisPaymentMethodCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisPaymentMethodCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisPaymentMethodCache {
	if ttl <= 0 {
		ttl = defaultMethodTTL
	}
	return &RedisPaymentMethodCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetAvailable returns nil, nil on a cache miss.
func (c *RedisPaymentMethodCache) GetAvailable(ctx context.Context) ([]*paymentmethod.Method, error) {
	raw, err := c.client.Get(ctx, availableMethodsKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment methods from cache: %w", err)
	}

	var cached []cachedMethod
	if err := json.Unmarshal(raw, &cached); err != nil {
		// a bad entry is dropped so the next read repopulates it
		c.logger.Warnw("discarding corrupt payment method cache entry", "error", err)
		_ = c.client.Del(ctx, availableMethodsKey).Err()
		return nil, nil
	}

	methods := make([]*paymentmethod.Method, 0, len(cached))
	for _, m := range cached {
		methods = append(methods, paymentmethod.ReconstructMethod(
			vo.PaymentMethod(m.ID), m.Name, m.Description, m.Enabled,
			vo.NewMoney(m.Fee), m.Position, m.IsDefault, m.UpdatedAt,
		))
	}
	return methods, nil
}

func (c *RedisPaymentMethodCache) SetAvailable(ctx context.Context, methods []*paymentmethod.Method) error {
	cached := make([]cachedMethod, 0, len(methods))
	for _, m := range methods {
		cached = append(cached, cachedMethod{
			ID:          m.ID().String(),
			Name:        m.Name(),
			Description: m.Description(),
			Enabled:     m.IsEnabled(),
			Fee:         m.Fee().Decimal(),
			Position:    m.Position(),
			IsDefault:   m.IsDefault(),
			UpdatedAt:   m.UpdatedAt(),
		})
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to encode payment methods: %w", err)
	}

	ttl := c.ttl + time.Duration(rand.Int64N(int64(methodTTLJitter)))
	if err := c.client.Set(ctx, availableMethodsKey, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache payment methods: %w", err)
	}
	return nil
}

func (c *RedisPaymentMethodCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, availableMethodsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate payment method cache: %w", err)
	}
	return nil
}
