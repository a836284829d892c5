package discount

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

var (
	t0    = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	later = t0.Add(48 * time.Hour)
)

func money(v int64) vo.Money {
	return vo.NewMoneyFromInt(v)
}

func TestEvaluate(t *testing.T) {
	cap20k := money(20000)
	limit := 5

	tests := []struct {
		name     string
		params   CodeReconstructParams
		subtotal int64
		at       time.Time
		want     int64
		wantErr  error
	}{
		{
			name:     "fixed",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(10000), Active: true},
			subtotal: 50000, at: t0, want: 10000,
		},
		{
			name:     "fixed clamped to subtotal",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(90000), Active: true},
			subtotal: 50000, at: t0, want: 50000,
		},
		{
			name:     "percent floors to whole dong",
			params:   CodeReconstructParams{Kind: KindPercent, Value: decimal.NewFromInt(15), Active: true},
			subtotal: 33333, at: t0, want: 4999,
		},
		{
			name:     "percent capped",
			params:   CodeReconstructParams{Kind: KindPercent, Value: decimal.NewFromInt(50), MaxDiscount: &cap20k, Active: true},
			subtotal: 100000, at: t0, want: 20000,
		},
		{
			name:     "inactive",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(1)},
			subtotal: 1, at: t0, wantErr: ErrCodeInactive,
		},
		{
			name:     "not started",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(1), Active: true, StartsAt: &later},
			subtotal: 1, at: t0, wantErr: ErrCodeNotStarted,
		},
		{
			name:     "expired at end boundary",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(1), Active: true, EndsAt: &later},
			subtotal: 1, at: later, wantErr: ErrCodeExpired,
		},
		{
			name:     "below minimum",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(1), Active: true, MinSubtotal: money(100000)},
			subtotal: 99999, at: t0, wantErr: ErrMinSubtotalNotMet,
		},
		{
			name:     "usage exhausted",
			params:   CodeReconstructParams{Kind: KindFixed, Value: decimal.NewFromInt(1), Active: true, UsageLimit: &limit, UsedCount: 5},
			subtotal: 1, at: t0, wantErr: ErrUsageLimitReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ReconstructCode(tt.params)

			got, err := c.Evaluate(money(tt.subtotal), tt.at)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equals(money(tt.want)), "got %s", got)
		})
	}
}

func TestNewCode(t *testing.T) {
	c, err := NewCode(NewCodeParams{Code: " summer10 ", Kind: KindPercent, Value: decimal.NewFromInt(10)}, t0)
	require.NoError(t, err)
	assert.Equal(t, "SUMMER10", c.Code())
	assert.True(t, c.IsActive())

	_, err = NewCode(NewCodeParams{Code: "X", Kind: KindPercent, Value: decimal.NewFromInt(101)}, t0)
	assert.Error(t, err)
	_, err = NewCode(NewCodeParams{Code: "X", Kind: "bogo", Value: decimal.NewFromInt(1)}, t0)
	assert.Error(t, err)
	_, err = NewCode(NewCodeParams{Code: "X", Kind: KindFixed, Value: decimal.NewFromInt(1), StartsAt: &later, EndsAt: &t0}, t0)
	assert.Error(t, err)
}
