package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/domain/paymentmethod"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
)

func boolPtr(b bool) *bool {
	return &b
}

func strPtr(s string) *string {
	return &s
}

func methodIDs(methods []*paymentmethod.Method) []string {
	ids := make([]string, 0, len(methods))
	for _, m := range methods {
		ids = append(ids, m.ID().String())
	}
	return ids
}

func TestListAvailableMethods_ReadThroughCache(t *testing.T) {
	env := newTestEnv(t)
	var stored []*paymentmethod.Method
	cache := &mockMethodCache{
		GetAvailableFunc: func(context.Context) ([]*paymentmethod.Method, error) {
			return stored, nil
		},
		SetAvailableFunc: func(_ context.Context, methods []*paymentmethod.Method) error {
			stored = methods
			return nil
		},
	}
	uc := NewListAvailableMethodsUseCase(env.methods, env.log)
	uc.SetCache(cache)

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.Equal(t, []string{"cod", "bank_transfer", "vnpay"}, methodIDs(stored))

	// served from the cache even though the store changed underneath
	require.NoError(t, env.db.Table("payment_methods").Where("id = ?", "vnpay").Update("enabled", false).Error)
	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 3)
}

func TestListAvailableMethods_CacheErrorFallsBack(t *testing.T) {
	env := newTestEnv(t)
	uc := NewListAvailableMethodsUseCase(env.methods, env.log)
	uc.SetCache(&mockMethodCache{
		GetAvailableFunc: func(context.Context) ([]*paymentmethod.Method, error) {
			return nil, errors.New("redis down")
		},
	})

	methods, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, methods, 3)
}

func TestUpdateMethods_Atomic(t *testing.T) {
	env := newTestEnv(t)
	invalidated := 0
	uc := NewUpdateMethodsUseCase(env.methods, env.txMgr, env.log)
	uc.SetCache(&mockMethodCache{InvalidateFunc: func(context.Context) error {
		invalidated++
		return nil
	}})

	// renaming vnpay is fine but disabling the default without a replacement is not
	_, err := uc.Execute(context.Background(), UpdateMethodsCommand{Changes: []MethodChange{
		{ID: "vnpay", Name: strPtr("VNPAY QR")},
		{ID: "cod", Enabled: boolPtr(false)},
	}})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Equal(t, 0, invalidated)

	all, err := env.methods.ListAll(context.Background())
	require.NoError(t, err)
	for _, m := range all {
		assert.NotEqual(t, "VNPAY QR", m.Name(), "partial update must not be persisted")
	}

	fee := int64(5000)
	res, err := uc.Execute(context.Background(), UpdateMethodsCommand{
		Changes: []MethodChange{
			{ID: "vnpay", Name: strPtr("VNPAY QR"), Fee: &fee},
			{ID: "cod", Enabled: boolPtr(false)},
		},
		Default: strPtr("bank_transfer"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, invalidated)

	byID := map[string]bool{}
	for _, m := range res {
		byID[m.ID] = m.IsDefault
		if m.ID == "vnpay" {
			assert.Equal(t, "VNPAY QR", m.Name)
			assert.Equal(t, int64(5000), m.Fee)
		}
		if m.ID == "cod" {
			assert.False(t, m.Enabled)
		}
	}
	assert.True(t, byID["bank_transfer"])
	assert.False(t, byID["cod"])
}

func TestUpdateMethods_Errors(t *testing.T) {
	env := newTestEnv(t)
	uc := NewUpdateMethodsUseCase(env.methods, env.txMgr, env.log)

	_, err := uc.Execute(context.Background(), UpdateMethodsCommand{Changes: []MethodChange{{ID: "crypto"}}})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), UpdateMethodsCommand{Changes: []MethodChange{
		{ID: "cod", Enabled: boolPtr(false)},
		{ID: "bank_transfer", Enabled: boolPtr(false)},
		{ID: "vnpay", Enabled: boolPtr(false)},
	}, Default: strPtr("vnpay")})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestToggleMethod(t *testing.T) {
	env := newTestEnv(t)
	uc := NewToggleMethodUseCase(env.methods, env.txMgr, env.log)
	ctx := context.Background()

	res, err := uc.Execute(ctx, ToggleMethodCommand{ID: "vnpay"})
	require.NoError(t, err)
	assert.False(t, res.Enabled)

	res, err = uc.Execute(ctx, ToggleMethodCommand{ID: "vnpay"})
	require.NoError(t, err)
	assert.True(t, res.Enabled)

	_, err = uc.Execute(ctx, ToggleMethodCommand{ID: "cod"})
	assert.True(t, apperrors.IsValidationError(err), "default needs a replacement")

	res, err = uc.Execute(ctx, ToggleMethodCommand{ID: "cod", NewDefault: strPtr("vnpay")})
	require.NoError(t, err)
	assert.False(t, res.Enabled)
	assert.False(t, res.IsDefault)

	all, err := NewListAllMethodsUseCase(env.methods, env.log).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, m := range all {
		assert.Equal(t, m.ID == "vnpay", m.IsDefault)
	}
}
