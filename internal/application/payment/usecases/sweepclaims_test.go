package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/infrastructure/repository"
)

func TestSweepStaleClaims(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stale := env.createOrder(t, vo.PaymentMethodBankTransfer)
	fresh := env.createOrder(t, vo.PaymentMethodBankTransfer)
	staleClaim := submitTestClaim(t, env, stale.ID(), 30000)
	freshClaim := submitTestClaim(t, env, fresh.ID(), 30000)

	// age the first claim past the TTL
	require.NoError(t, env.db.Table("bank_transfer_claims").Where("id = ?", staleClaim).
		Update("submitted_at", time.Now().UTC().Add(-72*time.Hour)).Error)

	uc := NewSweepStaleClaimsUseCase(env.claims, env.txMgr, 48*time.Hour, env.log)
	uc.SetMetrics(env.metrics)

	closed, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	c, err := env.claims.GetByID(ctx, staleClaim)
	require.NoError(t, err)
	assert.Equal(t, banktransfer.ClaimStatusFailed, c.Status())
	require.NotNil(t, c.Note())
	assert.Equal(t, banktransfer.NoteExpired, *c.Note())
	assert.Nil(t, c.VerifierID())

	c, err = env.claims.GetByID(ctx, freshClaim)
	require.NoError(t, err)
	assert.Equal(t, banktransfer.ClaimStatusPending, c.Status())

	// the order stays open so the customer can claim again
	assert.Equal(t, vo.PaymentStatusPending, env.status(t, stale.ID()))
	submitTestClaim(t, env, stale.ID(), 30000)

	closed, err = uc.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
	assert.Equal(t, 1, env.metrics.claimActions[ClaimActionExpired])
}

// decidingClaimRepo verifies every listed claim before the sweep gets to it.
type decidingClaimRepo struct {
	*repository.BankTransferClaimRepository
}

func (r decidingClaimRepo) ListPendingSubmittedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*banktransfer.Claim, error) {
	stale, err := r.BankTransferClaimRepository.ListPendingSubmittedBefore(ctx, cutoff, limit)
	if err != nil {
		return nil, err
	}
	for _, c := range stale {
		fresh, err := r.GetByID(ctx, c.ID())
		if err != nil {
			return nil, err
		}
		if err := fresh.Verify("matched statement", 3, testNow); err != nil {
			return nil, err
		}
		if err := r.Update(ctx, fresh, banktransfer.ClaimStatusPending); err != nil {
			return nil, err
		}
	}
	return stale, nil
}

func TestSweepStaleClaims_SkipsClaimDecidedAfterListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	o := env.createOrder(t, vo.PaymentMethodBankTransfer)
	claimID := submitTestClaim(t, env, o.ID(), 30000)
	require.NoError(t, env.db.Table("bank_transfer_claims").Where("id = ?", claimID).
		Update("submitted_at", time.Now().UTC().Add(-72*time.Hour)).Error)

	uc := NewSweepStaleClaimsUseCase(decidingClaimRepo{env.claims}, env.txMgr, 48*time.Hour, env.log)
	uc.SetMetrics(env.metrics)

	closed, err := uc.Execute(ctx)
	require.NoError(t, err)
	assert.Zero(t, closed)
	assert.Zero(t, env.metrics.claimActions[ClaimActionExpired])

	c, err := env.claims.GetByID(ctx, claimID)
	require.NoError(t, err)
	assert.Equal(t, banktransfer.ClaimStatusVerified, c.Status())
	require.NotNil(t, c.Note())
	assert.Equal(t, "matched statement", *c.Note())
}

func TestSweepStaleClaims_DisabledWithoutTTL(t *testing.T) {
	env := newTestEnv(t)
	uc := NewSweepStaleClaimsUseCase(env.claims, env.txMgr, 0, env.log)

	assert.False(t, uc.Enabled())
	closed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, closed)
}

func TestListClaims(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		o := env.createOrder(t, vo.PaymentMethodBankTransfer)
		submitTestClaim(t, env, o.ID(), 30000)
	}
	uc := NewListClaimsUseCase(env.claims, env.log)

	res, err := uc.Execute(context.Background(), ListClaimsQuery{Status: "pending", Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Total)
	assert.Len(t, res.Claims, 2)
	assert.True(t, !res.Claims[0].SubmittedAt.After(res.Claims[1].SubmittedAt))

	_, err = uc.Execute(context.Background(), ListClaimsQuery{Status: "approved"})
	assert.Error(t, err)
}
