package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/shared/biztime"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const defaultSweepBatchSize = 100

var errClaimNotStale = errors.New("claim is no longer stale")

// SweepStaleClaimsUseCase closes pending claims nobody reviewed within the
// TTL. It only ever fails claims; orders stay PENDING so the customer can
// submit a fresh claim.
type SweepStaleClaimsUseCase struct {
	claimRepo banktransfer.ClaimRepository
	txMgr     TransactionManager
	ttl       time.Duration
	batchSize int
	metrics   PaymentMetrics
	now       func() time.Time
	logger    logger.Interface
}

func NewSweepStaleClaimsUseCase(
	claimRepo banktransfer.ClaimRepository,
	txMgr TransactionManager,
	ttl time.Duration,
	logger logger.Interface,
) *SweepStaleClaimsUseCase {
	return &SweepStaleClaimsUseCase{
		claimRepo: claimRepo,
		txMgr:     txMgr,
		ttl:       ttl,
		batchSize: defaultSweepBatchSize,
		metrics:   noopMetrics{},
		now:       biztime.NowUTC,
		logger:    logger,
	}
}

func (uc *SweepStaleClaimsUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

// Enabled reports whether a TTL is configured.
func (uc *SweepStaleClaimsUseCase) Enabled() bool {
	return uc.ttl > 0
}

// Execute closes at most one batch of expired claims and returns how many
// were closed.
func (uc *SweepStaleClaimsUseCase) Execute(ctx context.Context) (int, error) {
	if !uc.Enabled() {
		return 0, nil
	}

	now := uc.now()
	stale, err := uc.claimRepo.ListPendingSubmittedBefore(ctx, now.Add(-uc.ttl), uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale claims: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found stale bank transfer claims", "count", len(stale), "ttl", uc.ttl.String())

	closed := 0
	for _, c := range stale {
		err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
			locked, err := uc.claimRepo.GetByIDForUpdate(ctx, c.ID())
			if err != nil {
				return err
			}
			// decided or resubmitted since the listing
			if !locked.IsExpired(uc.ttl, now) {
				return errClaimNotStale
			}
			if err := locked.Close(banktransfer.NoteExpired, now); err != nil {
				return err
			}
			return uc.claimRepo.Update(ctx, locked, banktransfer.ClaimStatusPending)
		})
		if err != nil {
			if !errors.Is(err, banktransfer.ErrAlreadyDecided) && !errors.Is(err, errClaimNotStale) {
				uc.logger.Warnw("failed to close stale claim",
					"claim_id", c.ID(),
					"order_id", c.OrderID(),
					"error", err,
				)
			}
			continue
		}
		closed++
		uc.metrics.ClaimAction(ClaimActionExpired)
	}

	uc.logger.Infow("stale bank transfer claims closed", "closed", closed, "found", len(stale))
	return closed, nil
}
