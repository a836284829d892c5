package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// DecideClaimCommand is a staff decision on one claim.
type DecideClaimCommand struct {
	ClaimID         uint
	Note            string
	VerifierID      uint
	// TransactionCode, when set on verify, must match the code on the claim.
	// Staff pass the reference they found on the bank statement.
	TransactionCode string
}

// claimDecider applies a staff decision to a claim and the matching
// transition to its order in a single settlement transaction.
type claimDecider struct {
	claimRepo    banktransfer.ClaimRepository
	settlement   *SettlementService
	strictAmount bool
	metrics      PaymentMetrics
	logger       logger.Interface
}

func (d *claimDecider) decide(ctx context.Context, cmd DecideClaimCommand, verify bool) (*dto.ClaimDecisionDTO, error) {
	claim, err := d.claimRepo.GetByID(ctx, cmd.ClaimID)
	if err != nil {
		return nil, err
	}
	if !claim.Status().IsPending() {
		return nil, apperrors.NewAlreadyDecidedError("claim already decided", claim.Status().String())
	}

	event := vo.PaymentEventBankClaimRejected
	action := ClaimActionRejected
	if verify {
		event = vo.PaymentEventBankClaimVerified
		action = ClaimActionVerified
	}

	var (
		decided  *banktransfer.Claim
		mismatch bool
	)
	result, err := d.settlement.Settle(ctx, SettleCommand{
		OrderID: claim.OrderID(),
		Event:   event,
		Reason:  cmd.Note,
		Apply: func(ctx context.Context, before, _ *order.Order) error {
			locked, err := d.claimRepo.GetByIDForUpdate(ctx, cmd.ClaimID)
			if err != nil {
				return err
			}
			if verify && cmd.TransactionCode != "" &&
				!strings.EqualFold(strings.TrimSpace(cmd.TransactionCode), locked.TransactionCode()) {
				return apperrors.NewValidationError("transaction code does not match the claim")
			}
			mismatch = !locked.AmountMatches(before.TotalAmount())
			if verify && mismatch && d.strictAmount {
				return apperrors.NewValidationError("claimed amount does not match order total",
					locked.ClaimedAmount().Decimal().String(), before.TotalAmount().Decimal().String())
			}

			now := d.settlement.now()
			if verify {
				err = locked.Verify(cmd.Note, cmd.VerifierID, now)
			} else {
				err = locked.Reject(cmd.Note, cmd.VerifierID, now)
			}
			if errors.Is(err, banktransfer.ErrAlreadyDecided) {
				return apperrors.NewAlreadyDecidedError("claim already decided", locked.Status().String())
			}
			if err != nil {
				return err
			}
			if err := d.claimRepo.Update(ctx, locked, banktransfer.ClaimStatusPending); err != nil {
				if errors.Is(err, banktransfer.ErrAlreadyDecided) {
					return apperrors.NewAlreadyDecidedError("claim already decided")
				}
				return err
			}
			decided = locked
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.NewAlreadyFinalizedError("order is already finalized", result.Order.PaymentStatus().String())
	}

	d.metrics.ClaimAction(action)
	if mismatch {
		logger.Security(d.logger, "bank transfer claim amount differs from order total",
			"claim_id", decided.ID(),
			"order_id", decided.OrderID(),
			"claimed", decided.ClaimedAmount().Decimal().String(),
			"total", result.Order.TotalAmount().Decimal().String(),
			"action", action,
		)
	}
	d.logger.Infow("bank transfer claim "+action,
		"claim_id", decided.ID(),
		"order_id", decided.OrderID(),
		"verifier_id", cmd.VerifierID,
		"order_status", result.Order.PaymentStatus(),
	)

	return &dto.ClaimDecisionDTO{
		Claim:          dto.ToClaimDTO(decided),
		Order:          dto.ToPaymentStatusDTO(result.Order, nil),
		AmountMismatch: mismatch,
	}, nil
}
