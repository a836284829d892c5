package usecases

import (
	"context"
	"strings"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type RejectClaimUseCase struct {
	decider *claimDecider
}

func NewRejectClaimUseCase(
	claimRepo banktransfer.ClaimRepository,
	settlement *SettlementService,
	logger logger.Interface,
) *RejectClaimUseCase {
	return &RejectClaimUseCase{
		decider: &claimDecider{
			claimRepo:  claimRepo,
			settlement: settlement,
			metrics:    noopMetrics{},
			logger:     logger,
		},
	}
}

func (uc *RejectClaimUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.decider.metrics = m
	}
}

// Execute rejects the claim and fails the order. A note is required so the
// customer can be told why.
func (uc *RejectClaimUseCase) Execute(ctx context.Context, cmd DecideClaimCommand) (*dto.ClaimDecisionDTO, error) {
	if strings.TrimSpace(cmd.Note) == "" {
		return nil, apperrors.NewValidationError("rejection note is required")
	}
	return uc.decider.decide(ctx, cmd, false)
}
