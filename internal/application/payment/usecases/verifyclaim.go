package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// VerifyClaimUseCase confirms that the money of a claim arrived and moves
// the order to VERIFIED.
type VerifyClaimUseCase struct {
	decider *claimDecider
}

func NewVerifyClaimUseCase(
	claimRepo banktransfer.ClaimRepository,
	settlement *SettlementService,
	strictAmount bool,
	logger logger.Interface,
) *VerifyClaimUseCase {
	return &VerifyClaimUseCase{
		decider: &claimDecider{
			claimRepo:    claimRepo,
			settlement:   settlement,
			strictAmount: strictAmount,
			metrics:      noopMetrics{},
			logger:       logger,
		},
	}
}

func (uc *VerifyClaimUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.decider.metrics = m
	}
}

func (uc *VerifyClaimUseCase) Execute(ctx context.Context, cmd DecideClaimCommand) (*dto.ClaimDecisionDTO, error) {
	return uc.decider.decide(ctx, cmd, true)
}
