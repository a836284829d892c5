package usecases

import (
	"context"
	"strings"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type CancelOrderCommand struct {
	OrderID uint
	Reason  string
	StaffID uint
}

type CancelOrderUseCase struct {
	settlement *SettlementService
	logger     logger.Interface
}

func NewCancelOrderUseCase(settlement *SettlementService, logger logger.Interface) *CancelOrderUseCase {
	return &CancelOrderUseCase{settlement: settlement, logger: logger}
}

// Execute cancels a pending order. Cancelling an order that is already
// final returns an already-finalized error with the stored status untouched.
func (uc *CancelOrderUseCase) Execute(ctx context.Context, cmd CancelOrderCommand) (*dto.PaymentStatusDTO, error) {
	reason := strings.TrimSpace(cmd.Reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("cancellation reason is required")
	}

	result, err := uc.settlement.Settle(ctx, SettleCommand{
		OrderID: cmd.OrderID,
		Event:   vo.PaymentEventAdminCancelled,
		Reason:  reason,
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.NewAlreadyFinalizedError("order is already finalized", result.Order.PaymentStatus().String())
	}

	uc.logger.Infow("order cancelled by staff",
		"order_id", cmd.OrderID,
		"staff_id", cmd.StaffID,
		"reason", reason,
	)
	return dto.ToPaymentStatusDTO(result.Order, nil), nil
}
