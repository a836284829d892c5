package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type ConfirmCashCollectedCommand struct {
	OrderID uint
	StaffID uint
}

// ConfirmCashCollectedUseCase settles a cash-on-delivery order once the
// courier has handed over the money.
type ConfirmCashCollectedUseCase struct {
	settlement *SettlementService
	logger     logger.Interface
}

func NewConfirmCashCollectedUseCase(settlement *SettlementService, logger logger.Interface) *ConfirmCashCollectedUseCase {
	return &ConfirmCashCollectedUseCase{settlement: settlement, logger: logger}
}

func (uc *ConfirmCashCollectedUseCase) Execute(ctx context.Context, cmd ConfirmCashCollectedCommand) (*dto.PaymentStatusDTO, error) {
	result, err := uc.settlement.Settle(ctx, SettleCommand{
		OrderID: cmd.OrderID,
		Event:   vo.PaymentEventCashCollected,
		Apply: func(_ context.Context, before, _ *order.Order) error {
			if before.PaymentMethod() != vo.PaymentMethodCOD {
				return apperrors.NewValidationError("order is not a cash on delivery order", before.PaymentMethod().String())
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !result.Changed {
		return nil, apperrors.NewAlreadyFinalizedError("order is already finalized", result.Order.PaymentStatus().String())
	}

	uc.logger.Infow("cash collected for order",
		"order_id", cmd.OrderID,
		"staff_id", cmd.StaffID,
		"amount", result.Order.TotalAmount().Decimal().String(),
	)
	return dto.ToPaymentStatusDTO(result.Order, nil), nil
}
