package usecases

import (
	"context"
	"strings"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type GetPaymentStatusUseCase struct {
	orderRepo order.Repository
	claimRepo banktransfer.ClaimRepository
	logger    logger.Interface
}

func NewGetPaymentStatusUseCase(
	orderRepo order.Repository,
	claimRepo banktransfer.ClaimRepository,
	logger logger.Interface,
) *GetPaymentStatusUseCase {
	return &GetPaymentStatusUseCase{
		orderRepo: orderRepo,
		claimRepo: claimRepo,
		logger:    logger,
	}
}

// Execute returns the order's payment state. Bank transfer orders also carry
// their claim history and the claim awaiting review, if any.
func (uc *GetPaymentStatusUseCase) Execute(ctx context.Context, orderID uint) (*dto.PaymentStatusDTO, error) {
	o, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return uc.build(ctx, o), nil
}

// ExecuteByCode looks the order up by the code printed on the customer's
// receipt and transfer note.
func (uc *GetPaymentStatusUseCase) ExecuteByCode(ctx context.Context, orderCode string) (*dto.PaymentStatusDTO, error) {
	code := strings.ToUpper(strings.TrimSpace(orderCode))
	if code == "" {
		return nil, apperrors.NewValidationError("order code is required")
	}
	o, err := uc.orderRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return uc.build(ctx, o), nil
}

func (uc *GetPaymentStatusUseCase) build(ctx context.Context, o *order.Order) *dto.PaymentStatusDTO {
	if o.PaymentMethod() != vo.PaymentMethodBankTransfer {
		return dto.ToPaymentStatusDTO(o, nil)
	}

	claims, err := uc.claimRepo.ListByOrderID(ctx, o.ID())
	if err != nil {
		uc.logger.Warnw("failed to load bank transfer claims", "error", err, "order_id", o.ID())
		return dto.ToPaymentStatusDTO(o, nil)
	}

	var pending *banktransfer.Claim
	for _, c := range claims {
		if c.Status().IsPending() {
			pending = c
		}
	}
	status := dto.ToPaymentStatusDTO(o, pending)
	status.Claims = dto.ToClaimDTOList(claims)
	return status
}
