package usecases

import (
	"context"
	"fmt"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

// responseCodeRedirect is the success code returned alongside a payment URL.
const responseCodeRedirect = "00"

type CreateVNPayPaymentCommand struct {
	OrderID   uint
	OrderInfo string
	// Amount is optional; when set it must equal the order total.
	Amount    *int64
	ReturnURL string
	ClientIP  string
}

type CreateVNPayPaymentUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.Gateway
	logger    logger.Interface
}

func NewCreateVNPayPaymentUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.Gateway,
	logger logger.Interface,
) *CreateVNPayPaymentUseCase {
	return &CreateVNPayPaymentUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		logger:    logger,
	}
}

// Execute builds the signed gateway URL for a pending VNPAY order. The order
// is not modified; calling it again simply yields a fresh URL.
func (uc *CreateVNPayPaymentUseCase) Execute(ctx context.Context, cmd CreateVNPayPaymentCommand) (*dto.VNPayPaymentDTO, error) {
	o, err := uc.orderRepo.GetByID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if o.PaymentMethod() != vo.PaymentMethodVNPay {
		return nil, apperrors.NewValidationError("order is not a VNPAY order", o.PaymentMethod().String())
	}
	if o.IsTerminal() {
		return nil, apperrors.NewAlreadyFinalizedError("order is already finalized", o.PaymentStatus().String())
	}
	if cmd.Amount != nil && !o.TotalAmount().Equals(vo.NewMoneyFromInt(*cmd.Amount)) {
		logger.Security(uc.logger, "payment amount does not match order total",
			"order_id", o.ID(),
			"requested", *cmd.Amount,
			"total", o.TotalAmount().Decimal().String(),
		)
		return nil, apperrors.NewAmountMismatchError("amount does not match order total")
	}

	paymentURL, err := uc.gateway.BuildRedirect(ctx, paymentgateway.RedirectRequest{
		OrderID:   o.ID(),
		OrderCode: o.OrderCode(),
		Amount:    o.TotalAmount(),
		OrderInfo: cmd.OrderInfo,
		ReturnURL: cmd.ReturnURL,
		ClientIP:  cmd.ClientIP,
	})
	if err != nil {
		uc.logger.Errorw("failed to build vnpay redirect", "error", err, "order_id", o.ID())
		return nil, apperrors.NewGatewayUnavailableError("failed to create payment", fmt.Sprint(o.ID()))
	}

	uc.logger.Infow("vnpay payment created",
		"order_id", o.ID(),
		"order_code", o.OrderCode(),
		"amount", o.TotalAmount().Decimal().String(),
	)

	return &dto.VNPayPaymentDTO{
		Code:       responseCodeRedirect,
		PaymentURL: paymentURL,
		OrderID:    o.ID(),
	}, nil
}
