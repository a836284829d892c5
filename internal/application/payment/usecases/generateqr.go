package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	"github.com/vnstore/paycore/internal/domain/banktransfer"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

type GenerateQRCommand struct {
	BankCode      string
	AccountNumber string
	AccountName   string
	Amount        int64
	Description   string
}

// GenerateQRUseCase renders a VietQR code for a bank transfer. Renderer
// outages produce a degraded static code instead of an error.
type GenerateQRUseCase struct {
	generator       paymentgateway.QRGenerator
	bankAccountRepo banktransfer.BankAccountRepository
	metrics         PaymentMetrics
	logger          logger.Interface
}

func NewGenerateQRUseCase(
	generator paymentgateway.QRGenerator,
	bankAccountRepo banktransfer.BankAccountRepository,
	logger logger.Interface,
) *GenerateQRUseCase {
	return &GenerateQRUseCase{
		generator:       generator,
		bankAccountRepo: bankAccountRepo,
		metrics:         noopMetrics{},
		logger:          logger,
	}
}

func (uc *GenerateQRUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

func (uc *GenerateQRUseCase) Execute(ctx context.Context, cmd GenerateQRCommand) (*dto.QRCodeDTO, error) {
	if cmd.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	req := paymentgateway.QRRequest{
		BankCode:      cmd.BankCode,
		AccountNumber: cmd.AccountNumber,
		AccountName:   cmd.AccountName,
		Amount:        vo.NewMoneyFromInt(cmd.Amount),
		Description:   cmd.Description,
	}

	// a stored account may carry a pre-rendered image used when the renderer is down
	if account, err := uc.bankAccountRepo.GetByAccountNumber(ctx, cmd.BankCode, cmd.AccountNumber); err == nil && account.IsActive() {
		req.FallbackImageRef = account.QRImageRef()
	} else if err != nil && !apperrors.IsNotFoundError(err) {
		uc.logger.Warnw("failed to look up bank account for qr", "error", err, "bank_code", cmd.BankCode)
	}

	result, err := uc.generator.Generate(ctx, req)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid qr request", err.Error())
	}

	uc.metrics.QRRendered(result.Degraded)
	if result.Degraded {
		uc.logger.Warnw("qr renderer unavailable, served static code",
			"bank_code", cmd.BankCode,
			"amount", cmd.Amount,
		)
	}

	return &dto.QRCodeDTO{
		QRURL:    result.URL,
		Payload:  result.Payload,
		Degraded: result.Degraded,
	}, nil
}
