package handlers

import (
	"context"

	"github.com/vnstore/paycore/internal/application/payment/dto"
	"github.com/vnstore/paycore/internal/application/payment/usecases"
)

// Use case interfaces for the payment handlers

type createOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOrderCommand) (*dto.CheckoutDTO, error)
}

type getPaymentStatusUseCase interface {
	Execute(ctx context.Context, orderID uint) (*dto.PaymentStatusDTO, error)
	ExecuteByCode(ctx context.Context, orderCode string) (*dto.PaymentStatusDTO, error)
}

type listCallbackLogsUseCase interface {
	Execute(ctx context.Context, orderID uint) ([]*dto.CallbackLogDTO, error)
}

type cancelOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.CancelOrderCommand) (*dto.PaymentStatusDTO, error)
}

type confirmCashCollectedUseCase interface {
	Execute(ctx context.Context, cmd usecases.ConfirmCashCollectedCommand) (*dto.PaymentStatusDTO, error)
}

type submitClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.SubmitClaimCommand) (*dto.ClaimDTO, error)
}

type decideClaimUseCase interface {
	Execute(ctx context.Context, cmd usecases.DecideClaimCommand) (*dto.ClaimDecisionDTO, error)
}

type appendClaimNoteUseCase interface {
	Execute(ctx context.Context, cmd usecases.AppendClaimNoteCommand) (*dto.ClaimDTO, error)
}

type listClaimsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClaimsQuery) (*usecases.ListClaimsResult, error)
}

type generateQRUseCase interface {
	Execute(ctx context.Context, cmd usecases.GenerateQRCommand) (*dto.QRCodeDTO, error)
}

type listBankAccountsUseCase interface {
	Execute(ctx context.Context) ([]*dto.BankAccountDTO, error)
}

type createVNPayPaymentUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateVNPayPaymentCommand) (*dto.VNPayPaymentDTO, error)
}

type handleVNPayCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleVNPayCallbackCommand) *usecases.VNPayCallbackResult
}

type listMethodsUseCase interface {
	Execute(ctx context.Context) ([]*dto.PaymentMethodDTO, error)
}

type updateMethodsUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateMethodsCommand) ([]*dto.PaymentMethodDTO, error)
}

type toggleMethodUseCase interface {
	Execute(ctx context.Context, cmd usecases.ToggleMethodCommand) (*dto.PaymentMethodDTO, error)
}
