package usecases

import (
	"context"
	"errors"
	"net/url"

	"github.com/vnstore/paycore/internal/application/payment/paymentgateway"
	"github.com/vnstore/paycore/internal/domain/order"
	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
	"github.com/vnstore/paycore/internal/shared/biztime"
	apperrors "github.com/vnstore/paycore/internal/shared/errors"
	"github.com/vnstore/paycore/internal/shared/logger"
)

const reasonAmountMismatch = "amount reported by gateway does not match order total"

type HandleVNPayCallbackCommand struct {
	// Source is order.CallbackSourceReturn or order.CallbackSourceIPN.
	Source   string
	Params   url.Values
	ClientIP string
}

// VNPayCallbackResult describes what a callback did. Outcome is one of the
// order.CallbackOutcome values and drives the acknowledgment sent back.
type VNPayCallbackResult struct {
	Outcome string
	OrderID uint
	// Success reports whether the order is paid after this callback.
	Success bool
	Message string
}

// HandleVNPayCallbackUseCase processes browser returns and server-to-server
// notifications identically. Every callback is written to the audit log,
// whatever its outcome.
type HandleVNPayCallbackUseCase struct {
	orderRepo   order.Repository
	callbackLog order.CallbackLogRepository
	gateway     paymentgateway.Gateway
	settlement  *SettlementService
	metrics     PaymentMetrics
	logger      logger.Interface
}

func NewHandleVNPayCallbackUseCase(
	orderRepo order.Repository,
	callbackLog order.CallbackLogRepository,
	gateway paymentgateway.Gateway,
	settlement *SettlementService,
	logger logger.Interface,
) *HandleVNPayCallbackUseCase {
	return &HandleVNPayCallbackUseCase{
		orderRepo:   orderRepo,
		callbackLog: callbackLog,
		gateway:     gateway,
		settlement:  settlement,
		metrics:     noopMetrics{},
		logger:      logger,
	}
}

func (uc *HandleVNPayCallbackUseCase) SetMetrics(m PaymentMetrics) {
	if m != nil {
		uc.metrics = m
	}
}

func (uc *HandleVNPayCallbackUseCase) Execute(ctx context.Context, cmd HandleVNPayCallbackCommand) *VNPayCallbackResult {
	entry := &order.CallbackLog{
		Source:    cmd.Source,
		TxnRef:    cmd.Params.Get("vnp_TxnRef"),
		ClientIP:  cmd.ClientIP,
		CreatedAt: biztime.NowUTC(),
	}

	result := uc.process(ctx, cmd, entry)

	entry.Outcome = result.Outcome
	if result.OrderID != 0 {
		id := result.OrderID
		entry.OrderID = &id
	}
	if entry.RawParams == nil {
		entry.RawParams = rawCallbackParams(cmd.Params)
	}
	if err := uc.callbackLog.Create(ctx, entry); err != nil {
		uc.logger.Errorw("failed to write callback audit log",
			"error", err,
			"source", cmd.Source,
			"txn_ref", entry.TxnRef,
			"outcome", result.Outcome,
		)
	}

	uc.metrics.CallbackReceived(cmd.Source, result.Outcome)
	return result
}

func (uc *HandleVNPayCallbackUseCase) process(ctx context.Context, cmd HandleVNPayCallbackCommand, entry *order.CallbackLog) *VNPayCallbackResult {
	data, err := uc.gateway.VerifyCallback(cmd.Params)
	if err != nil {
		if errors.Is(err, paymentgateway.ErrSignatureInvalid) {
			logger.Security(uc.logger, "gateway callback signature invalid",
				"source", cmd.Source,
				"txn_ref", entry.TxnRef,
				"client_ip", cmd.ClientIP,
			)
			return &VNPayCallbackResult{Outcome: order.CallbackOutcomeSignatureInvalid, Message: "invalid signature"}
		}
		uc.logger.Warnw("malformed gateway callback", "error", err, "source", cmd.Source, "txn_ref", entry.TxnRef)
		return &VNPayCallbackResult{Outcome: order.CallbackOutcomeMalformed, Message: "invalid callback"}
	}

	entry.SignatureValid = true
	entry.ResponseCode = data.ResponseCode
	entry.RawParams = data.RawParams

	o, err := uc.orderRepo.GetByID(ctx, data.OrderID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Warnw("gateway callback for unknown order", "txn_ref", data.TxnRef, "source", cmd.Source)
			return &VNPayCallbackResult{Outcome: order.CallbackOutcomeOrderNotFound, Message: "order not found"}
		}
		uc.logger.Errorw("failed to load order for callback", "error", err, "order_id", data.OrderID)
		return &VNPayCallbackResult{Outcome: order.CallbackOutcomeProcessingFailure, OrderID: data.OrderID, Message: "processing failed"}
	}
	if o.OrderCode() != data.OrderCode {
		logger.Security(uc.logger, "gateway callback order code mismatch",
			"order_id", data.OrderID,
			"txn_ref", data.TxnRef,
		)
		return &VNPayCallbackResult{Outcome: order.CallbackOutcomeOrderNotFound, Message: "order not found"}
	}

	if o.IsTerminal() {
		return duplicateResult(o)
	}

	outcome := order.CallbackOutcomeApplied
	event := vo.PaymentEventGatewayFailure
	reason := data.FailureReason
	if data.Success {
		event = vo.PaymentEventGatewaySuccess
	}
	if err := o.ValidateCallbackAmount(data.Amount); err != nil {
		logger.Security(uc.logger, "gateway callback amount mismatch",
			"order_id", o.ID(),
			"txn_ref", data.TxnRef,
			"reported", data.Amount.Decimal().String(),
			"total", o.TotalAmount().Decimal().String(),
		)
		outcome = order.CallbackOutcomeAmountMismatch
		event = vo.PaymentEventGatewayFailure
		reason = reasonAmountMismatch
	}

	settled, err := uc.settlement.Settle(ctx, SettleCommand{
		OrderID: o.ID(),
		Event:   event,
		Reason:  reason,
	})
	if err != nil {
		uc.logger.Errorw("failed to settle order from callback",
			"error", err,
			"order_id", o.ID(),
			"event", event,
			"source", cmd.Source,
		)
		return &VNPayCallbackResult{Outcome: order.CallbackOutcomeProcessingFailure, OrderID: o.ID(), Message: "processing failed"}
	}
	if !settled.Changed {
		return duplicateResult(settled.Order)
	}

	res := &VNPayCallbackResult{
		Outcome: outcome,
		OrderID: o.ID(),
		Success: settled.Order.PaymentStatus().IsSuccess(),
	}
	switch {
	case res.Success:
		res.Message = "payment successful"
	case reason != "":
		res.Message = reason
	default:
		res.Message = "payment failed"
	}
	return res
}

func duplicateResult(o *order.Order) *VNPayCallbackResult {
	return &VNPayCallbackResult{
		Outcome: order.CallbackOutcomeDuplicate,
		OrderID: o.ID(),
		Success: o.PaymentStatus().IsSuccess(),
		Message: "order already " + o.PaymentStatus().String(),
	}
}

// rawCallbackParams keeps the gateway fields of an unverified callback for
// the audit log. The signature itself is not stored.
func rawCallbackParams(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) == 0 || k == "vnp_SecureHash" {
			continue
		}
		out[k] = v[0]
	}
	return out
}
