package http

import (
	paymentUsecases "github.com/vnstore/paycore/internal/application/payment/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Orders
	createOrderUC          *paymentUsecases.CreateOrderUseCase
	getPaymentStatusUC     *paymentUsecases.GetPaymentStatusUseCase
	cancelOrderUC          *paymentUsecases.CancelOrderUseCase
	confirmCashCollectedUC *paymentUsecases.ConfirmCashCollectedUseCase
	listCallbackLogsUC     *paymentUsecases.ListCallbackLogsUseCase

	// VNPAY
	createVNPayPaymentUC  *paymentUsecases.CreateVNPayPaymentUseCase
	handleVNPayCallbackUC *paymentUsecases.HandleVNPayCallbackUseCase

	// Bank transfer
	submitClaimUC      *paymentUsecases.SubmitClaimUseCase
	verifyClaimUC      *paymentUsecases.VerifyClaimUseCase
	rejectClaimUC      *paymentUsecases.RejectClaimUseCase
	appendClaimNoteUC  *paymentUsecases.AppendClaimNoteUseCase
	listClaimsUC       *paymentUsecases.ListClaimsUseCase
	sweepClaims        *paymentUsecases.SweepStaleClaimsUseCase
	generateQRUC       *paymentUsecases.GenerateQRUseCase
	listBankAccountsUC *paymentUsecases.ListBankAccountsUseCase

	// Payment methods
	listAvailableMethodsUC *paymentUsecases.ListAvailableMethodsUseCase
	listAllMethodsUC       *paymentUsecases.ListAllMethodsUseCase
	updateMethodsUC        *paymentUsecases.UpdateMethodsUseCase
	toggleMethodUC         *paymentUsecases.ToggleMethodUseCase
}

// ============================================================
// Section 3: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	r := c.repos
	s := c.svcs
	bt := c.cfg.BankTransfer

	ucs := &allUseCases{
		createOrderUC:          paymentUsecases.NewCreateOrderUseCase(r.orderRepo, r.methodRepo, r.discountRepo, r.bankAccountRepo, r.txMgr, log),
		getPaymentStatusUC:     paymentUsecases.NewGetPaymentStatusUseCase(r.orderRepo, r.claimRepo, log),
		cancelOrderUC:          paymentUsecases.NewCancelOrderUseCase(s.settlement, log),
		confirmCashCollectedUC: paymentUsecases.NewConfirmCashCollectedUseCase(s.settlement, log),
		listCallbackLogsUC:     paymentUsecases.NewListCallbackLogsUseCase(r.orderRepo, r.callbackLogRepo, log),

		createVNPayPaymentUC:  paymentUsecases.NewCreateVNPayPaymentUseCase(r.orderRepo, s.gateway, log),
		handleVNPayCallbackUC: paymentUsecases.NewHandleVNPayCallbackUseCase(r.orderRepo, r.callbackLogRepo, s.gateway, s.settlement, log),

		submitClaimUC:      paymentUsecases.NewSubmitClaimUseCase(r.orderRepo, r.claimRepo, r.bankAccountRepo, r.txMgr, log),
		verifyClaimUC:      paymentUsecases.NewVerifyClaimUseCase(r.claimRepo, s.settlement, bt.StrictAmount(), log),
		rejectClaimUC:      paymentUsecases.NewRejectClaimUseCase(r.claimRepo, s.settlement, log),
		appendClaimNoteUC:  paymentUsecases.NewAppendClaimNoteUseCase(r.claimRepo, r.txMgr, log),
		listClaimsUC:       paymentUsecases.NewListClaimsUseCase(r.claimRepo, log),
		sweepClaims:        paymentUsecases.NewSweepStaleClaimsUseCase(r.claimRepo, r.txMgr, bt.ClaimTTL(), log),
		generateQRUC:       paymentUsecases.NewGenerateQRUseCase(s.qrGenerator, r.bankAccountRepo, log),
		listBankAccountsUC: paymentUsecases.NewListBankAccountsUseCase(r.bankAccountRepo, log),

		listAvailableMethodsUC: paymentUsecases.NewListAvailableMethodsUseCase(r.methodRepo, log),
		listAllMethodsUC:       paymentUsecases.NewListAllMethodsUseCase(r.methodRepo, log),
		updateMethodsUC:        paymentUsecases.NewUpdateMethodsUseCase(r.methodRepo, r.txMgr, log),
		toggleMethodUC:         paymentUsecases.NewToggleMethodUseCase(r.methodRepo, r.txMgr, log),
	}

	ucs.handleVNPayCallbackUC.SetMetrics(c.metrics)
	ucs.submitClaimUC.SetMetrics(c.metrics)
	ucs.verifyClaimUC.SetMetrics(c.metrics)
	ucs.rejectClaimUC.SetMetrics(c.metrics)
	ucs.sweepClaims.SetMetrics(c.metrics)
	ucs.generateQRUC.SetMetrics(c.metrics)

	ucs.listAvailableMethodsUC.SetCache(s.methodCache)
	ucs.updateMethodsUC.SetCache(s.methodCache)
	ucs.toggleMethodUC.SetCache(s.methodCache)

	c.ucs = ucs
}
