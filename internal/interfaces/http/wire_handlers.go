package http

import (
	"github.com/vnstore/paycore/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	orderHandler         *handlers.OrderHandler
	bankPaymentHandler   *handlers.BankPaymentHandler
	vnpayHandler         *handlers.VNPayHandler
	paymentMethodHandler *handlers.PaymentMethodHandler
	healthHandler        *handlers.HealthHandler
}

// Version is reported by the health endpoint; set at build time.
var Version = "dev"

func (c *Container) initHandlers() {
	log := c.log
	u := c.ucs

	c.hdlrs = &allHandlers{
		orderHandler: handlers.NewOrderHandler(
			u.createOrderUC,
			u.getPaymentStatusUC,
			u.cancelOrderUC,
			u.confirmCashCollectedUC,
			u.listCallbackLogsUC,
			log,
		),
		bankPaymentHandler: handlers.NewBankPaymentHandler(
			u.submitClaimUC,
			u.verifyClaimUC,
			u.rejectClaimUC,
			u.appendClaimNoteUC,
			u.listClaimsUC,
			u.generateQRUC,
			u.listBankAccountsUC,
			log,
		),
		vnpayHandler: handlers.NewVNPayHandler(
			u.createVNPayPaymentUC,
			u.handleVNPayCallbackUC,
			log,
		),
		paymentMethodHandler: handlers.NewPaymentMethodHandler(
			u.listAvailableMethodsUC,
			u.listAllMethodsUC,
			u.updateMethodsUC,
			u.toggleMethodUC,
			log,
		),
		healthHandler: handlers.NewHealthHandler(sqlPinger{db: c.db}, Version, log),
	}
}
