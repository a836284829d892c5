package usecases

import (
	"context"

	"github.com/vnstore/paycore/internal/domain/order"
	"github.com/vnstore/paycore/internal/domain/paymentmethod"
)

// TransactionManager runs fn in one database transaction carried on ctx.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PaymentNotifier is told about each order that leaves PENDING, exactly once.
type PaymentNotifier interface {
	NotifyPaymentSettled(ctx context.Context, event *order.PaymentSettledEvent) error
}

// PaymentMetrics records operational counters. Implementations must not block.
type PaymentMetrics interface {
	CallbackReceived(source, outcome string)
	ClaimAction(action string)
	QRRendered(degraded bool)
	NotificationFailed()
}

// PaymentMethodCache holds the checkout method list.
type PaymentMethodCache interface {
	// GetAvailable returns nil, nil on a miss.
	GetAvailable(ctx context.Context) ([]*paymentmethod.Method, error)
	SetAvailable(ctx context.Context, methods []*paymentmethod.Method) error
	Invalidate(ctx context.Context) error
}

// Claim actions reported to PaymentMetrics.
const (
	ClaimActionSubmitted   = "submitted"
	ClaimActionResubmitted = "resubmitted"
	ClaimActionVerified    = "verified"
	ClaimActionRejected    = "rejected"
	ClaimActionExpired     = "expired"
	ClaimActionSuperseded  = "superseded"
)

type noopMetrics struct{}

func (noopMetrics) CallbackReceived(string, string) {}

func (noopMetrics) ClaimAction(string) {}

func (noopMetrics) QRRendered(bool) {}

func (noopMetrics) NotificationFailed() {}
