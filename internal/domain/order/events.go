package order

import (
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

// PaymentSettledEvent is emitted exactly once per order, by the call that
// moved it out of PENDING.
type PaymentSettledEvent struct {
	OrderID       uint
	OrderCode     string
	From          vo.PaymentStatus
	To            vo.PaymentStatus
	Event         vo.PaymentEvent
	Method        vo.PaymentMethod
	Amount        vo.Money
	Reason        string
	CustomerName  string
	CustomerEmail string
	OccurredAt    time.Time
}

func NewPaymentSettledEvent(before, after *Order, event vo.PaymentEvent) *PaymentSettledEvent {
	reason := ""
	if after.failureReason != nil {
		reason = *after.failureReason
	}
	occurredAt := after.updatedAt
	if after.finalizedAt != nil {
		occurredAt = *after.finalizedAt
	}
	return &PaymentSettledEvent{
		OrderID:       after.id,
		OrderCode:     after.orderCode,
		From:          before.paymentStatus,
		To:            after.paymentStatus,
		Event:         event,
		Method:        after.paymentMethod,
		Amount:        after.totalAmount,
		Reason:        reason,
		CustomerName:  after.customerName,
		CustomerEmail: after.customerEmail,
		OccurredAt:    occurredAt,
	}
}

// Succeeded reports whether the settlement received the money.
func (e *PaymentSettledEvent) Succeeded() bool {
	return e.To.IsSuccess()
}
