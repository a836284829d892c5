package order

import (
	"errors"
	"fmt"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

var (
	// ErrAlreadyFinalized is returned for any event on a terminal order. Callers
	// treat it as an idempotent no-op.
	ErrAlreadyFinalized = errors.New("order payment already finalized")
	// ErrInvalidTransition is returned for an event the current status does not accept.
	ErrInvalidTransition = errors.New("invalid payment transition")
)

type transitionKey struct {
	from  vo.PaymentStatus
	event vo.PaymentEvent
}

var transitions = map[transitionKey]vo.PaymentStatus{
	{vo.PaymentStatusPending, vo.PaymentEventGatewaySuccess}:    vo.PaymentStatusPaid,
	{vo.PaymentStatusPending, vo.PaymentEventGatewayFailure}:    vo.PaymentStatusFailed,
	{vo.PaymentStatusPending, vo.PaymentEventBankClaimVerified}: vo.PaymentStatusVerified,
	{vo.PaymentStatusPending, vo.PaymentEventBankClaimRejected}: vo.PaymentStatusFailed,
	{vo.PaymentStatusPending, vo.PaymentEventCashCollected}:     vo.PaymentStatusPaid,
	{vo.PaymentStatusPending, vo.PaymentEventAdminCancelled}:    vo.PaymentStatusCancelled,
}

// NextStatus looks up the status reached from from on event.
func NextStatus(from vo.PaymentStatus, event vo.PaymentEvent) (vo.PaymentStatus, error) {
	if from.IsTerminal() {
		return from, ErrAlreadyFinalized
	}
	to, ok := transitions[transitionKey{from: from, event: event}]
	if !ok {
		return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, event, from)
	}
	return to, nil
}

// Transition returns a copy of o advanced by event. o itself is never
// modified, so a failed persistence step leaves the caller's view intact.
// reason is recorded on failure and cancellation outcomes.
func Transition(o *Order, event vo.PaymentEvent, reason string, at time.Time) (*Order, error) {
	to, err := NextStatus(o.paymentStatus, event)
	if err != nil {
		return o, err
	}

	next := *o
	next.items = o.Items()
	next.paymentStatus = to
	next.finalizedAt = &at
	next.updatedAt = at
	next.version = o.version + 1
	if !to.IsSuccess() && reason != "" {
		r := reason
		next.failureReason = &r
	}
	return &next, nil
}
