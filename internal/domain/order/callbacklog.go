package order

import (
	"context"
	"time"
)

// Callback sources.
const (
	CallbackSourceIPN    = "ipn"
	CallbackSourceReturn = "return"
)

// Callback outcomes recorded in the audit log.
const (
	CallbackOutcomeApplied           = "applied"
	CallbackOutcomeDuplicate         = "duplicate"
	CallbackOutcomeSignatureInvalid  = "signature_invalid"
	CallbackOutcomeMalformed         = "malformed"
	CallbackOutcomeOrderNotFound     = "order_not_found"
	CallbackOutcomeAmountMismatch    = "amount_mismatch"
	CallbackOutcomeProcessingFailure = "processing_failure"
)

// CallbackLog is an append-only audit record of one gateway callback.
type CallbackLog struct {
	ID             uint
	Source         string
	OrderID        *uint
	TxnRef         string
	ResponseCode   string
	SignatureValid bool
	Outcome        string
	RawParams      map[string]string
	ClientIP       string
	CreatedAt      time.Time
}

type CallbackLogRepository interface {
	Create(ctx context.Context, l *CallbackLog) error
	ListByOrderID(ctx context.Context, orderID uint) ([]*CallbackLog, error)
}
