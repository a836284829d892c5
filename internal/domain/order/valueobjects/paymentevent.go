package valueobjects

// PaymentEvent is an input to the order payment state machine.
type PaymentEvent string

const (
	PaymentEventGatewaySuccess    PaymentEvent = "gateway_success"
	PaymentEventGatewayFailure    PaymentEvent = "gateway_failure"
	PaymentEventBankClaimVerified PaymentEvent = "bank_claim_verified"
	PaymentEventBankClaimRejected PaymentEvent = "bank_claim_rejected"
	PaymentEventCashCollected     PaymentEvent = "cash_collected"
	PaymentEventAdminCancelled    PaymentEvent = "admin_cancelled"
)

// IsClaimDecision reports whether the event comes from a staff decision on a bank transfer claim.
func (e PaymentEvent) IsClaimDecision() bool {
	return e == PaymentEventBankClaimVerified || e == PaymentEventBankClaimRejected
}

func (e PaymentEvent) String() string {
	return string(e)
}
