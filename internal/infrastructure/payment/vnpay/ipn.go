package vnpay

import "github.com/vnstore/paycore/internal/domain/order"

// IPN acknowledgment codes expected by the gateway.
const (
	IPNConfirmed        = "00"
	IPNOrderNotFound    = "01"
	IPNAlreadyConfirmed = "02"
	IPNInvalidAmount    = "04"
	IPNInvalidSignature = "97"
	IPNUnknownError     = "99"
)

// IPNResponse is the JSON body returned to the gateway's server-to-server call.
type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

var ipnMessages = map[string]string{
	IPNConfirmed:        "Confirm Success",
	IPNOrderNotFound:    "Order not found",
	IPNAlreadyConfirmed: "Order already confirmed",
	IPNInvalidAmount:    "Invalid amount",
	IPNInvalidSignature: "Invalid signature",
	IPNUnknownError:     "Unknown error",
}

func NewIPNResponse(code string) IPNResponse {
	msg, ok := ipnMessages[code]
	if !ok {
		code, msg = IPNUnknownError, ipnMessages[IPNUnknownError]
	}
	return IPNResponse{RspCode: code, Message: msg}
}

// IPNResponseForOutcome maps a processed callback outcome to the
// acknowledgment the gateway expects. Codes other than 00 and 02 make the
// gateway retry, so only transient failures should map to 99.
func IPNResponseForOutcome(outcome string) IPNResponse {
	switch outcome {
	case order.CallbackOutcomeApplied:
		return NewIPNResponse(IPNConfirmed)
	case order.CallbackOutcomeDuplicate:
		return NewIPNResponse(IPNAlreadyConfirmed)
	case order.CallbackOutcomeOrderNotFound:
		return NewIPNResponse(IPNOrderNotFound)
	case order.CallbackOutcomeAmountMismatch:
		return NewIPNResponse(IPNInvalidAmount)
	case order.CallbackOutcomeSignatureInvalid:
		return NewIPNResponse(IPNInvalidSignature)
	default:
		return NewIPNResponse(IPNUnknownError)
	}
}
