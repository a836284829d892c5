package vnpay

const (
	responseCodeSuccess      = "00"
	transactionStatusSuccess = "00"
)

// responseReasons maps documented vnp_ResponseCode values to failure reasons.
var responseReasons = map[string]string{
	"07": "transaction flagged as suspected fraud",
	"09": "card or account not registered for internet banking",
	"10": "card or account authentication failed too many times",
	"11": "payment window expired",
	"12": "card or account is locked",
	"13": "incorrect OTP",
	"24": "customer cancelled the transaction",
	"51": "insufficient account balance",
	"65": "daily transaction limit exceeded",
	"75": "issuing bank under maintenance",
	"79": "incorrect payment password too many times",
	"99": "gateway reported an unspecified error",
}

// transactionStatusReasons maps vnp_TransactionStatus values reported with a
// non-successful transaction.
var transactionStatusReasons = map[string]string{
	"01": "transaction not completed",
	"02": "transaction failed",
	"04": "transaction reversed",
	"07": "transaction flagged as suspected fraud",
}

const genericFailureReason = "payment failed"

// outcome classifies a callback. Success requires response code 00 and, when
// present, transaction status 00. Unknown codes fall through to a generic
// failure.
func outcome(responseCode, transactionStatus string) (bool, string) {
	if responseCode == responseCodeSuccess && (transactionStatus == "" || transactionStatus == transactionStatusSuccess) {
		return true, ""
	}
	if reason, ok := responseReasons[responseCode]; ok {
		return false, reason
	}
	if reason, ok := transactionStatusReasons[transactionStatus]; ok {
		return false, reason
	}
	return false, genericFailureReason
}
