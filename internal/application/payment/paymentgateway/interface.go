package paymentgateway

import (
	"context"
	"net/url"
	"time"

	vo "github.com/vnstore/paycore/internal/domain/order/valueobjects"
)

// Gateway is a redirect-style card/QR payment gateway.
type Gateway interface {
	// BuildRedirect returns the signed URL the customer is sent to. It never
	// mutates the order and two calls for the same order differ only in
	// their timestamp fields.
	BuildRedirect(ctx context.Context, req RedirectRequest) (string, error)
	// VerifyCallback authenticates and decodes a return or IPN callback. It
	// returns an error wrapping ErrSignatureInvalid when the signature does
	// not match.
	VerifyCallback(params url.Values) (*CallbackData, error)
}

// RedirectRequest contains the data needed to start a gateway payment.
type RedirectRequest struct {
	OrderID   uint
	OrderCode string
	Amount    vo.Money
	OrderInfo string
	ReturnURL string
	ClientIP  string
}

// CallbackData is a verified gateway callback.
type CallbackData struct {
	OrderID              uint
	OrderCode            string
	TxnRef               string
	Amount               vo.Money
	Success              bool
	ResponseCode         string
	TransactionStatus    string
	FailureReason        string
	GatewayTransactionNo string
	BankCode             string
	PaidAt               *time.Time
	RawParams            map[string]string
}

// QRGenerator renders bank transfer QR codes.
type QRGenerator interface {
	// Generate never fails because of the remote renderer: on renderer errors
	// it returns a degraded static result. Errors are only returned for
	// invalid input.
	Generate(ctx context.Context, req QRRequest) (*QRResult, error)
}

type QRRequest struct {
	BankCode      string
	AccountNumber string
	AccountName   string
	Amount        vo.Money
	Description   string
	// FallbackImageRef is a pre-rendered static QR for the account, if any.
	FallbackImageRef string
}

type QRResult struct {
	URL      string
	Payload  string
	Degraded bool
}
