package dto

import "time"

// Amounts are whole VND.

type LineItemDTO struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

type OrderDTO struct {
	ID             uint          `json:"id"`
	OrderCode      string        `json:"order_code"`
	Items          []LineItemDTO `json:"items"`
	Subtotal       int64         `json:"subtotal"`
	ShippingFee    int64         `json:"shipping_fee"`
	DiscountAmount int64         `json:"discount_amount"`
	DiscountCode   *string       `json:"discount_code,omitempty"`
	TotalAmount    int64         `json:"total_amount"`
	PaymentMethod  string        `json:"payment_method"`
	PaymentStatus  string        `json:"payment_status"`
	FailureReason  *string       `json:"failure_reason,omitempty"`
	FinalizedAt    *time.Time    `json:"finalized_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// CheckoutDTO is returned by order creation together with what the customer
// needs to pay.
type CheckoutDTO struct {
	Order        *OrderDTO         `json:"order"`
	BankAccounts []*BankAccountDTO `json:"bank_accounts,omitempty"`
	// TransferNote is the description customers should put on a bank transfer.
	TransferNote string `json:"transfer_note,omitempty"`
}

type PaymentStatusDTO struct {
	OrderID       uint       `json:"order_id"`
	OrderCode     string     `json:"order_code"`
	PaymentMethod string     `json:"payment_method"`
	PaymentStatus string     `json:"payment_status"`
	TotalAmount   int64      `json:"total_amount"`
	IsTerminal    bool       `json:"is_terminal"`
	FailureReason *string    `json:"failure_reason,omitempty"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`
	PendingClaim  *ClaimDTO  `json:"pending_claim,omitempty"`
	// Claims is every transfer claim on a bank transfer order, oldest first.
	Claims []*ClaimDTO `json:"claims,omitempty"`
}

type ClaimDTO struct {
	ID              uint       `json:"id"`
	OrderID         uint       `json:"order_id"`
	BankName        string     `json:"bank_name"`
	BankCode        string     `json:"bank_code,omitempty"`
	AccountNumber   string     `json:"account_number"`
	AccountName     string     `json:"account_name"`
	TransactionCode string     `json:"transaction_code"`
	ClaimedAmount   int64      `json:"claimed_amount"`
	SubmittedAt     time.Time  `json:"submitted_at"`
	Status          string     `json:"status"`
	Note            *string    `json:"note,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	VerifierID      *uint      `json:"verifier_id,omitempty"`
}

// ClaimDecisionDTO is the authoritative state after verify or reject.
type ClaimDecisionDTO struct {
	Claim *ClaimDTO         `json:"claim"`
	Order *PaymentStatusDTO `json:"order"`
	// AmountMismatch is set when the claimed amount differs from the order
	// total under the advisory policy.
	AmountMismatch bool `json:"amount_mismatch"`
}

type BankAccountDTO struct {
	ID            uint   `json:"id"`
	BankName      string `json:"bank_name"`
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	Branch        string `json:"branch,omitempty"`
	QRImageRef    string `json:"qr_image_ref,omitempty"`
}

type PaymentMethodDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	Fee         int64     `json:"fee"`
	Position    int       `json:"position"`
	IsDefault   bool      `json:"is_default"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type QRCodeDTO struct {
	QRURL    string `json:"qrUrl"`
	Payload  string `json:"payload"`
	Degraded bool   `json:"degraded"`
}

type VNPayPaymentDTO struct {
	Code       string `json:"code"`
	PaymentURL string `json:"paymentUrl"`
	OrderID    uint   `json:"orderId"`
}

// CallbackLogDTO is one gateway delivery as recorded for audit.
type CallbackLogDTO struct {
	ID             uint              `json:"id"`
	Source         string            `json:"source"`
	TxnRef         string            `json:"txn_ref"`
	ResponseCode   string            `json:"response_code,omitempty"`
	SignatureValid bool              `json:"signature_valid"`
	Outcome        string            `json:"outcome"`
	RawParams      map[string]string `json:"raw_params,omitempty"`
	ClientIP       string            `json:"client_ip,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

// CallbackResultDTO is what the browser return page receives.
type CallbackResultDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID uint   `json:"orderId,omitempty"`
}
