package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Order code prefix, e.g. ORD7K2M9XQ4B1
	OrderCodePrefix = "ORD"

	// Database table names
	TableOrders              = "orders"
	TableBankTransferClaims  = "bank_transfer_claims"
	TableBankAccounts        = "bank_accounts"
	TablePaymentMethods      = "payment_methods"
	TableDiscountCodes       = "discount_codes"
	TableDiscountRedemptions = "discount_redemptions"
	TablePaymentCallbackLogs = "payment_callback_logs"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
