package paymentgateway

import "errors"

var (
	// ErrSignatureInvalid means the callback was not signed with our secret.
	ErrSignatureInvalid = errors.New("gateway signature invalid")
	// ErrMalformedCallback means the callback was authentic but could not be decoded.
	ErrMalformedCallback = errors.New("gateway callback malformed")
)
