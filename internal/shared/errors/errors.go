// Package errors provides application-level error types and utilities.
// It defines the error taxonomy surfaced to callers: validation, not found,
// signature and amount failures, idempotency guards and gateway outages.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation_error"
	ErrorTypeNotFound           ErrorType = "not_found"
	ErrorTypeConflict           ErrorType = "conflict"
	ErrorTypeUnauthorized       ErrorType = "unauthorized"
	ErrorTypeForbidden          ErrorType = "forbidden"
	ErrorTypeInternal           ErrorType = "internal_error"
	ErrorTypeBadRequest         ErrorType = "bad_request"
	ErrorTypeSignatureInvalid   ErrorType = "signature_invalid"
	ErrorTypeAmountMismatch     ErrorType = "amount_mismatch"
	ErrorTypeAlreadyFinalized   ErrorType = "already_finalized"
	ErrorTypeAlreadyDecided     ErrorType = "already_decided"
	ErrorTypeGatewayUnavailable ErrorType = "gateway_unavailable"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:    t,
		Message: message,
		Code:    code,
		Details: detail,
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

// NewForbiddenError creates a new forbidden error
func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeBadRequest, http.StatusBadRequest, message, details)
}

// NewSignatureInvalidError creates an error for inbound gateway data that failed
// signature verification. The message is deliberately generic: it must never
// carry the expected signature or anything derived from the secret.
func NewSignatureInvalidError() *AppError {
	return newAppError(ErrorTypeSignatureInvalid, http.StatusBadRequest, "payment verification failed", nil)
}

// NewAmountMismatchError creates an error for a callback whose amount disagrees
// with the order total.
func NewAmountMismatchError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAmountMismatch, http.StatusConflict, message, details)
}

// NewAlreadyFinalizedError creates the idempotency guard error for orders in a terminal status.
func NewAlreadyFinalizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAlreadyFinalized, http.StatusConflict, message, details)
}

// NewAlreadyDecidedError creates the idempotency guard error for claims that were already verified or rejected.
func NewAlreadyDecidedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAlreadyDecided, http.StatusConflict, message, details)
}

// NewGatewayUnavailableError creates an error for an unreachable external payment party.
func NewGatewayUnavailableError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeGatewayUnavailable, http.StatusServiceUnavailable, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

// IsConflictError checks if the error is a conflict error
func IsConflictError(err error) bool {
	return isType(err, ErrorTypeConflict)
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

// IsSignatureInvalidError checks if the error is a signature verification failure
func IsSignatureInvalidError(err error) bool {
	return isType(err, ErrorTypeSignatureInvalid)
}

// IsAmountMismatchError checks if the error is an amount mismatch
func IsAmountMismatchError(err error) bool {
	return isType(err, ErrorTypeAmountMismatch)
}

// IsAlreadyFinalizedError checks if the error is the terminal-order idempotency guard
func IsAlreadyFinalizedError(err error) bool {
	return isType(err, ErrorTypeAlreadyFinalized)
}

// IsAlreadyDecidedError checks if the error is the decided-claim idempotency guard
func IsAlreadyDecidedError(err error) bool {
	return isType(err, ErrorTypeAlreadyDecided)
}

// IsGatewayUnavailableError checks if the error reports an unreachable gateway
func IsGatewayUnavailableError(err error) bool {
	return isType(err, ErrorTypeGatewayUnavailable)
}

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL duplicate entry error
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	// SQLite / PostgreSQL unique violation
	if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "unique constraint") {
		return true
	}
	return false
}
