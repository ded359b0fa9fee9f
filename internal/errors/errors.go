// Package errors provides custom error types for the ledgerbook API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// FieldErrors maps form field names to user-correctable validation messages.
// Validate methods return it instead of an opaque failure so callers can
// surface each message next to the owning field.
type FieldErrors map[string]string

// Error implements the error interface. It returns an arbitrary message from
// the map, which is enough for logs; handlers render the full map.
func (f FieldErrors) Error() string {
	for _, msg := range f {
		return msg
	}
	return "validation failed"
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Currency and amount errors.
var (
	ErrUnknownCurrency = &AppError{Code: "UNKNOWN_CURRENCY", Message: "Unknown currency code", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Invalid amount", StatusCode: http.StatusBadRequest}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrMergeConflict       = &AppError{Code: "MERGE_CONFLICT", Message: "Element does not belong to this transaction", StatusCode: http.StatusConflict}
	ErrUnbalanced          = &AppError{Code: "UNBALANCED_TRANSACTION", Message: "Transaction debits and credits do not balance", StatusCode: http.StatusInternalServerError}
)

// Actor and account errors.
var (
	ErrActorNotFound   = &AppError{Code: "ACTOR_NOT_FOUND", Message: "Customer or supplier not found", StatusCode: http.StatusNotFound}
	ErrAccountNotFound = &AppError{Code: "ACCOUNT_NOT_FOUND", Message: "Account not found", StatusCode: http.StatusNotFound}
)
