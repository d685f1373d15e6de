// Package errors defines the error taxonomy shared by the ledger, the services
// and the HTTP layer. Every error that reaches a client is an AppError, so
// responses carry a stable code and never leak internal details.
package errors

import "net/http"

// AppError is a structured application error with a machine-readable code, a
// human-readable message, the HTTP status to answer with and an optional
// internal cause.
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

// Is reports whether target carries the same code, so a copy produced by Wrap
// or WithMessage still matches its sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// IsValidation reports whether the error is a client input problem.
func (e *AppError) IsValidation() bool {
	return e.StatusCode == http.StatusBadRequest
}

// Wrap copies sentinel and attaches an internal cause.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage copies sentinel with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrUnavailable    = &AppError{Code: "UNAVAILABLE", Message: "This feature is not enabled", StatusCode: http.StatusServiceUnavailable}
)

// Transaction validation errors. These are the only failures of Add; nothing is
// mutated when one of them is returned.
var (
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Please enter a valid amount", StatusCode: http.StatusBadRequest}
	ErrMissingCategory = &AppError{Code: "MISSING_CATEGORY", Message: "Please select a category", StatusCode: http.StatusBadRequest}
	ErrUnknownCategory = &AppError{Code: "UNKNOWN_CATEGORY", Message: "Category is not part of the configured catalog", StatusCode: http.StatusBadRequest}
	ErrMissingDate     = &AppError{Code: "MISSING_DATE", Message: "Please select a date", StatusCode: http.StatusBadRequest}
	ErrInvalidDate     = &AppError{Code: "INVALID_DATE", Message: "Date must be formatted as YYYY-MM-DD", StatusCode: http.StatusBadRequest}
)

// Lookup errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
)
