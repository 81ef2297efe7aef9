package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// ErrInsufficientBalance indicates a debit would exceed the account's current balance.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrCurrencyMismatch indicates the operation's currency does not match the
// account currency, or that transfer endpoints share a currency.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrInvalidRate indicates an exchange rate that is zero or negative.
var ErrInvalidRate = errors.New("invalid exchange rate")

// ErrInvalidTransition indicates a transaction status transition that the
// lifecycle does not permit (e.g. cancelling a draft).
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConflict indicates a lock or version conflict. It is the only error kind
// that callers may retry automatically.
var ErrConflict = errors.New("concurrency conflict")

// AppError wraps a lower-level error with an HTTP-ish status code and a message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
