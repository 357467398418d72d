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

// ErrCurrencyMismatch indicates that two amounts carrying different currencies were combined.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrInsufficientFunds indicates that an expense would drive a balance below zero.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidState indicates that an operation is not permitted in the resource's current state.
var ErrInvalidState = errors.New("invalid state")

// ErrConflict indicates that a write lost an optimistic concurrency check.
var ErrConflict = errors.New("concurrent modification")

// AppError carries an HTTP-ish status code alongside an infrastructure failure.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a status code and a message safe to show to clients.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
