package domain

import (
	"errors"
	"fmt"

	"github.com/SscSPs/walleto/internal/apperrors"
)

// ErrorKind classifies a domain failure so callers can branch without parsing messages.
type ErrorKind string

const (
	KindInvalidArgument     ErrorKind = "INVALID_ARGUMENT"
	KindUnsupportedCurrency ErrorKind = "UNSUPPORTED_CURRENCY"
	KindCurrencyMismatch    ErrorKind = "CURRENCY_MISMATCH"
	KindInsufficientFunds   ErrorKind = "INSUFFICIENT_FUNDS"
	KindInvalidState        ErrorKind = "INVALID_STATE"
	KindInactiveAccount     ErrorKind = "INACTIVE_ACCOUNT"
	KindInactiveParent      ErrorKind = "INACTIVE_PARENT"
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindDuplicateName       ErrorKind = "DUPLICATE_NAME"
)

// sentinel maps a kind onto the application-wide error it unwraps to.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidArgument, KindUnsupportedCurrency:
		return apperrors.ErrValidation
	case KindCurrencyMismatch:
		return apperrors.ErrCurrencyMismatch
	case KindInsufficientFunds:
		return apperrors.ErrInsufficientFunds
	case KindInvalidState, KindInactiveAccount, KindInactiveParent:
		return apperrors.ErrInvalidState
	case KindNotFound:
		return apperrors.ErrNotFound
	case KindDuplicateName:
		return apperrors.ErrDuplicate
	}
	return nil
}

// Error is the general domain failure. Field names the offending input when there is one.
type Error struct {
	Kind    ErrorKind
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}

func invalidArgument(field, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Field: field, Message: fmt.Sprintf(format, args...)}
}

func invalidState(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// CurrencyMismatchError reports two currencies that were required to be equal.
type CurrencyMismatchError struct {
	Expected Currency
	Actual   Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: expected %s but got %s", e.Expected.Code(), e.Actual.Code())
}

func (e *CurrencyMismatchError) Unwrap() error {
	return apperrors.ErrCurrencyMismatch
}

// InsufficientFundsError reports an expense larger than the available balance.
type InsufficientFundsError struct {
	Balance   Money
	Requested Money
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance %s, requested amount %s", e.Balance, e.Requested)
}

func (e *InsufficientFundsError) Unwrap() error {
	return apperrors.ErrInsufficientFunds
}

// KindOf returns the domain kind carried by err, or "" if err is not a domain error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	var cm *CurrencyMismatchError
	if errors.As(err, &cm) {
		return KindCurrencyMismatch
	}
	var inf *InsufficientFundsError
	if errors.As(err, &inf) {
		return KindInsufficientFunds
	}
	return ""
}
