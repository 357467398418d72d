package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	minAccountNumberLength = 10
	maxAccountNumberLength = 26
)

// BankAccountNumber is a cleaned, digits-only bank account number.
type BankAccountNumber struct {
	value string
}

// NewBankAccountNumber strips spaces and dashes from value and validates what remains.
func NewBankAccountNumber(value string) (BankAccountNumber, error) {
	if strings.TrimSpace(value) == "" {
		return BankAccountNumber{}, invalidArgument("accountNumber", "bank account number cannot be empty")
	}

	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)

	if n := utf8.RuneCountInString(cleaned); n < minAccountNumberLength || n > maxAccountNumberLength {
		return BankAccountNumber{}, invalidArgument("accountNumber",
			"bank account number must be between %d and %d digits", minAccountNumberLength, maxAccountNumberLength)
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return BankAccountNumber{}, invalidArgument("accountNumber", "bank account number must contain only digits")
		}
	}

	return BankAccountNumber{value: cleaned}, nil
}

func (n BankAccountNumber) Value() string  { return n.value }
func (n BankAccountNumber) String() string { return n.value }
func (n BankAccountNumber) IsZero() bool   { return n.value == "" }
