package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankAccount is a row of the bank_accounts table.
type BankAccount struct {
	AccountID     uuid.UUID       `db:"account_id"`
	UserID        uuid.UUID       `db:"user_id"`
	AccountName   string          `db:"account_name"`
	BankName      string          `db:"bank_name"`
	AccountNumber string          `db:"account_number"` // Unique per user
	CurrencyCode  string          `db:"currency_code"`
	Balance       decimal.Decimal `db:"balance"`
	IsActive      bool            `db:"is_active"`
	TimestampFields
	Version int64 `db:"version"` // Optimistic lock counter
}
