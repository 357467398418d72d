package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType mirrors the domain posting direction.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a single ledger line of a bank account. Rows are append-only; Position keeps
// the posting order stable when several lines share a transaction date.
type Transaction struct {
	TransactionID   uuid.UUID       `db:"transaction_id"`
	AccountID       uuid.UUID       `db:"account_id"` // FK -> bank_accounts.account_id
	Position        int             `db:"position"`
	TransactionType TransactionType `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"` // Positive value
	CategoryID      uuid.UUID       `db:"category_id"`
	SubCategoryID   *uuid.UUID      `db:"subcategory_id"` // Nullable
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}
