package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType indicates whether a ledger line adds to or takes from the balance.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

// Transaction is a single, immutable line in a bank account's ledger.
// Only BankAccount creates transactions; there is no exported constructor.
type Transaction struct {
	id              uuid.UUID
	txType          TransactionType
	amount          Money
	categoryID      uuid.UUID
	subCategoryID   uuid.UUID // uuid.Nil when the line has no subcategory
	description     string
	transactionDate time.Time
	createdAt       time.Time
}

// EntryParams carries the caller-supplied part of an income or expense posting.
// A zero Date means "now"; a nil SubCategoryID means none.
type EntryParams struct {
	Amount        Money
	CategoryID    uuid.UUID
	SubCategoryID uuid.UUID
	Description   string
	Date          time.Time
}

func newTransaction(txType TransactionType, p EntryParams) (Transaction, error) {
	if p.CategoryID == uuid.Nil {
		return Transaction{}, invalidArgument("categoryId", "category ID cannot be empty")
	}
	description := strings.TrimSpace(p.Description)
	if description == "" {
		return Transaction{}, invalidArgument("description", "description cannot be empty")
	}

	created := now()
	date := p.Date.UTC()
	if p.Date.IsZero() {
		date = created
	}

	return Transaction{
		id:              uuid.New(),
		txType:          txType,
		amount:          p.Amount,
		categoryID:      p.CategoryID,
		subCategoryID:   p.SubCategoryID,
		description:     description,
		transactionDate: date,
		createdAt:       created,
	}, nil
}

func (t Transaction) ID() uuid.UUID              { return t.id }
func (t Transaction) Type() TransactionType      { return t.txType }
func (t Transaction) Amount() Money              { return t.amount }
func (t Transaction) CategoryID() uuid.UUID      { return t.categoryID }
func (t Transaction) Description() string        { return t.description }
func (t Transaction) TransactionDate() time.Time { return t.transactionDate }
func (t Transaction) CreatedAt() time.Time       { return t.createdAt }

// SubCategoryID returns the subcategory and whether one was set.
func (t Transaction) SubCategoryID() (uuid.UUID, bool) {
	return t.subCategoryID, t.subCategoryID != uuid.Nil
}

// apply returns balance after posting t.
func (t Transaction) apply(balance Money) (Money, error) {
	if t.txType == Income {
		return balance.Add(t.amount)
	}
	return balance.Subtract(t.amount)
}
