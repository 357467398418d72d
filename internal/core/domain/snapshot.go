package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshots are the plain-attribute form of the aggregates, used by repository adapters
// to persist state and to rebuild aggregates. Restoring never raises events.

type TransactionSnapshot struct {
	ID              uuid.UUID
	Type            TransactionType
	Amount          decimal.Decimal
	CategoryID      uuid.UUID
	SubCategoryID   uuid.UUID
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

type BankAccountSnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	AccountName   string
	BankName      string
	AccountNumber string
	CurrencyCode  string
	Balance       decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	Version       int64
	Transactions  []TransactionSnapshot
}

type SubCategorySnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type CategorySnapshot struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Type          CategoryType
	Icon          string
	Color         string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
	Version       int64
	SubCategories []SubCategorySnapshot
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// Snapshot captures the account's persistent state.
func (a *BankAccount) Snapshot() BankAccountSnapshot {
	s := BankAccountSnapshot{
		ID:            a.id,
		UserID:        a.userID,
		AccountName:   a.accountName,
		BankName:      a.bankName,
		AccountNumber: a.accountNumber.value,
		CurrencyCode:  a.balance.currency.code,
		Balance:       a.balance.Amount(),
		IsActive:      a.isActive,
		CreatedAt:     a.createdAt,
		UpdatedAt:     copyTime(a.updatedAt),
		Version:       a.version,
		Transactions:  make([]TransactionSnapshot, len(a.transactions)),
	}
	for i, t := range a.transactions {
		s.Transactions[i] = TransactionSnapshot{
			ID:              t.id,
			Type:            t.txType,
			Amount:          t.amount.Amount(),
			CategoryID:      t.categoryID,
			SubCategoryID:   t.subCategoryID,
			Description:     t.description,
			TransactionDate: t.transactionDate,
			CreatedAt:       t.createdAt,
		}
	}
	return s
}

// RestoreBankAccount rebuilds an account from persisted state, re-checking its invariants.
func RestoreBankAccount(s BankAccountSnapshot) (*BankAccount, error) {
	if s.ID == uuid.Nil {
		return nil, invalidArgument("id", "bank account ID cannot be empty")
	}
	if s.UserID == uuid.Nil {
		return nil, invalidArgument("userId", "user ID cannot be empty")
	}
	name, bank, err := validateAccountInfo(s.AccountName, s.BankName)
	if err != nil {
		return nil, err
	}
	number, err := NewBankAccountNumber(s.AccountNumber)
	if err != nil {
		return nil, err
	}
	currency, err := CurrencyFromCode(s.CurrencyCode)
	if err != nil {
		return nil, err
	}
	balance, err := NewMoney(s.Balance, currency)
	if err != nil {
		return nil, err
	}

	a := &BankAccount{
		aggregateRoot: aggregateRoot{version: s.Version},
		id:            s.ID,
		userID:        s.UserID,
		accountName:   name,
		bankName:      bank,
		accountNumber: number,
		balance:       balance,
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		updatedAt:     copyTime(s.UpdatedAt),
		transactions:  make([]Transaction, 0, len(s.Transactions)),
	}
	for _, ts := range s.Transactions {
		if !ts.Type.Valid() {
			return nil, invalidArgument("type", "unknown transaction type %q", string(ts.Type))
		}
		amount, err := NewMoney(ts.Amount, currency)
		if err != nil {
			return nil, err
		}
		if ts.ID == uuid.Nil || ts.CategoryID == uuid.Nil || strings.TrimSpace(ts.Description) == "" {
			return nil, invalidArgument("transactions", "transaction %s is incomplete", ts.ID)
		}
		a.transactions = append(a.transactions, Transaction{
			id:              ts.ID,
			txType:          ts.Type,
			amount:          amount,
			categoryID:      ts.CategoryID,
			subCategoryID:   ts.SubCategoryID,
			description:     ts.Description,
			transactionDate: ts.TransactionDate,
			createdAt:       ts.CreatedAt,
		})
	}
	return a, nil
}

// Snapshot captures the category's persistent state, subcategories included.
func (c *Category) Snapshot() CategorySnapshot {
	s := CategorySnapshot{
		ID:            c.id,
		UserID:        c.userID,
		Name:          c.name,
		Type:          c.categoryType,
		Icon:          c.icon,
		Color:         c.color,
		IsActive:      c.isActive,
		CreatedAt:     c.createdAt,
		UpdatedAt:     copyTime(c.updatedAt),
		Version:       c.version,
		SubCategories: make([]SubCategorySnapshot, len(c.subCategories)),
	}
	for i, sc := range c.subCategories {
		s.SubCategories[i] = SubCategorySnapshot{
			ID:          sc.id,
			Name:        sc.name,
			Description: sc.description,
			IsActive:    sc.isActive,
			CreatedAt:   sc.createdAt,
			UpdatedAt:   copyTime(sc.updatedAt),
		}
	}
	return s
}

// RestoreCategory rebuilds a category from persisted state, re-checking name uniqueness.
func RestoreCategory(s CategorySnapshot) (*Category, error) {
	if s.ID == uuid.Nil {
		return nil, invalidArgument("id", "category ID cannot be empty")
	}
	if s.UserID == uuid.Nil {
		return nil, invalidArgument("userId", "user ID cannot be empty")
	}
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, invalidArgument("name", "category name cannot be empty")
	}
	if !s.Type.Valid() {
		return nil, invalidArgument("type", "unknown category type %q", string(s.Type))
	}

	c := &Category{
		aggregateRoot: aggregateRoot{version: s.Version},
		id:            s.ID,
		userID:        s.UserID,
		name:          name,
		categoryType:  s.Type,
		icon:          s.Icon,
		color:         s.Color,
		isActive:      s.IsActive,
		createdAt:     s.CreatedAt,
		updatedAt:     copyTime(s.UpdatedAt),
	}
	for _, ss := range s.SubCategories {
		n := strings.TrimSpace(ss.Name)
		if ss.ID == uuid.Nil || n == "" {
			return nil, invalidArgument("subCategories", "subcategory %s is incomplete", ss.ID)
		}
		if c.nameTaken(n, ss.ID) {
			return nil, &Error{Kind: KindDuplicateName, Field: "subCategories", Message: "subcategory with name '" + n + "' already exists"}
		}
		c.subCategories = append(c.subCategories, &SubCategory{
			id:          ss.ID,
			name:        n,
			description: ss.Description,
			isActive:    ss.IsActive,
			createdAt:   ss.CreatedAt,
			updatedAt:   copyTime(ss.UpdatedAt),
		})
	}
	return c, nil
}
