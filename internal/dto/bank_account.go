package dto

import (
	"time"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest defines the data needed to open a new bank account.
type CreateBankAccountRequest struct {
	AccountName   string `json:"accountName" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	CurrencyCode  string `json:"currencyCode" binding:"required,currency"`
}

// UpdateBankAccountRequest defines the descriptive fields that can be changed on an account.
type UpdateBankAccountRequest struct {
	AccountName string `json:"accountName" binding:"required"`
	BankName    string `json:"bankName" binding:"required"`
}

// SetInitialBalanceRequest seeds an account balance. CurrencyCode must match the account.
type SetInitialBalanceRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currency"`
}

// RecordTransactionRequest is used for both income and expense postings.
type RecordTransactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    string          `json:"currencyCode" binding:"required,currency"`
	CategoryID      string          `json:"categoryID" binding:"required,uuid"`
	SubCategoryID   *string         `json:"subCategoryID" binding:"omitempty,uuid"` // Optional
	Description     string          `json:"description" binding:"required"`
	TransactionDate *time.Time      `json:"transactionDate"` // Optional, defaults to now
}

// ListTransactionsParams defines query parameters for listing an account's ledger.
type ListTransactionsParams struct {
	Type   string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Limit  int    `form:"limit,default=50" binding:"min=1,max=500"`
	Offset int    `form:"offset,default=0" binding:"min=0"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	AccountID     string        `json:"accountID"`
	UserID        string        `json:"userID"`
	AccountName   string        `json:"accountName"`
	BankName      string        `json:"bankName"`
	AccountNumber string        `json:"accountNumber"`
	Balance       MoneyResponse `json:"balance"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     *time.Time    `json:"updatedAt,omitempty"`
	Version       int64         `json:"version"`
}

// TransactionResponse defines the data returned for a ledger line.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	Type            domain.TransactionType `json:"type"`
	Amount          MoneyResponse          `json:"amount"`
	CategoryID      string                 `json:"categoryID"`
	SubCategoryID   *string                `json:"subCategoryID,omitempty"`
	Description     string                 `json:"description"`
	TransactionDate time.Time              `json:"transactionDate"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ListBankAccountsResponse wraps the list of bank accounts.
type ListBankAccountsResponse struct {
	Accounts []BankAccountResponse `json:"accounts"`
}

// ListTransactionsResponse wraps one page of an account's ledger.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	Limit        int                   `json:"limit"`
	Offset       int                   `json:"offset"`
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse DTO
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	res := BankAccountResponse{
		AccountID:     a.ID().String(),
		UserID:        a.UserID().String(),
		AccountName:   a.AccountName(),
		BankName:      a.BankName(),
		AccountNumber: a.AccountNumber().Value(),
		Balance:       ToMoneyResponse(a.Balance()),
		IsActive:      a.IsActive(),
		CreatedAt:     a.CreatedAt(),
		Version:       a.Version(),
	}
	if t, ok := a.UpdatedAt(); ok {
		res.UpdatedAt = &t
	}
	return res
}

// ToListBankAccountResponse converts a slice of accounts to ListBankAccountsResponse
func ToListBankAccountResponse(accounts []*domain.BankAccount) ListBankAccountsResponse {
	res := ListBankAccountsResponse{Accounts: make([]BankAccountResponse, len(accounts))}
	for i, a := range accounts {
		res.Accounts[i] = ToBankAccountResponse(a)
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:   t.ID().String(),
		Type:            t.Type(),
		Amount:          ToMoneyResponse(t.Amount()),
		CategoryID:      t.CategoryID().String(),
		Description:     t.Description(),
		TransactionDate: t.TransactionDate(),
		CreatedAt:       t.CreatedAt(),
	}
	if sub, ok := t.SubCategoryID(); ok {
		s := sub.String()
		res.SubCategoryID = &s
	}
	return res
}

func ToListTransactionResponse(txs []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txs))
	for i, t := range txs {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
