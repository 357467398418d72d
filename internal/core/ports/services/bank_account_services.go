package services

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
)

// BankAccountReaderSvc defines read operations for bank accounts.
// Accounts owned by another user are reported as not found.
type BankAccountReaderSvc interface {
	// GetBankAccountByID retrieves one of the user's accounts.
	GetBankAccountByID(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error)

	// ListBankAccounts retrieves every account owned by the user.
	ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error)

	// ListTransactions returns one page of the account's ledger, newest first, and the total
	// number of lines matching the filter.
	ListTransactions(ctx context.Context, accountID uuid.UUID, params dto.ListTransactionsParams, userID uuid.UUID) ([]domain.Transaction, int, error)
}

// BankAccountWriterSvc defines operations that change an account's descriptive state.
type BankAccountWriterSvc interface {
	// CreateBankAccount opens a new account for the user.
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error)

	// UpdateBankAccount renames an account and its bank.
	UpdateBankAccount(ctx context.Context, accountID uuid.UUID, req dto.UpdateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error)

	// SetInitialBalance seeds the balance of an account with an empty ledger.
	SetInitialBalance(ctx context.Context, accountID uuid.UUID, req dto.SetInitialBalanceRequest, userID uuid.UUID) (*domain.BankAccount, error)

	ActivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error)
	DeactivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error)
}

// BankAccountLedgerSvc defines posting operations.
type BankAccountLedgerSvc interface {
	// RecordIncome posts income filed under one of the user's active INCOME categories.
	RecordIncome(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error)

	// RecordExpense posts an expense filed under one of the user's active EXPENSE categories.
	RecordExpense(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error)
}

// BankAccountSvcFacade combines all bank account service interfaces
// This is a facade for clients that need access to all operations
type BankAccountSvcFacade interface {
	BankAccountReaderSvc
	BankAccountWriterSvc
	BankAccountLedgerSvc
}
