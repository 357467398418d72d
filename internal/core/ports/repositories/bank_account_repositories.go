package repositories

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/google/uuid"
)

// BankAccountReader defines read operations for bank account aggregates
type BankAccountReader interface {
	// FindBankAccountByID loads the account with its full ledger.
	// Returns apperrors.ErrNotFound when no such account exists.
	FindBankAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.BankAccount, error)

	// ListBankAccountsByUserID loads every account owned by userID, oldest first.
	ListBankAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error)

	// BankAccountExists reports whether userID already registered accountNumber.
	BankAccountExists(ctx context.Context, userID uuid.UUID, accountNumber domain.BankAccountNumber) (bool, error)
}

// BankAccountWriter defines write operations for bank account aggregates.
// Both methods persist the aggregate's pending domain events alongside its state
// and bump its version on success.
type BankAccountWriter interface {
	// SaveBankAccount persists a new account.
	SaveBankAccount(ctx context.Context, account *domain.BankAccount) error

	// UpdateBankAccount persists changes to an existing account, including ledger lines
	// appended since it was loaded. Returns apperrors.ErrConflict if the stored version moved on.
	UpdateBankAccount(ctx context.Context, account *domain.BankAccount) error
}

// BankAccountRepositoryFacade combines all bank account repository interfaces
type BankAccountRepositoryFacade interface {
	BankAccountReader
	BankAccountWriter
}
