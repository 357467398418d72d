package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager is implemented by repositories whose aggregate writes span several
// statements (the aggregate row, its ledger or subcategory rows, and outbox events).
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a transaction that already committed.
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// BankAccountRepositoryWithTx is a bank account repository that persists each aggregate
// in a single transaction.
type BankAccountRepositoryWithTx interface {
	BankAccountRepositoryFacade
	TransactionManager
}

// CategoryRepositoryWithTx is a category repository that persists each aggregate in a
// single transaction.
type CategoryRepositoryWithTx interface {
	CategoryRepositoryFacade
	TransactionManager
}
