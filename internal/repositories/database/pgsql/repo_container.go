package pgsql

import (
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	bankAccountRepo := newPgxBankAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BankAccountRepo: bankAccountRepo,
		CategoryRepo:    categoryRepo,
	}
}

// NewEventOutbox exposes the domain_events table to the outbox relay.
func NewEventOutbox(dbPool *pgxpool.Pool) *PgxEventOutbox {
	return newPgxEventOutbox(dbPool)
}
