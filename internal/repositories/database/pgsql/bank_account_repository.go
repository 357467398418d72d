package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/SscSPs/walleto/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBankAccountRepository struct {
	BaseRepository
}

// newPgxBankAccountRepository creates a new repository for bank account aggregates.
func newPgxBankAccountRepository(pool *pgxpool.Pool) *PgxBankAccountRepository {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBankAccountRepository implements portsrepo.BankAccountRepositoryWithTx
var _ portsrepo.BankAccountRepositoryWithTx = (*PgxBankAccountRepository)(nil)

const bankAccountColumns = `account_id, user_id, account_name, bank_name, account_number, currency_code, balance, is_active, created_at, updated_at, version`

func scanBankAccount(row pgx.Row) (models.BankAccount, error) {
	var m models.BankAccount
	err := row.Scan(
		&m.AccountID,
		&m.UserID,
		&m.AccountName,
		&m.BankName,
		&m.AccountNumber,
		&m.CurrencyCode,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.Version,
	)
	return m, err
}

// FindBankAccountByID loads the account row and its ledger in posting order.
func (r *PgxBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE account_id = $1;`
	m, err := scanBankAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account %s: %w", accountID, err)
	}

	ledgers, err := r.loadTransactions(ctx, []uuid.UUID{accountID})
	if err != nil {
		return nil, err
	}
	return restoreBankAccount(m, ledgers[accountID])
}

// ListBankAccountsByUserID loads every account of the user, oldest first.
func (r *PgxBankAccountRepository) ListBankAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE user_id = $1 ORDER BY created_at, account_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	var accounts []models.BankAccount
	for rows.Next() {
		m, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}
	if len(accounts) == 0 {
		return []*domain.BankAccount{}, nil
	}

	ids := make([]uuid.UUID, len(accounts))
	for i, m := range accounts {
		ids[i] = m.AccountID
	}
	ledgers, err := r.loadTransactions(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.BankAccount, 0, len(accounts))
	for _, m := range accounts {
		a, err := restoreBankAccount(m, ledgers[m.AccountID])
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// BankAccountExists reports whether the user already registered the account number.
func (r *PgxBankAccountRepository) BankAccountExists(ctx context.Context, userID uuid.UUID, accountNumber domain.BankAccountNumber) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bank_accounts WHERE user_id = $1 AND account_number = $2);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, accountNumber.Value()).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bank account existence: %w", err)
	}
	return exists, nil
}

// SaveBankAccount inserts a new account, its ledger and its pending events in one transaction.
func (r *PgxBankAccountRepository) SaveBankAccount(ctx context.Context, account *domain.BankAccount) error {
	snap := account.Snapshot()
	m := mapping.ToModelBankAccount(snap)
	const version = 1

	err := withTx(ctx, r, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bank_accounts (` + bankAccountColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
		`
		_, err := tx.Exec(ctx, query,
			m.AccountID,
			m.UserID,
			m.AccountName,
			m.BankName,
			m.AccountNumber,
			m.CurrencyCode,
			m.Balance,
			m.IsActive,
			m.CreatedAt,
			m.UpdatedAt,
			version,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: bank account number %s already registered", apperrors.ErrDuplicate, m.AccountNumber)
			}
			return fmt.Errorf("failed to save bank account %s: %w", m.AccountID, err)
		}

		batch := &pgx.Batch{}
		queueTransactions(batch, mapping.ToModelTransactions(snap))
		if err := appendEvents(batch, account.DomainEvents()); err != nil {
			return err
		}
		return sendBatch(ctx, tx, batch)
	})
	if err != nil {
		return err
	}
	account.SetVersion(version)
	return nil
}

// UpdateBankAccount writes the account row guarded by its version, appends the ledger lines
// not yet stored and records the pending events.
func (r *PgxBankAccountRepository) UpdateBankAccount(ctx context.Context, account *domain.BankAccount) error {
	snap := account.Snapshot()
	m := mapping.ToModelBankAccount(snap)
	next := m.Version + 1

	err := withTx(ctx, r, func(tx pgx.Tx) error {
		query := `
			UPDATE bank_accounts
			SET account_name = $1, bank_name = $2, balance = $3, is_active = $4, updated_at = $5, version = $6
			WHERE account_id = $7 AND version = $8;
		`
		tag, err := tx.Exec(ctx, query,
			m.AccountName,
			m.BankName,
			m.Balance,
			m.IsActive,
			m.UpdatedAt,
			next,
			m.AccountID,
			m.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update bank account %s: %w", m.AccountID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: bank account %s was modified concurrently", apperrors.ErrConflict, m.AccountID)
		}

		// The ledger is append-only, so every line past the stored count is new.
		var stored int
		if err := tx.QueryRow(ctx, `SELECT count(*) FROM transactions WHERE account_id = $1;`, m.AccountID).Scan(&stored); err != nil {
			return fmt.Errorf("failed to count ledger lines of %s: %w", m.AccountID, err)
		}
		lines := mapping.ToModelTransactions(snap)
		if stored > len(lines) {
			return fmt.Errorf("%w: bank account %s has %d stored ledger lines but %d loaded", apperrors.ErrConflict, m.AccountID, stored, len(lines))
		}

		batch := &pgx.Batch{}
		queueTransactions(batch, lines[stored:])
		if err := appendEvents(batch, account.DomainEvents()); err != nil {
			return err
		}
		return sendBatch(ctx, tx, batch)
	})
	if err != nil {
		return err
	}
	account.SetVersion(next)
	return nil
}

func queueTransactions(batch *pgx.Batch, lines []models.Transaction) {
	for _, t := range lines {
		batch.Queue(`
			INSERT INTO transactions (transaction_id, account_id, position, transaction_type, amount, category_id, subcategory_id, description, transaction_date, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (transaction_id) DO NOTHING;`,
			t.TransactionID,
			t.AccountID,
			t.Position,
			t.TransactionType,
			t.Amount,
			t.CategoryID,
			t.SubCategoryID,
			t.Description,
			t.TransactionDate,
			t.CreatedAt,
		)
	}
}

// sendBatch executes every queued statement, reporting the first failure.
func sendBatch(ctx context.Context, tx pgx.Tx, batch *pgx.Batch) error {
	if batch.Len() == 0 {
		return nil
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to write batch of %d statements: %w", batch.Len(), err)
	}
	return nil
}

// loadTransactions returns the ledger lines of each account, in posting order.
func (r *PgxBankAccountRepository) loadTransactions(ctx context.Context, accountIDs []uuid.UUID) (map[uuid.UUID][]models.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, position, transaction_type, amount, category_id, subcategory_id, description, transaction_date, created_at
		FROM transactions
		WHERE account_id = ANY($1)
		ORDER BY account_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger lines: %w", err)
	}
	defer rows.Close()

	ledgers := make(map[uuid.UUID][]models.Transaction, len(accountIDs))
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.AccountID,
			&t.Position,
			&t.TransactionType,
			&t.Amount,
			&t.CategoryID,
			&t.SubCategoryID,
			&t.Description,
			&t.TransactionDate,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		ledgers[t.AccountID] = append(ledgers[t.AccountID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return ledgers, nil
}

func restoreBankAccount(m models.BankAccount, lines []models.Transaction) (*domain.BankAccount, error) {
	a, err := domain.RestoreBankAccount(mapping.ToBankAccountSnapshot(m, lines))
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("stored bank account %s is corrupt", m.AccountID), err)
	}
	return a, nil
}
