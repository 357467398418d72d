// Package memory holds map-backed repositories. They store aggregate snapshots, so callers
// never share state with the store, and they honour the same version checks as Postgres.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type BankAccountRepository struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]domain.BankAccountSnapshot
	log      *eventLog
}

var _ portsrepo.BankAccountRepositoryFacade = (*BankAccountRepository)(nil)

func newBankAccountRepository(log *eventLog) *BankAccountRepository {
	return &BankAccountRepository{accounts: make(map[uuid.UUID]domain.BankAccountSnapshot), log: log}
}

func (r *BankAccountRepository) FindBankAccountByID(_ context.Context, accountID uuid.UUID) (*domain.BankAccount, error) {
	r.mu.RLock()
	snap, ok := r.accounts[accountID]
	r.mu.RUnlock()
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return domain.RestoreBankAccount(snap)
}

func (r *BankAccountRepository) ListBankAccountsByUserID(_ context.Context, userID uuid.UUID) ([]*domain.BankAccount, error) {
	r.mu.RLock()
	var snaps []domain.BankAccountSnapshot
	for _, s := range r.accounts {
		if s.UserID == userID {
			snaps = append(snaps, s)
		}
	}
	r.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b domain.BankAccountSnapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})

	result := make([]*domain.BankAccount, 0, len(snaps))
	for _, s := range snaps {
		a, err := domain.RestoreBankAccount(s)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

func (r *BankAccountRepository) BankAccountExists(_ context.Context, userID uuid.UUID, accountNumber domain.BankAccountNumber) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.numberTaken(userID, accountNumber.Value()), nil
}

func (r *BankAccountRepository) numberTaken(userID uuid.UUID, number string) bool {
	for _, s := range r.accounts {
		if s.UserID == userID && s.AccountNumber == number {
			return true
		}
	}
	return false
}

func (r *BankAccountRepository) SaveBankAccount(_ context.Context, account *domain.BankAccount) error {
	snap := account.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[snap.ID]; ok {
		return fmt.Errorf("%w: bank account %s already exists", apperrors.ErrDuplicate, snap.ID)
	}
	if r.numberTaken(snap.UserID, snap.AccountNumber) {
		return fmt.Errorf("%w: bank account number %s already registered", apperrors.ErrDuplicate, snap.AccountNumber)
	}

	snap.Version = 1
	r.accounts[snap.ID] = snap
	r.log.append(account.DomainEvents())
	account.SetVersion(snap.Version)
	return nil
}

func (r *BankAccountRepository) UpdateBankAccount(_ context.Context, account *domain.BankAccount) error {
	snap := account.Snapshot()

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.accounts[snap.ID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if stored.Version != snap.Version {
		return fmt.Errorf("%w: bank account %s was modified concurrently", apperrors.ErrConflict, snap.ID)
	}

	snap.Version++
	r.accounts[snap.ID] = snap
	r.log.append(account.DomainEvents())
	account.SetVersion(snap.Version)
	return nil
}
