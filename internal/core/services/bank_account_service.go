package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	portsrepo "github.com/SscSPs/walleto/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
)

// bankAccountService implements the BankAccountSvcFacade interface.
// Every write runs load, mutate, save, dispatch under a per-account lock.
type bankAccountService struct {
	BaseService
	accountRepo  portsrepo.BankAccountRepositoryFacade
	categoryRepo portsrepo.CategoryReader
	locks        *keyedLock
}

// BankAccountServiceOption is a functional option for configuring the bank account service
type BankAccountServiceOption func(*bankAccountService)

// WithBankAccountDispatcher sets where domain events go after a successful save
func WithBankAccountDispatcher(d portsevents.EventDispatcher) BankAccountServiceOption {
	return func(s *bankAccountService) {
		s.Dispatcher = d
	}
}

// WithCategoryReader enables category checks when recording transactions
func WithCategoryReader(repo portsrepo.CategoryReader) BankAccountServiceOption {
	return func(s *bankAccountService) {
		s.categoryRepo = repo
	}
}

// NewBankAccountService creates a new bank account service with the provided options
func NewBankAccountService(repo portsrepo.BankAccountRepositoryFacade, options ...BankAccountServiceOption) portssvc.BankAccountSvcFacade {
	svc := &bankAccountService{
		accountRepo: repo,
		locks:       newKeyedLock(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.BankAccountSvcFacade = (*bankAccountService)(nil)

func (s *bankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	currency, err := domain.CurrencyFromCode(req.CurrencyCode)
	if err != nil {
		s.LogDebug(ctx, "Rejected currency code", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}
	number, err := domain.NewBankAccountNumber(req.AccountNumber)
	if err != nil {
		return nil, err
	}

	exists, err := s.accountRepo.BankAccountExists(ctx, userID, number)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for existing bank account",
			slog.String("user_id", userID.String()))
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("bank account number %s is already registered: %w", number, apperrors.ErrDuplicate)
	}

	account, err := domain.NewBankAccount(userID, req.AccountName, req.BankName, number, currency)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account",
			slog.String("account_id", account.ID().String()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	s.PublishEvents(ctx, account)

	s.LogInfo(ctx, "Bank account created successfully",
		slog.String("account_id", account.ID().String()),
		slog.String("user_id", userID.String()),
		slog.String("currency", currency.Code()))
	return account, nil
}

func (s *bankAccountService) GetBankAccountByID(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	account, err := s.accountRepo.FindBankAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find bank account by ID",
				slog.String("account_id", accountID.String()))
		}
		return nil, err
	}

	if account.UserID() != userID {
		s.LogDebug(ctx, "Bank account found but belongs to a different user",
			slog.String("account_id", accountID.String()),
			slog.String("requested_by", userID.String()))
		// Return NotFound to obscure existence from other users
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *bankAccountService) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error) {
	accounts, err := s.accountRepo.ListBankAccountsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bank accounts",
			slog.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bank accounts for user %s: %w", userID, err)
	}
	if accounts == nil {
		return []*domain.BankAccount{}, nil
	}
	return accounts, nil
}

func (s *bankAccountService) ListTransactions(ctx context.Context, accountID uuid.UUID, params dto.ListTransactionsParams, userID uuid.UUID) ([]domain.Transaction, int, error) {
	account, err := s.GetBankAccountByID(ctx, accountID, userID)
	if err != nil {
		return nil, 0, err
	}

	ledger := account.Transactions()
	slices.Reverse(ledger)
	if params.Type != "" {
		ledger = slices.DeleteFunc(ledger, func(t domain.Transaction) bool {
			return string(t.Type()) != params.Type
		})
	}

	total := len(ledger)
	start := min(max(params.Offset, 0), total)
	end := total
	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}
	return ledger[start:end], total, nil
}

func (s *bankAccountService) UpdateBankAccount(ctx context.Context, accountID uuid.UUID, req dto.UpdateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	return s.mutate(ctx, accountID, userID, "update_info", func(a *domain.BankAccount) error {
		return a.UpdateAccountInfo(req.AccountName, req.BankName)
	})
}

func (s *bankAccountService) SetInitialBalance(ctx context.Context, accountID uuid.UUID, req dto.SetInitialBalanceRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	balance, err := moneyFromRequest(req.Amount, req.CurrencyCode)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, accountID, userID, "set_initial_balance", func(a *domain.BankAccount) error {
		return a.SetInitialBalance(balance)
	})
}

func (s *bankAccountService) ActivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	return s.mutate(ctx, accountID, userID, "activate", (*domain.BankAccount).Activate)
}

func (s *bankAccountService) DeactivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	return s.mutate(ctx, accountID, userID, "deactivate", (*domain.BankAccount).Deactivate)
}

func (s *bankAccountService) RecordIncome(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error) {
	return s.record(ctx, accountID, req, userID, domain.Income)
}

func (s *bankAccountService) RecordExpense(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error) {
	return s.record(ctx, accountID, req, userID, domain.Expense)
}

func (s *bankAccountService) record(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID, txType domain.TransactionType) (*domain.Transaction, error) {
	params, err := entryParamsFromRequest(req)
	if err != nil {
		return nil, err
	}

	var tx domain.Transaction
	_, err = s.mutate(ctx, accountID, userID, "record_"+string(txType), func(a *domain.BankAccount) error {
		if err := s.checkCategory(ctx, params, txType, userID); err != nil {
			return err
		}
		var err error
		if txType == domain.Income {
			tx, err = a.RecordIncome(params)
		} else {
			tx, err = a.RecordExpense(params)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// mutate loads the caller's account, applies fn and persists the result.
// Domain rejections are returned untouched so handlers can map their kind.
func (s *bankAccountService) mutate(ctx context.Context, accountID, userID uuid.UUID, op string, fn func(*domain.BankAccount) error) (*domain.BankAccount, error) {
	unlock := s.locks.Lock(accountID)
	defer unlock()

	account, err := s.GetBankAccountByID(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if err := fn(account); err != nil {
		s.LogDebug(ctx, "Bank account operation rejected",
			slog.String("operation", op),
			slog.String("account_id", accountID.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	if err := s.accountRepo.UpdateBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to update bank account",
			slog.String("operation", op),
			slog.String("account_id", accountID.String()))
		return nil, err
	}
	s.PublishEvents(ctx, account)

	s.LogInfo(ctx, "Bank account updated successfully",
		slog.String("operation", op),
		slog.String("account_id", accountID.String()),
		slog.String("balance", account.Balance().String()))
	return account, nil
}

// checkCategory makes sure a posting is filed under an active category of the right type
// owned by the same user, and that an optional subcategory exists and is active.
func (s *bankAccountService) checkCategory(ctx context.Context, p domain.EntryParams, txType domain.TransactionType, userID uuid.UUID) error {
	if s.categoryRepo == nil {
		return nil
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, p.CategoryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load category for transaction",
			slog.String("category_id", p.CategoryID.String()))
		return err
	}
	if err != nil || category.UserID() != userID {
		return &domain.Error{Kind: domain.KindNotFound, Field: "categoryID", Message: "category with ID '" + p.CategoryID.String() + "' not found"}
	}
	if !category.IsActive() {
		return &domain.Error{Kind: domain.KindInvalidState, Field: "categoryID", Message: "category '" + category.Name() + "' is inactive"}
	}
	if !category.Type().Accepts(txType) {
		return &domain.Error{
			Kind:    domain.KindInvalidArgument,
			Field:   "categoryID",
			Message: fmt.Sprintf("category '%s' is of type %s and cannot classify %s transactions", category.Name(), category.Type(), txType),
		}
	}

	if p.SubCategoryID == uuid.Nil {
		return nil
	}
	sub, ok := category.SubCategory(p.SubCategoryID)
	if !ok {
		return &domain.Error{Kind: domain.KindNotFound, Field: "subCategoryID", Message: "subcategory with ID '" + p.SubCategoryID.String() + "' not found"}
	}
	if !sub.IsActive() {
		return &domain.Error{Kind: domain.KindInvalidState, Field: "subCategoryID", Message: "subcategory '" + sub.Name() + "' is inactive"}
	}
	return nil
}
