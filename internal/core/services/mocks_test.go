package services_test

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankAccountRepository ---
type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) FindBankAccountByID(ctx context.Context, accountID uuid.UUID) (*domain.BankAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) ListBankAccountsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountRepository) BankAccountExists(ctx context.Context, userID uuid.UUID, accountNumber domain.BankAccountNumber) (bool, error) {
	args := m.Called(ctx, userID, accountNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockBankAccountRepository) SaveBankAccount(ctx context.Context, account *domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockBankAccountRepository) UpdateBankAccount(ctx context.Context, account *domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategoriesByUserIDAndType(ctx context.Context, userID uuid.UUID, categoryType domain.CategoryType) ([]*domain.Category, error) {
	args := m.Called(ctx, userID, categoryType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) CategoryExists(ctx context.Context, userID uuid.UUID, name string, categoryType domain.CategoryType) (bool, error) {
	args := m.Called(ctx, userID, name, categoryType)
	return args.Bool(0), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Mock EventDispatcher ---
type MockEventDispatcher struct {
	mock.Mock
}

func (m *MockEventDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// eventsNamed matches a dispatched batch by event names, in order.
func eventsNamed(names ...string) any {
	return mock.MatchedBy(func(events []domain.Event) bool {
		if len(events) != len(names) {
			return false
		}
		for i, e := range events {
			if e.EventName() != names[i] {
				return false
			}
		}
		return true
	})
}
