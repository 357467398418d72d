package handlers_test

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
	portssvc "github.com/SscSPs/walleto/internal/core/ports/services"
	"github.com/SscSPs/walleto/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankAccountService ---
type MockBankAccountService struct {
	mock.Mock
}

func (m *MockBankAccountService) account(args mock.Arguments) (*domain.BankAccount, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) GetBankAccountByID(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, accountID, userID))
}

func (m *MockBankAccountService) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]*domain.BankAccount, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BankAccount), args.Error(1)
}

func (m *MockBankAccountService) ListTransactions(ctx context.Context, accountID uuid.UUID, params dto.ListTransactionsParams, userID uuid.UUID) ([]domain.Transaction, int, error) {
	args := m.Called(ctx, accountID, params, userID)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Int(1), args.Error(2)
}

func (m *MockBankAccountService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, req, userID))
}

func (m *MockBankAccountService) UpdateBankAccount(ctx context.Context, accountID uuid.UUID, req dto.UpdateBankAccountRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, accountID, req, userID))
}

func (m *MockBankAccountService) SetInitialBalance(ctx context.Context, accountID uuid.UUID, req dto.SetInitialBalanceRequest, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, accountID, req, userID))
}

func (m *MockBankAccountService) ActivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, accountID, userID))
}

func (m *MockBankAccountService) DeactivateBankAccount(ctx context.Context, accountID uuid.UUID, userID uuid.UUID) (*domain.BankAccount, error) {
	return m.account(m.Called(ctx, accountID, userID))
}

func (m *MockBankAccountService) RecordIncome(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockBankAccountService) RecordExpense(ctx context.Context, accountID uuid.UUID, req dto.RecordTransactionRequest, userID uuid.UUID) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.BankAccountSvcFacade = (*MockBankAccountService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) category(args mock.Arguments) (*domain.Category, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) sub(args mock.Arguments) (*domain.SubCategory, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubCategory), args.Error(1)
}

func (m *MockCategoryService) GetCategoryByID(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	return m.category(m.Called(ctx, categoryID, userID))
}

func (m *MockCategoryService) ListCategories(ctx context.Context, params dto.ListCategoriesParams, userID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, userID uuid.UUID) (*domain.Category, error) {
	return m.category(m.Called(ctx, req, userID))
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, req dto.UpdateCategoryRequest, userID uuid.UUID) (*domain.Category, error) {
	return m.category(m.Called(ctx, categoryID, req, userID))
}

func (m *MockCategoryService) ActivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	return m.category(m.Called(ctx, categoryID, userID))
}

func (m *MockCategoryService) DeactivateCategory(ctx context.Context, categoryID uuid.UUID, userID uuid.UUID) (*domain.Category, error) {
	return m.category(m.Called(ctx, categoryID, userID))
}

func (m *MockCategoryService) AddSubCategory(ctx context.Context, categoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error) {
	return m.sub(m.Called(ctx, categoryID, req, userID))
}

func (m *MockCategoryService) UpdateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, req dto.SubCategoryRequest, userID uuid.UUID) (*domain.SubCategory, error) {
	return m.sub(m.Called(ctx, categoryID, subCategoryID, req, userID))
}

func (m *MockCategoryService) ActivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error) {
	return m.sub(m.Called(ctx, categoryID, subCategoryID, userID))
}

func (m *MockCategoryService) DeactivateSubCategory(ctx context.Context, categoryID, subCategoryID uuid.UUID, userID uuid.UUID) (*domain.SubCategory, error) {
	return m.sub(m.Called(ctx, categoryID, subCategoryID, userID))
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)
