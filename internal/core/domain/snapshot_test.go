package domain_test

import (
	"testing"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreBankAccount_RoundTrip(t *testing.T) {
	a := newAccount(t, domain.IRR)
	_, err := a.RecordIncome(entry(rial(t, 1200), "Salary"))
	require.NoError(t, err)
	_, err = a.RecordExpense(entry(rial(t, 200), "Lunch"))
	require.NoError(t, err)
	a.SetVersion(3)

	snap := a.Snapshot()
	restored, err := domain.RestoreBankAccount(snap)
	require.NoError(t, err)

	assert.Equal(t, snap, restored.Snapshot())
	assert.Equal(t, int64(3), restored.Version())
	assert.Equal(t, rial(t, 1000), restored.Balance())
	assert.Empty(t, restored.DomainEvents())
}

func TestRestoreBankAccount_RejectsCorruptState(t *testing.T) {
	base := newAccount(t, domain.USD).Snapshot()

	tests := []struct {
		name   string
		mutate func(*domain.BankAccountSnapshot)
		kind   domain.ErrorKind
	}{
		{"unknown currency", func(s *domain.BankAccountSnapshot) { s.CurrencyCode = "XXX" }, domain.KindUnsupportedCurrency},
		{"negative balance", func(s *domain.BankAccountSnapshot) { s.Balance = decimal.NewFromInt(-5) }, domain.KindInvalidArgument},
		{"bad number", func(s *domain.BankAccountSnapshot) { s.AccountNumber = "12" }, domain.KindInvalidArgument},
		{"blank bank", func(s *domain.BankAccountSnapshot) { s.BankName = "" }, domain.KindInvalidArgument},
		{"unknown transaction type", func(s *domain.BankAccountSnapshot) {
			s.Transactions = []domain.TransactionSnapshot{{ID: uuid.New(), Type: "REFUND", CategoryID: uuid.New(), Description: "x"}}
		}, domain.KindInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			_, err := domain.RestoreBankAccount(s)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestRestoreCategory_RoundTrip(t *testing.T) {
	c := newCategory(t, domain.ExpenseCategory)
	s, err := c.AddSubCategory("Cafe", "coffee")
	require.NoError(t, err)
	require.NoError(t, c.DeactivateSubCategory(s.ID()))
	c.SetVersion(7)

	snap := c.Snapshot()
	restored, err := domain.RestoreCategory(snap)
	require.NoError(t, err)

	assert.Equal(t, snap, restored.Snapshot())
	assert.Empty(t, restored.DomainEvents())
	assert.Empty(t, restored.ActiveSubCategories())
}

func TestRestoreCategory_RejectsDuplicateSubCategoryNames(t *testing.T) {
	snap := newCategory(t, domain.ExpenseCategory).Snapshot()
	snap.SubCategories = []domain.SubCategorySnapshot{
		{ID: uuid.New(), Name: "Taxi", IsActive: true},
		{ID: uuid.New(), Name: "taxi", IsActive: false},
	}

	_, err := domain.RestoreCategory(snap)
	assert.Equal(t, domain.KindDuplicateName, domain.KindOf(err))
}
