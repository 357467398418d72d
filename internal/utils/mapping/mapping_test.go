package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T) *domain.BankAccount {
	t.Helper()
	number, err := domain.NewBankAccountNumber("6037991234567890")
	require.NoError(t, err)
	a, err := domain.NewBankAccount(uuid.New(), "Daily", "Melli", number, domain.USD)
	require.NoError(t, err)
	return a
}

func usd(t *testing.T, amount string) domain.Money {
	t.Helper()
	m, err := domain.NewMoney(decimal.RequireFromString(amount), domain.USD)
	require.NoError(t, err)
	return m
}

func TestBankAccountRowsRoundTrip(t *testing.T) {
	a := newAccount(t)
	_, err := a.RecordIncome(domain.EntryParams{Amount: usd(t, "10.50"), CategoryID: uuid.New(), Description: "refund"})
	require.NoError(t, err)
	_, err = a.RecordExpense(domain.EntryParams{Amount: usd(t, "3"), CategoryID: uuid.New(), SubCategoryID: uuid.New(), Description: "tea"})
	require.NoError(t, err)

	snap := a.Snapshot()
	row := mapping.ToModelBankAccount(snap)
	lines := mapping.ToModelTransactions(snap)

	require.Len(t, lines, 2)
	assert.Equal(t, 0, lines[0].Position)
	assert.Equal(t, 1, lines[1].Position)
	assert.Nil(t, lines[0].SubCategoryID)
	assert.NotNil(t, lines[1].SubCategoryID)
	assert.Equal(t, snap.ID, lines[1].AccountID)

	assert.Equal(t, snap, mapping.ToBankAccountSnapshot(row, lines))
}

func TestCategoryRowsRoundTrip(t *testing.T) {
	c, err := domain.NewCategory(uuid.New(), "Transport", domain.ExpenseCategory, "bus", "#123456")
	require.NoError(t, err)
	_, err = c.AddSubCategory("Taxi", "")
	require.NoError(t, err)

	snap := c.Snapshot()
	subs := mapping.ToModelSubCategories(snap)
	require.Len(t, subs, 1)
	assert.Equal(t, snap.ID, subs[0].CategoryID)

	assert.Equal(t, snap, mapping.ToCategorySnapshot(mapping.ToModelCategory(snap), subs))
}

func TestToModelDomainEvents(t *testing.T) {
	a := newAccount(t)
	_, err := a.RecordIncome(domain.EntryParams{Amount: usd(t, "1"), CategoryID: uuid.New(), Description: "x"})
	require.NoError(t, err)
	c, err := domain.NewCategory(uuid.New(), "Salary", domain.IncomeCategory, "", "")
	require.NoError(t, err)

	events := append(a.DomainEvents(), c.DomainEvents()...)
	rows, err := mapping.ToModelDomainEvents(events)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, domain.EventBankAccountCreated, rows[0].EventName)
	assert.Equal(t, mapping.AggregateBankAccount, rows[0].AggregateType)
	assert.Equal(t, events[0].EventID(), rows[0].EventID)
	assert.Equal(t, a.ID(), rows[1].AggregateID)
	assert.Equal(t, mapping.AggregateCategory, rows[2].AggregateType)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rows[1].Payload, &payload))
	assert.Equal(t, map[string]any{"amount": "1.00", "currency": "USD"}, payload["amount"])
}
