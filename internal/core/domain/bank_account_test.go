package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/walleto/internal/apperrors"
	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(t *testing.T, c domain.Currency) *domain.BankAccount {
	t.Helper()
	number, err := domain.NewBankAccountNumber("6037-9912-3456-7890")
	require.NoError(t, err)
	a, err := domain.NewBankAccount(uuid.New(), "Daily", "Melli", number, c)
	require.NoError(t, err)
	a.ClearDomainEvents()
	return a
}

func rial(t *testing.T, amount int64) domain.Money {
	t.Helper()
	m, err := domain.MoneyFromRial(decimal.NewFromInt(amount))
	require.NoError(t, err)
	return m
}

func entry(m domain.Money, description string) domain.EntryParams {
	return domain.EntryParams{Amount: m, CategoryID: uuid.New(), Description: description}
}

func TestNewBankAccount(t *testing.T) {
	userID := uuid.New()
	number, err := domain.NewBankAccountNumber("0123456789")
	require.NoError(t, err)

	a, err := domain.NewBankAccount(userID, "  Savings ", " Saman ", number, domain.IRR)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.Equal(t, userID, a.UserID())
	assert.Equal(t, "Savings", a.AccountName())
	assert.Equal(t, "Saman", a.BankName())
	assert.True(t, a.IsActive())
	assert.True(t, a.Balance().IsZero())
	assert.Equal(t, domain.IRR, a.Currency())
	assert.Empty(t, a.Transactions())
	_, updated := a.UpdatedAt()
	assert.False(t, updated)

	events := a.DomainEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(domain.BankAccountCreated)
	require.True(t, ok)
	assert.Equal(t, a.ID(), created.AggregateID())
	assert.Equal(t, "Savings", created.AccountName)
	assert.Equal(t, domain.EventBankAccountCreated, created.EventName())
	assert.Equal(t, time.UTC, created.OccurredOn().Location())
}

func TestNewBankAccount_Validation(t *testing.T) {
	number, err := domain.NewBankAccountNumber("0123456789")
	require.NoError(t, err)

	tests := []struct {
		name   string
		userID uuid.UUID
		acct   string
		bank   string
		number domain.BankAccountNumber
		cur    domain.Currency
	}{
		{"nil user", uuid.Nil, "a", "b", number, domain.IRR},
		{"blank account name", uuid.New(), "  ", "b", number, domain.IRR},
		{"blank bank name", uuid.New(), "a", "", number, domain.IRR},
		{"missing number", uuid.New(), "a", "b", domain.BankAccountNumber{}, domain.IRR},
		{"missing currency", uuid.New(), "a", "b", number, domain.Currency{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewBankAccount(tt.userID, tt.acct, tt.bank, tt.number, tt.cur)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestBankAccount_RecordIncome_FirstSalary(t *testing.T) {
	a := newAccount(t, domain.IRR)
	catX := uuid.New()

	tx, err := a.RecordIncome(domain.EntryParams{Amount: rial(t, 5_000_000), CategoryID: catX, Description: "Salary"})
	require.NoError(t, err)

	assert.Equal(t, rial(t, 5_000_000), a.Balance())
	require.Len(t, a.Transactions(), 1)
	assert.Equal(t, tx, a.Transactions()[0])
	assert.Equal(t, domain.Income, tx.Type())
	assert.Equal(t, catX, tx.CategoryID())
	_, hasSub := tx.SubCategoryID()
	assert.False(t, hasSub)
	assert.False(t, tx.TransactionDate().IsZero())

	events := a.DomainEvents()
	require.Len(t, events, 1)
	recorded, ok := events[0].(domain.IncomeRecorded)
	require.True(t, ok)
	assert.Equal(t, tx.ID(), recorded.TransactionID)
	assert.Equal(t, rial(t, 5_000_000), recorded.Amount)
}

func TestBankAccount_RecordExpense_OverdraftRejected(t *testing.T) {
	a := newAccount(t, domain.IRR)
	require.NoError(t, a.SetInitialBalance(rial(t, 1_000_000)))
	a.ClearDomainEvents()

	_, err := a.RecordExpense(entry(rial(t, 2_000_000), "Rent"))

	var inf *domain.InsufficientFundsError
	require.ErrorAs(t, err, &inf)
	assert.Equal(t, rial(t, 1_000_000), inf.Balance)
	assert.Equal(t, rial(t, 2_000_000), inf.Requested)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	assert.Equal(t, rial(t, 1_000_000), a.Balance())
	assert.Empty(t, a.Transactions())
	assert.Empty(t, a.DomainEvents())
}

func TestBankAccount_RecordExpense_ToExactlyZero(t *testing.T) {
	a := newAccount(t, domain.IRR)
	_, err := a.RecordIncome(entry(rial(t, 300), "Gift"))
	require.NoError(t, err)

	tx, err := a.RecordExpense(entry(rial(t, 300), "Coffee"))
	require.NoError(t, err)
	assert.Equal(t, domain.Expense, tx.Type())
	assert.True(t, a.Balance().IsZero())
	assert.Len(t, a.DomainEvents(), 2)
}

func TestBankAccount_BalanceIsNetOfPostings(t *testing.T) {
	a := newAccount(t, domain.USD)
	postings := []struct {
		income bool
		amount string
	}{
		{true, "100.10"}, {false, "20.05"}, {true, "0.99"}, {false, "81.04"}, {true, "1000"}, {false, "0.01"},
	}

	want := domain.ZeroMoney(domain.USD)
	for _, p := range postings {
		m := mustMoney(t, p.amount, domain.USD)
		var err error
		if p.income {
			_, err = a.RecordIncome(entry(m, "in"))
			require.NoError(t, err)
			want, err = want.Add(m)
		} else {
			_, err = a.RecordExpense(entry(m, "out"))
			require.NoError(t, err)
			want, err = want.Subtract(m)
		}
		require.NoError(t, err)
	}

	assert.Equal(t, want, a.Balance())
	assert.Len(t, a.Transactions(), len(postings))
	assert.Len(t, a.DomainEvents(), len(postings))
}

func TestBankAccount_PostingFailuresLeaveStateUntouched(t *testing.T) {
	a := newAccount(t, domain.IRR)
	_, err := a.RecordIncome(entry(rial(t, 1000), "seed"))
	require.NoError(t, err)
	a.ClearDomainEvents()
	before := a.Snapshot()

	tests := []struct {
		name string
		run  func() error
		kind domain.ErrorKind
	}{
		{"currency mismatch", func() error {
			_, err := a.RecordIncome(entry(mustMoney(t, "1", domain.USD), "x"))
			return err
		}, domain.KindCurrencyMismatch},
		{"blank description", func() error {
			_, err := a.RecordIncome(entry(rial(t, 1), "  "))
			return err
		}, domain.KindInvalidArgument},
		{"missing category", func() error {
			_, err := a.RecordExpense(domain.EntryParams{Amount: rial(t, 1), Description: "x"})
			return err
		}, domain.KindInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
			assert.Equal(t, before, a.Snapshot())
			assert.Empty(t, a.DomainEvents())
		})
	}
}

func TestBankAccount_InactiveRejectsPostings(t *testing.T) {
	a := newAccount(t, domain.IRR)
	require.NoError(t, a.Deactivate())

	_, err := a.RecordIncome(entry(rial(t, 10), "x"))
	assert.Equal(t, domain.KindInactiveAccount, domain.KindOf(err))
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	_, err = a.RecordExpense(entry(rial(t, 10), "x"))
	assert.Equal(t, domain.KindInactiveAccount, domain.KindOf(err))
}

func TestBankAccount_TransactionDateIsUTC(t *testing.T) {
	a := newAccount(t, domain.IRR)
	tehran := time.FixedZone("IRST", 3*3600+1800)
	when := time.Date(2024, 3, 20, 9, 0, 0, 0, tehran)
	subID := uuid.New()

	tx, err := a.RecordIncome(domain.EntryParams{
		Amount:        rial(t, 10),
		CategoryID:    uuid.New(),
		SubCategoryID: subID,
		Description:   " Bonus ",
		Date:          when,
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, tx.TransactionDate().Location())
	assert.True(t, when.Equal(tx.TransactionDate()))
	assert.Equal(t, "Bonus", tx.Description())
	got, ok := tx.SubCategoryID()
	assert.True(t, ok)
	assert.Equal(t, subID, got)
}

func TestBankAccount_SetInitialBalance(t *testing.T) {
	a := newAccount(t, domain.IRR)

	err := a.SetInitialBalance(mustMoney(t, "5", domain.USD))
	assert.ErrorIs(t, err, apperrors.ErrCurrencyMismatch)

	require.NoError(t, a.SetInitialBalance(rial(t, 700)))
	require.NoError(t, a.SetInitialBalance(rial(t, 900)), "allowed again while the ledger is empty")
	assert.Equal(t, rial(t, 900), a.Balance())
	assert.Len(t, a.DomainEvents(), 2)

	_, err = a.RecordExpense(entry(rial(t, 100), "x"))
	require.NoError(t, err)

	err = a.SetInitialBalance(rial(t, 5))
	assert.Equal(t, domain.KindInvalidState, domain.KindOf(err))
	assert.Equal(t, rial(t, 800), a.Balance())
}

func TestBankAccount_UpdateAccountInfo(t *testing.T) {
	a := newAccount(t, domain.IRR)

	require.NoError(t, a.UpdateAccountInfo("Travel", "Pasargad"))
	assert.Equal(t, "Travel", a.AccountName())
	assert.Equal(t, "Pasargad", a.BankName())
	_, updated := a.UpdatedAt()
	assert.True(t, updated)

	err := a.UpdateAccountInfo("", "Pasargad")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "Travel", a.AccountName())

	events := a.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventBankAccountUpdated, events[0].EventName())
}

func TestBankAccount_ActivationLifecycle(t *testing.T) {
	a := newAccount(t, domain.IRR)

	assert.Equal(t, domain.KindInvalidState, domain.KindOf(a.Activate()))
	require.NoError(t, a.Deactivate())
	assert.False(t, a.IsActive())
	assert.Equal(t, domain.KindInvalidState, domain.KindOf(a.Deactivate()))
	require.NoError(t, a.Activate())
	assert.True(t, a.IsActive())

	var names []string
	for _, e := range a.DomainEvents() {
		names = append(names, e.EventName())
	}
	assert.Equal(t, []string{domain.EventBankAccountDeactivated, domain.EventBankAccountActivated}, names)
}

func TestBankAccount_EventBufferIsACopy(t *testing.T) {
	a := newAccount(t, domain.IRR)
	_, err := a.RecordIncome(entry(rial(t, 10), "x"))
	require.NoError(t, err)

	events := a.DomainEvents()
	events[0] = nil
	assert.NotNil(t, a.DomainEvents()[0])

	a.ClearDomainEvents()
	assert.Empty(t, a.DomainEvents())
}
