package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BankAccount is the aggregate that owns a balance and the ordered ledger that produced it.
// The balance currency is fixed at creation; every posting moves the balance in lock-step
// with the ledger append.
type BankAccount struct {
	aggregateRoot
	id            uuid.UUID
	userID        uuid.UUID
	accountName   string
	bankName      string
	accountNumber BankAccountNumber
	balance       Money
	isActive      bool
	transactions  []Transaction
	createdAt     time.Time
	updatedAt     *time.Time
}

var _ AggregateRoot = (*BankAccount)(nil)

// NewBankAccount opens an active account with a zero balance in currency.
func NewBankAccount(userID uuid.UUID, accountName, bankName string, accountNumber BankAccountNumber, currency Currency) (*BankAccount, error) {
	if userID == uuid.Nil {
		return nil, invalidArgument("userId", "user ID cannot be empty")
	}
	name, bank, err := validateAccountInfo(accountName, bankName)
	if err != nil {
		return nil, err
	}
	if accountNumber.IsZero() {
		return nil, invalidArgument("accountNumber", "bank account number cannot be empty")
	}
	if currency.IsZero() {
		return nil, invalidArgument("currency", "currency is required")
	}

	a := &BankAccount{
		id:            uuid.New(),
		userID:        userID,
		accountName:   name,
		bankName:      bank,
		accountNumber: accountNumber,
		balance:       ZeroMoney(currency),
		isActive:      true,
		createdAt:     now(),
	}
	a.raise(BankAccountCreated{
		eventMeta:   newEventMeta(),
		AccountID:   a.id,
		UserID:      userID,
		AccountName: name,
		BankName:    bank,
	})
	return a, nil
}

func validateAccountInfo(accountName, bankName string) (string, string, error) {
	name := strings.TrimSpace(accountName)
	if name == "" {
		return "", "", invalidArgument("accountName", "account name cannot be empty")
	}
	bank := strings.TrimSpace(bankName)
	if bank == "" {
		return "", "", invalidArgument("bankName", "bank name cannot be empty")
	}
	return name, bank, nil
}

func (a *BankAccount) ID() uuid.UUID                    { return a.id }
func (a *BankAccount) UserID() uuid.UUID                { return a.userID }
func (a *BankAccount) AccountName() string              { return a.accountName }
func (a *BankAccount) BankName() string                 { return a.bankName }
func (a *BankAccount) AccountNumber() BankAccountNumber { return a.accountNumber }
func (a *BankAccount) Balance() Money                   { return a.balance }
func (a *BankAccount) Currency() Currency               { return a.balance.currency }
func (a *BankAccount) IsActive() bool                   { return a.isActive }
func (a *BankAccount) CreatedAt() time.Time             { return a.createdAt }

// UpdatedAt returns the time of the last mutation, or false if the account was never changed.
func (a *BankAccount) UpdatedAt() (time.Time, bool) {
	if a.updatedAt == nil {
		return time.Time{}, false
	}
	return *a.updatedAt, true
}

// Transactions returns the ledger in posting order.
func (a *BankAccount) Transactions() []Transaction {
	return slices.Clone(a.transactions)
}

func (a *BankAccount) touch(t time.Time) {
	a.updatedAt = &t
}

// RecordIncome posts an income line and raises the balance by its amount.
func (a *BankAccount) RecordIncome(p EntryParams) (Transaction, error) {
	tx, err := a.post(Income, p)
	if err != nil {
		return Transaction{}, err
	}
	a.raise(IncomeRecorded{eventMeta: newEventMeta(), AccountID: a.id, TransactionID: tx.id, Amount: tx.amount})
	return tx, nil
}

// RecordExpense posts an expense line. The balance may reach zero but never go below it.
func (a *BankAccount) RecordExpense(p EntryParams) (Transaction, error) {
	tx, err := a.post(Expense, p)
	if err != nil {
		return Transaction{}, err
	}
	a.raise(ExpenseRecorded{eventMeta: newEventMeta(), AccountID: a.id, TransactionID: tx.id, Amount: tx.amount})
	return tx, nil
}

// post validates everything before touching state, so a failed posting leaves the account as it was.
func (a *BankAccount) post(txType TransactionType, p EntryParams) (Transaction, error) {
	if !a.isActive {
		return Transaction{}, invalidState(KindInactiveAccount, "cannot record transactions on inactive account")
	}
	if !p.Amount.currency.Equal(a.balance.currency) {
		return Transaction{}, &CurrencyMismatchError{Expected: a.balance.currency, Actual: p.Amount.currency}
	}
	if txType == Expense && a.balance.minor < p.Amount.minor {
		return Transaction{}, &InsufficientFundsError{Balance: a.balance, Requested: p.Amount}
	}

	tx, err := newTransaction(txType, p)
	if err != nil {
		return Transaction{}, err
	}
	balance, err := tx.apply(a.balance)
	if err != nil {
		return Transaction{}, err
	}

	a.transactions = append(a.transactions, tx)
	a.balance = balance
	a.touch(tx.createdAt)
	return tx, nil
}

// UpdateAccountInfo renames the account and its bank.
func (a *BankAccount) UpdateAccountInfo(accountName, bankName string) error {
	name, bank, err := validateAccountInfo(accountName, bankName)
	if err != nil {
		return err
	}
	a.accountName = name
	a.bankName = bank
	a.touch(now())
	a.raise(BankAccountUpdated{eventMeta: newEventMeta(), AccountID: a.id, NewAccountName: name, NewBankName: bank})
	return nil
}

// SetInitialBalance seeds the balance from an outside source, e.g. a bank import.
// It is only allowed while the ledger is still empty.
func (a *BankAccount) SetInitialBalance(balance Money) error {
	if len(a.transactions) > 0 {
		return invalidState(KindInvalidState, "cannot set initial balance when transactions exist")
	}
	if !balance.currency.Equal(a.balance.currency) {
		return &CurrencyMismatchError{Expected: a.balance.currency, Actual: balance.currency}
	}
	a.balance = balance
	a.touch(now())
	a.raise(BankAccountBalanceSet{eventMeta: newEventMeta(), AccountID: a.id, Balance: balance})
	return nil
}

func (a *BankAccount) Deactivate() error {
	if !a.isActive {
		return invalidState(KindInvalidState, "account is already deactivated")
	}
	a.isActive = false
	a.touch(now())
	a.raise(BankAccountDeactivated{eventMeta: newEventMeta(), AccountID: a.id})
	return nil
}

func (a *BankAccount) Activate() error {
	if a.isActive {
		return invalidState(KindInvalidState, "account is already active")
	}
	a.isActive = true
	a.touch(now())
	a.raise(BankAccountActivated{eventMeta: newEventMeta(), AccountID: a.id})
	return nil
}
