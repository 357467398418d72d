package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event names, also used as routing keys by the messaging adapter.
const (
	EventBankAccountCreated     = "BankAccountCreated"
	EventBankAccountUpdated     = "BankAccountUpdated"
	EventBankAccountBalanceSet  = "BankAccountBalanceSet"
	EventBankAccountActivated   = "BankAccountActivated"
	EventBankAccountDeactivated = "BankAccountDeactivated"
	EventIncomeRecorded         = "IncomeRecorded"
	EventExpenseRecorded        = "ExpenseRecorded"
	EventCategoryCreated        = "CategoryCreated"
	EventCategoryUpdated        = "CategoryUpdated"
	EventCategoryActivated      = "CategoryActivated"
	EventCategoryDeactivated    = "CategoryDeactivated"
	EventSubCategoryAdded       = "SubCategoryAdded"
	EventSubCategoryUpdated     = "SubCategoryUpdated"
	EventSubCategoryActivated   = "SubCategoryActivated"
	EventSubCategoryDeactivated = "SubCategoryDeactivated"
)

// Event is an immutable record of a completed state change.
// Concrete events are stored by value, so a consumer can never alter a buffered event.
type Event interface {
	EventID() uuid.UUID
	OccurredOn() time.Time
	EventName() string
	AggregateID() uuid.UUID
}

type eventMeta struct {
	id         uuid.UUID
	occurredOn time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{id: uuid.New(), occurredOn: now()}
}

func (m eventMeta) EventID() uuid.UUID    { return m.id }
func (m eventMeta) OccurredOn() time.Time { return m.occurredOn }

type BankAccountCreated struct {
	eventMeta
	AccountID   uuid.UUID `json:"accountId"`
	UserID      uuid.UUID `json:"userId"`
	AccountName string    `json:"accountName"`
	BankName    string    `json:"bankName"`
}

func (BankAccountCreated) EventName() string        { return EventBankAccountCreated }
func (e BankAccountCreated) AggregateID() uuid.UUID { return e.AccountID }

type BankAccountUpdated struct {
	eventMeta
	AccountID      uuid.UUID `json:"accountId"`
	NewAccountName string    `json:"newAccountName"`
	NewBankName    string    `json:"newBankName"`
}

func (BankAccountUpdated) EventName() string        { return EventBankAccountUpdated }
func (e BankAccountUpdated) AggregateID() uuid.UUID { return e.AccountID }

type BankAccountBalanceSet struct {
	eventMeta
	AccountID uuid.UUID `json:"accountId"`
	Balance   Money     `json:"balance"`
}

func (BankAccountBalanceSet) EventName() string        { return EventBankAccountBalanceSet }
func (e BankAccountBalanceSet) AggregateID() uuid.UUID { return e.AccountID }

type BankAccountActivated struct {
	eventMeta
	AccountID uuid.UUID `json:"accountId"`
}

func (BankAccountActivated) EventName() string        { return EventBankAccountActivated }
func (e BankAccountActivated) AggregateID() uuid.UUID { return e.AccountID }

type BankAccountDeactivated struct {
	eventMeta
	AccountID uuid.UUID `json:"accountId"`
}

func (BankAccountDeactivated) EventName() string        { return EventBankAccountDeactivated }
func (e BankAccountDeactivated) AggregateID() uuid.UUID { return e.AccountID }

type IncomeRecorded struct {
	eventMeta
	AccountID     uuid.UUID `json:"accountId"`
	TransactionID uuid.UUID `json:"transactionId"`
	Amount        Money     `json:"amount"`
}

func (IncomeRecorded) EventName() string        { return EventIncomeRecorded }
func (e IncomeRecorded) AggregateID() uuid.UUID { return e.AccountID }

type ExpenseRecorded struct {
	eventMeta
	AccountID     uuid.UUID `json:"accountId"`
	TransactionID uuid.UUID `json:"transactionId"`
	Amount        Money     `json:"amount"`
}

func (ExpenseRecorded) EventName() string        { return EventExpenseRecorded }
func (e ExpenseRecorded) AggregateID() uuid.UUID { return e.AccountID }

type CategoryCreated struct {
	eventMeta
	CategoryID uuid.UUID    `json:"categoryId"`
	UserID     uuid.UUID    `json:"userId"`
	Name       string       `json:"name"`
	Type       CategoryType `json:"type"`
}

func (CategoryCreated) EventName() string        { return EventCategoryCreated }
func (e CategoryCreated) AggregateID() uuid.UUID { return e.CategoryID }

type CategoryUpdated struct {
	eventMeta
	CategoryID uuid.UUID `json:"categoryId"`
	NewName    string    `json:"newName"`
}

func (CategoryUpdated) EventName() string        { return EventCategoryUpdated }
func (e CategoryUpdated) AggregateID() uuid.UUID { return e.CategoryID }

type CategoryActivated struct {
	eventMeta
	CategoryID uuid.UUID `json:"categoryId"`
}

func (CategoryActivated) EventName() string        { return EventCategoryActivated }
func (e CategoryActivated) AggregateID() uuid.UUID { return e.CategoryID }

// CategoryDeactivated is the only event raised for a category deactivation, including
// the subcategories it switched off along the way.
type CategoryDeactivated struct {
	eventMeta
	CategoryID uuid.UUID `json:"categoryId"`
}

func (CategoryDeactivated) EventName() string        { return EventCategoryDeactivated }
func (e CategoryDeactivated) AggregateID() uuid.UUID { return e.CategoryID }

type SubCategoryAdded struct {
	eventMeta
	CategoryID    uuid.UUID `json:"categoryId"`
	SubCategoryID uuid.UUID `json:"subCategoryId"`
	Name          string    `json:"name"`
}

func (SubCategoryAdded) EventName() string        { return EventSubCategoryAdded }
func (e SubCategoryAdded) AggregateID() uuid.UUID { return e.CategoryID }

type SubCategoryUpdated struct {
	eventMeta
	CategoryID    uuid.UUID `json:"categoryId"`
	SubCategoryID uuid.UUID `json:"subCategoryId"`
	NewName       string    `json:"newName"`
}

func (SubCategoryUpdated) EventName() string        { return EventSubCategoryUpdated }
func (e SubCategoryUpdated) AggregateID() uuid.UUID { return e.CategoryID }

type SubCategoryActivated struct {
	eventMeta
	CategoryID    uuid.UUID `json:"categoryId"`
	SubCategoryID uuid.UUID `json:"subCategoryId"`
}

func (SubCategoryActivated) EventName() string        { return EventSubCategoryActivated }
func (e SubCategoryActivated) AggregateID() uuid.UUID { return e.CategoryID }

type SubCategoryDeactivated struct {
	eventMeta
	CategoryID    uuid.UUID `json:"categoryId"`
	SubCategoryID uuid.UUID `json:"subCategoryId"`
}

func (SubCategoryDeactivated) EventName() string        { return EventSubCategoryDeactivated }
func (e SubCategoryDeactivated) AggregateID() uuid.UUID { return e.CategoryID }
