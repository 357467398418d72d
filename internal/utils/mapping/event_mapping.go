package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/models"
)

const (
	AggregateBankAccount = "BankAccount"
	AggregateCategory    = "Category"
)

// AggregateTypeOf names the aggregate that raised e.
func AggregateTypeOf(e domain.Event) string {
	switch e.(type) {
	case domain.BankAccountCreated, domain.BankAccountUpdated, domain.BankAccountBalanceSet,
		domain.BankAccountActivated, domain.BankAccountDeactivated,
		domain.IncomeRecorded, domain.ExpenseRecorded:
		return AggregateBankAccount
	default:
		return AggregateCategory
	}
}

// ToModelDomainEvent wraps an event in the envelope used by the outbox and the message bus.
func ToModelDomainEvent(e domain.Event) (models.DomainEvent, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return models.DomainEvent{}, fmt.Errorf("failed to encode event %s: %w", e.EventName(), err)
	}
	return models.DomainEvent{
		EventID:       e.EventID(),
		EventName:     e.EventName(),
		AggregateID:   e.AggregateID(),
		AggregateType: AggregateTypeOf(e),
		OccurredOn:    e.OccurredOn(),
		Payload:       payload,
	}, nil
}

// ToModelDomainEvents converts a batch, failing on the first event that cannot be encoded.
func ToModelDomainEvents(events []domain.Event) ([]models.DomainEvent, error) {
	out := make([]models.DomainEvent, 0, len(events))
	for _, e := range events {
		m, err := ToModelDomainEvent(e)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
