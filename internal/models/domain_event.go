package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DomainEvent is an outbox row. Payload holds the JSON encoding of the concrete event.
type DomainEvent struct {
	EventID       uuid.UUID       `db:"event_id" json:"eventId"`
	EventName     string          `db:"event_name" json:"eventName"`
	AggregateID   uuid.UUID       `db:"aggregate_id" json:"aggregateId"`
	AggregateType string          `db:"aggregate_type" json:"aggregateType"`
	OccurredOn    time.Time       `db:"occurred_on" json:"occurredOn"`
	Payload       json.RawMessage `db:"payload" json:"payload"`
	PublishedAt   *time.Time      `db:"published_at" json:"-"`
}
