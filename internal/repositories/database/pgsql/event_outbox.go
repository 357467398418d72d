package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/SscSPs/walleto/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxEventOutbox stores domain events in the domain_events table, in the same transaction
// as the aggregate that raised them, until a relay has published them.
type PgxEventOutbox struct {
	BaseRepository
}

func newPgxEventOutbox(pool *pgxpool.Pool) *PgxEventOutbox {
	return &PgxEventOutbox{BaseRepository: BaseRepository{Pool: pool}}
}

// appendEvents queues the insert of every pending event on batch.
func appendEvents(batch *pgx.Batch, events []domain.Event) error {
	rows, err := mapping.ToModelDomainEvents(events)
	if err != nil {
		return err
	}
	for _, e := range rows {
		batch.Queue(`
			INSERT INTO domain_events (event_id, event_name, aggregate_id, aggregate_type, occurred_on, payload)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (event_id) DO NOTHING;`,
			e.EventID, e.EventName, e.AggregateID, e.AggregateType, e.OccurredOn, []byte(e.Payload),
		)
	}
	return nil
}

// FetchUnpublishedEvents returns up to limit events not yet published, oldest first.
func (r *PgxEventOutbox) FetchUnpublishedEvents(ctx context.Context, limit int) ([]models.DomainEvent, error) {
	query := `
		SELECT event_id, event_name, aggregate_id, aggregate_type, occurred_on, payload, published_at
		FROM domain_events
		WHERE published_at IS NULL
		ORDER BY occurred_on, event_id
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpublished events: %w", err)
	}
	defer rows.Close()

	events := make([]models.DomainEvent, 0, limit)
	for rows.Next() {
		var e models.DomainEvent
		var payload []byte
		if err := rows.Scan(&e.EventID, &e.EventName, &e.AggregateID, &e.AggregateType, &e.OccurredOn, &payload, &e.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan domain event row: %w", err)
		}
		e.Payload = payload
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating domain event rows: %w", err)
	}
	return events, nil
}

// MarkEventsPublished stamps the given events as published.
func (r *PgxEventOutbox) MarkEventsPublished(ctx context.Context, eventIDs []uuid.UUID) error {
	if len(eventIDs) == 0 {
		return nil
	}
	query := `UPDATE domain_events SET published_at = now() WHERE event_id = ANY($1) AND published_at IS NULL;`
	if _, err := r.Pool.Exec(ctx, query, eventIDs); err != nil {
		return fmt.Errorf("failed to mark %d events published: %w", len(eventIDs), err)
	}
	return nil
}
