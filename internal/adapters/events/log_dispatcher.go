// Package events holds the adapters that deliver domain events outside the core: a structured
// log sink, an AMQP publisher, a fan-out dispatcher and the relay that drains the Postgres outbox.
package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/SscSPs/walleto/internal/utils/mapping"
)

// LogDispatcher writes one structured log line per event using the request-scoped logger.
type LogDispatcher struct {
	level slog.Level
}

var _ portsevents.EventDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(level slog.Level) *LogDispatcher {
	return &LogDispatcher{level: level}
}

func (d *LogDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	for _, e := range events {
		logger.Log(ctx, d.level, "Domain event",
			slog.String("event_name", e.EventName()),
			slog.String("event_id", e.EventID().String()),
			slog.String("aggregate_type", mapping.AggregateTypeOf(e)),
			slog.String("aggregate_id", e.AggregateID().String()),
			slog.Time("occurred_on", e.OccurredOn()),
		)
	}
	return nil
}
