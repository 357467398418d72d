package events

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/walleto/internal/models"
	"github.com/google/uuid"
)

// OutboxSource is the store the relay drains, such as the Postgres domain_events table.
type OutboxSource interface {
	FetchUnpublishedEvents(ctx context.Context, limit int) ([]models.DomainEvent, error)
	MarkEventsPublished(ctx context.Context, eventIDs []uuid.UUID) error
}

// EnvelopePublisher sends a stored event to the message bus.
type EnvelopePublisher interface {
	Publish(ctx context.Context, e models.DomainEvent) error
}

// OutboxRelay periodically publishes stored events that have not been published yet.
type OutboxRelay struct {
	source    OutboxSource
	publisher EnvelopePublisher
	interval  time.Duration
	batchSize int
	logger    *slog.Logger
}

type OutboxRelayOption func(*OutboxRelay)

func WithRelayInterval(d time.Duration) OutboxRelayOption {
	return func(r *OutboxRelay) { r.interval = d }
}

func WithRelayBatchSize(n int) OutboxRelayOption {
	return func(r *OutboxRelay) { r.batchSize = n }
}

func NewOutboxRelay(source OutboxSource, publisher EnvelopePublisher, logger *slog.Logger, opts ...OutboxRelayOption) *OutboxRelay {
	r := &OutboxRelay{
		source:    source,
		publisher: publisher,
		interval:  2 * time.Second,
		batchSize: 100,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run relays until ctx is cancelled.
func (r *OutboxRelay) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Outbox relay started", slog.Duration("interval", r.interval))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := r.RelayOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("Outbox relay pass failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RelayOnce publishes one batch in order. It stops at the first publish failure so later
// events never overtake an earlier one, and marks only what was published.
func (r *OutboxRelay) RelayOnce(ctx context.Context) (int, error) {
	pending, err := r.source.FetchUnpublishedEvents(ctx, r.batchSize)
	if err != nil {
		return 0, err
	}

	published := make([]uuid.UUID, 0, len(pending))
	var publishErr error
	for _, e := range pending {
		if publishErr = r.publisher.Publish(ctx, e); publishErr != nil {
			break
		}
		published = append(published, e.EventID)
	}

	if err := r.source.MarkEventsPublished(ctx, published); err != nil {
		return 0, err
	}
	if len(published) > 0 {
		r.logger.Debug("Relayed outbox events", slog.Int("count", len(published)))
	}
	return len(published), publishErr
}
