package events

import (
	"context"

	"github.com/SscSPs/walleto/internal/core/domain"
)

// EventDispatcher delivers domain events raised by an aggregate after its state was saved.
// Events are handed over in the order they were raised.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []domain.Event) error
}
