package events

import (
	"context"
	"errors"

	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	"golang.org/x/sync/errgroup"
)

// MultiDispatcher hands the same events to every dispatcher concurrently. Each dispatcher
// still sees the events in order; failures are joined.
type MultiDispatcher struct {
	dispatchers []portsevents.EventDispatcher
}

var _ portsevents.EventDispatcher = (*MultiDispatcher)(nil)

func NewMultiDispatcher(dispatchers ...portsevents.EventDispatcher) *MultiDispatcher {
	return &MultiDispatcher{dispatchers: dispatchers}
}

func (m *MultiDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	errs := make([]error, len(m.dispatchers))
	var g errgroup.Group
	for i, d := range m.dispatchers {
		i, d := i, d
		g.Go(func() error {
			errs[i] = d.Dispatch(ctx, events)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}
