package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	"github.com/SscSPs/walleto/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Dispatcher portsevents.EventDispatcher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// PublishEvents hands the aggregate's pending events to the dispatcher and drains the buffer.
// The aggregate is already saved at this point, so a delivery failure is logged, not returned.
func (s *BaseService) PublishEvents(ctx context.Context, agg domain.AggregateRoot) {
	events := agg.DomainEvents()
	if len(events) == 0 {
		return
	}
	if s.Dispatcher != nil {
		if err := s.Dispatcher.Dispatch(ctx, events); err != nil {
			s.LogError(ctx, err, "Failed to dispatch domain events",
				slog.String("aggregate_id", agg.ID().String()),
				slog.Int("event_count", len(events)))
		}
	}
	agg.ClearDomainEvents()
}
