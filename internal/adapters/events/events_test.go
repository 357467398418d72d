package events

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/SscSPs/walleto/internal/core/domain"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func categoryEvents(t *testing.T) []domain.Event {
	t.Helper()
	c, err := domain.NewCategory(uuid.New(), "Food", domain.ExpenseCategory, "", "")
	require.NoError(t, err)
	_, err = c.AddSubCategory("Snacks", "")
	require.NoError(t, err)
	return c.DomainEvents()
}

type fakeChannel struct {
	mu         sync.Mutex
	declared   []string
	published  []amqp091.Publishing
	keys       []string
	failAfter  int
	declareErr error
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, _, _, _, _ bool, _ amqp091.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp091.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter > 0 && len(f.published) >= f.failAfter {
		return errors.New("channel closed")
	}
	f.keys = append(f.keys, key)
	f.published = append(f.published, msg)
	return nil
}

func (f *fakeChannel) Close() error { return nil }

func TestAMQPPublisher_Dispatch(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(ch, "walleto.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"walleto.events:topic"}, ch.declared)

	events := categoryEvents(t)
	require.NoError(t, p.Dispatch(context.Background(), events))

	assert.Equal(t, []string{domain.EventCategoryCreated, domain.EventSubCategoryAdded}, ch.keys)
	msg := ch.published[0]
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, events[0].EventID().String(), msg.MessageId)

	var envelope models.DomainEvent
	require.NoError(t, json.Unmarshal(msg.Body, &envelope))
	assert.Equal(t, events[0].AggregateID(), envelope.AggregateID)
	assert.Equal(t, "Category", envelope.AggregateType)
	assert.Contains(t, string(envelope.Payload), `"name":"Food"`)
}

func TestAMQPPublisher_StopsAtFirstFailure(t *testing.T) {
	ch := &fakeChannel{failAfter: 1}
	p, err := newAMQPPublisher(ch, "x")
	require.NoError(t, err)

	err = p.Dispatch(context.Background(), categoryEvents(t))
	require.Error(t, err)
	assert.Len(t, ch.published, 1)
}

func TestAMQPPublisher_DeclareFailure(t *testing.T) {
	_, err := newAMQPPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "x")
	assert.ErrorContains(t, err, "declare exchange")
}

func TestLogDispatcher_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := middleware.WithLogger(context.Background(), logger)

	require.NoError(t, NewLogDispatcher(slog.LevelInfo).Dispatch(ctx, categoryEvents(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, domain.EventSubCategoryAdded, entry["event_name"])
	assert.Equal(t, "Category", entry["aggregate_type"])
}

type mockDispatcher struct{ mock.Mock }

func (m *mockDispatcher) Dispatch(ctx context.Context, events []domain.Event) error {
	return m.Called(ctx, events).Error(0)
}

func TestMultiDispatcher(t *testing.T) {
	events := categoryEvents(t)
	ok := &mockDispatcher{}
	ok.On("Dispatch", mock.Anything, events).Return(nil).Once()
	failing := &mockDispatcher{}
	failing.On("Dispatch", mock.Anything, events).Return(errors.New("broker down")).Once()

	err := NewMultiDispatcher(ok, failing).Dispatch(context.Background(), events)
	assert.ErrorContains(t, err, "broker down")
	ok.AssertExpectations(t)
	failing.AssertExpectations(t)

	assert.NoError(t, NewMultiDispatcher().Dispatch(context.Background(), events))
}

type fakeOutbox struct {
	pending []models.DomainEvent
	marked  []uuid.UUID
}

func (f *fakeOutbox) FetchUnpublishedEvents(_ context.Context, limit int) ([]models.DomainEvent, error) {
	return f.pending[:min(limit, len(f.pending))], nil
}

func (f *fakeOutbox) MarkEventsPublished(_ context.Context, ids []uuid.UUID) error {
	f.marked = append(f.marked, ids...)
	return nil
}

func TestOutboxRelay_RelayOnce(t *testing.T) {
	outbox := &fakeOutbox{}
	for i := 0; i < 3; i++ {
		outbox.pending = append(outbox.pending, models.DomainEvent{EventID: uuid.New(), EventName: domain.EventIncomeRecorded})
	}
	ch := &fakeChannel{failAfter: 2}
	p, err := newAMQPPublisher(ch, "x")
	require.NoError(t, err)

	relay := NewOutboxRelay(outbox, p, slog.Default(), WithRelayBatchSize(10))
	n, err := relay.RelayOnce(context.Background())

	require.Error(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uuid.UUID{outbox.pending[0].EventID, outbox.pending[1].EventID}, outbox.marked)
}
