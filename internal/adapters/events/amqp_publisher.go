package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/walleto/internal/core/domain"
	portsevents "github.com/SscSPs/walleto/internal/core/ports/events"
	"github.com/SscSPs/walleto/internal/middleware"
	"github.com/SscSPs/walleto/internal/models"
	"github.com/SscSPs/walleto/internal/utils/mapping"
	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// amqpChannel is the part of *amqp091.Channel the publisher needs.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes every event as a persistent JSON message on a topic exchange,
// routed by event name.
type AMQPPublisher struct {
	mu           sync.Mutex // amqp091 channels must not publish concurrently
	conn         *amqp091.Connection
	channel      amqpChannel
	exchangeName string
}

var _ portsevents.EventDispatcher = (*AMQPPublisher)(nil)

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url, exchangeName string) (*AMQPPublisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newAMQPPublisher(channel, exchangeName)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(channel amqpChannel, exchangeName string) (*AMQPPublisher, error) {
	err := channel.ExchangeDeclare(
		exchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPPublisher{channel: channel, exchangeName: exchangeName}, nil
}

// Dispatch publishes the events in order and stops at the first failure.
func (p *AMQPPublisher) Dispatch(ctx context.Context, events []domain.Event) error {
	envelopes, err := mapping.ToModelDomainEvents(events)
	if err != nil {
		return err
	}
	for _, e := range envelopes {
		if err := p.Publish(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Publish sends one event envelope. The message id is the event id so consumers can dedupe.
func (p *AMQPPublisher) Publish(ctx context.Context, e models.DomainEvent) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", e.EventID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName, // exchange
		e.EventName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    e.EventID.String(),
			Timestamp:    e.OccurredOn,
			Type:         e.EventName,
			Body:         body,
		},
	)
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("publish event %s: %w", e.EventName, err)
	}

	middleware.GetLoggerFromCtx(ctx).Debug("Published domain event",
		slog.String("event_name", e.EventName),
		slog.String("event_id", e.EventID.String()),
		slog.String("exchange", p.exchangeName))
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
