// Package rabbitmq publishes reservation events to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/retry"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements domain.EventPublisher on the default exchange, using
// the queue name as routing key.
type Publisher struct {
	mu    sync.Mutex
	ch    Channel
	queue string
	retry retry.Config
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithRetry overrides the publish retry policy.
func WithRetry(cfg retry.Config) Option {
	return func(p *Publisher) { p.retry = cfg }
}

// NewPublisher declares queue as durable and returns a Publisher bound to it.
func NewPublisher(ch Channel, queue string, opts ...Option) (*Publisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}

	p := &Publisher{
		ch:    ch,
		queue: queue,
		retry: retry.PublishConfig,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Publish sends event as a persistent JSON message. Transient broker errors
// are retried; encoding errors are not.
func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.Type, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt.UTC(),
		Body:         body,
	}

	cfg := p.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Int("attempt", attempt).
			Dur("wait", wait).
			Str("event_type", string(event.Type)).
			Msg("Retrying event publish")
	})

	err = retry.Do(ctx, func() error {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	}, cfg)
	if err != nil {
		return fmt.Errorf("publish %s to %s: %w", event.Type, p.queue, err)
	}
	return nil
}

// Close closes the underlying channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}

// Dial connects to the broker, retrying while it comes up.
func Dial(ctx context.Context, url string, cfg retry.Config) (*amqp.Connection, error) {
	conn, err := retry.DoWithResult(ctx, func() (*amqp.Connection, error) {
		return amqp.Dial(url)
	}, cfg)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	return conn, nil
}

var (
	_ domain.EventPublisher = (*Publisher)(nil)
	_ Channel               = (*amqp.Channel)(nil)
)
