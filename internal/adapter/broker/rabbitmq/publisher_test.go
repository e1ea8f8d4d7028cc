package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/retry"
)

type fakeChannel struct {
	declareErr error
	failures   int
	publishErr error

	declared  []string
	published []amqp.Publishing
	keys      []string
	attempts  int
	closed    bool
}

func (c *fakeChannel) QueueDeclare(name string, durable, _, _, _ bool, _ amqp.Table) (amqp.Queue, error) {
	if c.declareErr != nil {
		return amqp.Queue{}, c.declareErr
	}
	if durable {
		c.declared = append(c.declared, name)
	}
	return amqp.Queue{Name: name}, nil
}

func (c *fakeChannel) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	c.attempts++
	if c.attempts <= c.failures {
		return c.publishErr
	}
	c.keys = append(c.keys, key)
	c.published = append(c.published, msg)
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

var fastRetry = retry.Config{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     5 * time.Millisecond,
	Multiplier:   2,
	RetryIf:      retry.SkipPermanent,
}

func bookedEvent() domain.ReservationEvent {
	return domain.ReservationEvent{
		ID:            "0b6b2c9e-7d55-4a53-9f3a-1f0e8f1c2d3a",
		Type:          domain.EventReservationBooked,
		ReservationID: 1,
		TicketID:      100,
		FlightID:      1,
		UserID:        2,
		SeatNumber:    "12A",
		TicketClass:   domain.TicketClassEconomy,
		Amount:        "250000.00",
		Currency:      "COP",
		OccurredAt:    time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC),
	}
}

func TestNewPublisher(t *testing.T) {
	t.Run("declares durable queue", func(t *testing.T) {
		ch := &fakeChannel{}
		_, err := NewPublisher(ch, "reservation.events")
		require.NoError(t, err)
		assert.Equal(t, []string{"reservation.events"}, ch.declared)
	})

	t.Run("declare failure", func(t *testing.T) {
		ch := &fakeChannel{declareErr: errors.New("access refused")}
		_, err := NewPublisher(ch, "reservation.events")
		assert.ErrorContains(t, err, "declare queue reservation.events")
	})
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "reservation.events", WithRetry(fastRetry))
	require.NoError(t, err)

	require.NoError(t, p.Publish(context.Background(), bookedEvent()))

	require.Len(t, ch.published, 1)
	msg := ch.published[0]
	assert.Equal(t, "reservation.events", ch.keys[0])
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "reservation.booked", msg.Type)
	assert.Equal(t, "0b6b2c9e-7d55-4a53-9f3a-1f0e8f1c2d3a", msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "reservation.booked", body["type"])
	assert.Equal(t, "12A", body["seatNumber"])
	assert.Equal(t, "250000.00", body["amount"])
	assert.NotContains(t, body, "reason")
}

func TestPublisher_PublishRetries(t *testing.T) {
	tests := []struct {
		name         string
		failures     int
		publishErr   error
		wantErr      bool
		wantAttempts int
	}{
		{name: "recovers after transient errors", failures: 2, publishErr: amqp.ErrClosed, wantAttempts: 3},
		{name: "gives up after max attempts", failures: 5, publishErr: amqp.ErrClosed, wantErr: true, wantAttempts: 3},
		{name: "permanent error is not retried", failures: 5, publishErr: retry.NewPermanent(errors.New("bad frame")), wantErr: true, wantAttempts: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &fakeChannel{failures: tt.failures, publishErr: tt.publishErr}
			p, err := NewPublisher(ch, "reservation.events", WithRetry(fastRetry))
			require.NoError(t, err)

			err = p.Publish(context.Background(), bookedEvent())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, ch.published)
			} else {
				assert.NoError(t, err)
				assert.Len(t, ch.published, 1)
			}
			assert.Equal(t, tt.wantAttempts, ch.attempts)
		})
	}
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p, err := NewPublisher(ch, "reservation.events")
	require.NoError(t, err)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}
