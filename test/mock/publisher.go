// Package mock provides test doubles for the booking service.
// They are meant for integration tests that need configurable behavior
// (failures, recorded calls) across goroutines.
package mock

import (
	"context"
	"sync"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// Publisher is a configurable domain.EventPublisher that records every event
// it accepts. It is safe for concurrent use.
type Publisher struct {
	mu        sync.Mutex
	events    []domain.ReservationEvent
	err       error
	callCount int
}

// NewPublisher creates a publisher that accepts every event.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// WithError makes every publish fail with err. Failed events are not recorded.
func (p *Publisher) WithError(err error) *Publisher {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
	return p
}

// Publish implements domain.EventPublisher.
func (p *Publisher) Publish(ctx context.Context, event domain.ReservationEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.callCount++
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of the recorded events in publish order.
func (p *Publisher) Events() []domain.ReservationEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ReservationEvent, len(p.events))
	copy(out, p.events)
	return out
}

// EventsOfType returns the recorded events of one type.
func (p *Publisher) EventsOfType(t domain.ReservationEventType) []domain.ReservationEvent {
	var out []domain.ReservationEvent
	for _, e := range p.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// CallCount returns the number of Publish calls, failed ones included.
func (p *Publisher) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// Reset clears recorded events and the call count.
func (p *Publisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
	p.callCount = 0
}

var _ domain.EventPublisher = (*Publisher)(nil)
