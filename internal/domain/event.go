package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=event.go -destination=mock_event.go -package=domain

// ReservationEventType names a reservation lifecycle event.
type ReservationEventType string

const (
	EventReservationBooked    ReservationEventType = "reservation.booked"
	EventReservationCancelled ReservationEventType = "reservation.cancelled"
)

// ReservationEvent is emitted after a booking or cancellation has been committed.
// It carries enough data for consumers to act without reading the database.
type ReservationEvent struct {
	ID            string               `json:"id"`
	Type          ReservationEventType `json:"type"`
	ReservationID ReservationID        `json:"reservationId"`
	TicketID      TicketID             `json:"ticketId"`
	FlightID      FlightID             `json:"flightId"`
	UserID        UserID               `json:"userId"`
	SeatNumber    SeatNumber           `json:"seatNumber,omitempty"`
	TicketClass   TicketClass          `json:"ticketClass,omitempty"`
	Amount        string               `json:"amount,omitempty"`
	Currency      string               `json:"currency,omitempty"`
	Reason        string               `json:"reason,omitempty"`
	OccurredAt    time.Time            `json:"occurredAt"`
}

// EventPublisher delivers reservation events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

// NopPublisher discards every event.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(context.Context, ReservationEvent) error { return nil }
