package domain

import (
	"strings"
	"time"
)

// Ticket is a single seat sold to a passenger on a flight.
// A cancelled ticket is terminal: its seat and status can no longer change.
type Ticket struct {
	ID            TicketID
	FlightID      FlightID
	UserID        UserID
	PassengerName string
	Price         Price
	Class         TicketClass
	CreatedAt     time.Time
	UpdatedAt     time.Time

	seat   SeatNumber
	status TicketStatus
}

// TicketParams holds the values used to restore a persisted Ticket.
type TicketParams struct {
	ID            TicketID
	FlightID      FlightID
	UserID        UserID
	PassengerName string
	SeatNumber    SeatNumber
	Price         Price
	Class         TicketClass
	Status        TicketStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTicket issues a CONFIRMED ticket for a passenger.
func NewTicket(flightID FlightID, userID UserID, passenger string, seat SeatNumber, price Price, class TicketClass, now time.Time) (*Ticket, error) {
	passenger = strings.TrimSpace(passenger)
	if passenger == "" {
		return nil, NewValidationError("passengerName", "cannot be empty")
	}
	return &Ticket{
		FlightID:      flightID,
		UserID:        userID,
		PassengerName: passenger,
		Price:         price,
		Class:         class,
		CreatedAt:     now,
		UpdatedAt:     now,
		seat:          seat,
		status:        TicketStatusConfirmed,
	}, nil
}

// RestoreTicket rebuilds a Ticket from stored values.
func RestoreTicket(p TicketParams) *Ticket {
	return &Ticket{
		ID:            p.ID,
		FlightID:      p.FlightID,
		UserID:        p.UserID,
		PassengerName: p.PassengerName,
		Price:         p.Price,
		Class:         p.Class,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		seat:          p.SeatNumber,
		status:        p.Status,
	}
}

// SeatNumber returns the assigned seat.
func (t *Ticket) SeatNumber() SeatNumber { return t.seat }

// Status returns the ticket status.
func (t *Ticket) Status() TicketStatus { return t.status }

// Cancel moves the ticket to CANCELLED.
func (t *Ticket) Cancel(now time.Time) error {
	if t.IsCancelled() {
		return WrapIllegalState("ticket %d is already cancelled", t.ID)
	}
	t.status = TicketStatusCancelled
	t.UpdatedAt = now
	return nil
}

// UpdateSeatNumber reassigns the seat. The caller must have checked that the seat is free.
func (t *Ticket) UpdateSeatNumber(seat SeatNumber, now time.Time) error {
	if t.IsCancelled() {
		return WrapIllegalState("cannot change seat of cancelled ticket %d", t.ID)
	}
	t.seat = seat
	t.UpdatedAt = now
	return nil
}

// IsActive reports whether the ticket is CONFIRMED.
func (t *Ticket) IsActive() bool { return t.status == TicketStatusConfirmed }

// IsCancelled reports whether the ticket is CANCELLED.
func (t *Ticket) IsCancelled() bool { return t.status == TicketStatusCancelled }
