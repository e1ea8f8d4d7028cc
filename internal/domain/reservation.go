package domain

import "time"

// MaxObservationsLength is the longest observations text, in characters, a
// reservation stores. Cancellation reasons are stored there too.
const MaxObservationsLength = 100

// Reservation records a user's booking of one ticket on a flight.
type Reservation struct {
	ID              ReservationID
	UserID          UserID
	TicketID        TicketID
	FlightID        FlightID
	Observations    string
	ReservationDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	status ReservationStatus
}

// ReservationParams holds the values used to restore a persisted Reservation.
type ReservationParams struct {
	ID              ReservationID
	UserID          UserID
	TicketID        TicketID
	FlightID        FlightID
	Status          ReservationStatus
	Observations    string
	ReservationDate time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewReservation creates a CONFIRMED reservation for a freshly issued ticket.
func NewReservation(userID UserID, ticketID TicketID, flightID FlightID, observations string, now time.Time) *Reservation {
	return &Reservation{
		UserID:          userID,
		TicketID:        ticketID,
		FlightID:        flightID,
		Observations:    observations,
		ReservationDate: now,
		CreatedAt:       now,
		UpdatedAt:       now,
		status:          ReservationStatusConfirmed,
	}
}

// RestoreReservation rebuilds a Reservation from stored values.
func RestoreReservation(p ReservationParams) *Reservation {
	return &Reservation{
		ID:              p.ID,
		UserID:          p.UserID,
		TicketID:        p.TicketID,
		FlightID:        p.FlightID,
		Observations:    p.Observations,
		ReservationDate: p.ReservationDate,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
		status:          p.Status,
	}
}

// Status returns the reservation status.
func (r *Reservation) Status() ReservationStatus { return r.status }

// Confirm moves the reservation to CONFIRMED. Confirming twice is a no-op
// apart from the timestamp.
func (r *Reservation) Confirm(now time.Time) error {
	if r.IsCancelled() {
		return WrapIllegalState("cannot confirm cancelled reservation %d", r.ID)
	}
	r.status = ReservationStatusConfirmed
	r.UpdatedAt = now
	return nil
}

// Cancel moves the reservation to CANCELLED and stores reason as its observations.
func (r *Reservation) Cancel(reason string, now time.Time) error {
	if r.IsCancelled() {
		return WrapIllegalState("reservation %d is already cancelled", r.ID)
	}
	r.status = ReservationStatusCancelled
	r.Observations = reason
	r.UpdatedAt = now
	return nil
}

// UpdateObservations overwrites the free-text observations.
func (r *Reservation) UpdateObservations(text string, now time.Time) {
	r.Observations = text
	r.UpdatedAt = now
}

// IsConfirmed reports whether the reservation is CONFIRMED.
func (r *Reservation) IsConfirmed() bool { return r.status == ReservationStatusConfirmed }

// IsCancelled reports whether the reservation is CANCELLED.
func (r *Reservation) IsCancelled() bool { return r.status == ReservationStatusCancelled }

// IsPending reports whether the reservation is PENDING.
func (r *Reservation) IsPending() bool { return r.status == ReservationStatusPending }
