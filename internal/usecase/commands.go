package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// BookTicketCommand requests a single seat on a flight.
type BookTicketCommand struct {
	UserID        int64
	FlightID      int64
	PassengerName string
	SeatNumber    string
	TicketClass   string
	Observations  string
}

// Validate checks required fields.
func (c BookTicketCommand) Validate() error {
	if c.UserID <= 0 {
		return domain.NewValidationError("userId", "must be positive")
	}
	if c.FlightID <= 0 {
		return domain.NewValidationError("flightId", "must be positive")
	}
	if strings.TrimSpace(c.PassengerName) == "" {
		return domain.NewValidationError("passengerName", "is required")
	}
	if strings.TrimSpace(c.SeatNumber) == "" {
		return domain.NewValidationError("seatNumber", "is required")
	}
	if strings.TrimSpace(c.TicketClass) == "" {
		return domain.NewValidationError("ticketClass", "is required")
	}
	return validateObservationsLength("observations", c.Observations)
}

// CancelReservationCommand cancels a reservation with an optional reason.
type CancelReservationCommand struct {
	ReservationID int64
	Reason        string
}

// Validate checks required fields.
func (c CancelReservationCommand) Validate() error {
	if c.ReservationID <= 0 {
		return domain.NewValidationError("reservationId", "must be positive")
	}
	return validateObservationsLength("reason", c.Reason)
}

// UpdateReservationCommand changes the seat and/or observations of a reservation.
// A blank SeatNumber leaves the seat as it is; a nil Observations leaves the
// observations as they are, while a pointer to "" clears them.
type UpdateReservationCommand struct {
	ReservationID int64
	SeatNumber    string
	Observations  *string
}

// Validate checks required fields.
func (c UpdateReservationCommand) Validate() error {
	if c.ReservationID <= 0 {
		return domain.NewValidationError("reservationId", "must be positive")
	}
	if c.Observations != nil {
		return validateObservationsLength("observations", *c.Observations)
	}
	return nil
}

// SearchFlightsQuery filters flights by route and optionally by day and party size.
// Filters and SortBy refine the result list after bookability is checked.
type SearchFlightsQuery struct {
	Origin        string
	Destination   string
	DepartureDate *time.Time
	Passengers    *int
	Filters       *domain.FilterOptions
	SortBy        domain.SortOption
}

// Validate checks required fields.
func (q SearchFlightsQuery) Validate() error {
	if strings.TrimSpace(q.Origin) == "" {
		return domain.NewValidationError("origin", "is required")
	}
	if strings.TrimSpace(q.Destination) == "" {
		return domain.NewValidationError("destination", "is required")
	}
	if q.Passengers != nil && *q.Passengers < 1 {
		return domain.NewValidationError("passengers", "must be at least 1")
	}
	if q.Filters != nil {
		if q.Filters.MaxPrice != nil && q.Filters.MaxPrice.IsNegative() {
			return domain.NewValidationError("maxPrice", "must not be negative")
		}
		if !q.Filters.DurationRange.IsValid() {
			return domain.NewValidationError("durationRange", "is invalid")
		}
	}
	return nil
}

// AuthenticateCommand carries login credentials.
type AuthenticateCommand struct {
	Username string
	Password string
}

// Validate checks required fields.
func (c AuthenticateCommand) Validate() error {
	if strings.TrimSpace(c.Username) == "" {
		return domain.NewValidationError("username", "is required")
	}
	if strings.TrimSpace(c.Password) == "" {
		return domain.NewValidationError("password", "is required")
	}
	return nil
}

// validateObservationsLength rejects text that does not fit in the reservation observations.
func validateObservationsLength(field, text string) error {
	if utf8.RuneCountInString(text) > domain.MaxObservationsLength {
		return domain.NewValidationError(field, fmt.Sprintf("cannot exceed %d characters", domain.MaxObservationsLength))
	}
	return nil
}
