// Package domain contains the core business entities and rules for airline ticket booking.
// Entities own their state transitions; persistence and transport live in the adapter packages.
package domain

import (
	"fmt"
	"time"
)

// Flight is a scheduled flight together with its seat inventory.
// Seat counts are only changed through ReserveSeats and ReleaseSeats.
type Flight struct {
	// ID is zero until the flight has been persisted
	ID FlightID

	// Number is the commercial flight number (e.g., "AV101")
	Number FlightNumber

	// Origin and Destination are normalized airport codes (e.g., "BOG")
	Origin      Location
	Destination Location

	DepartureTime time.Time
	ArrivalTime   time.Time

	// Price is the base economy fare
	Price Price

	Airline Airline
	Status  FlightStatus

	CreatedAt time.Time
	UpdatedAt time.Time

	availableSeats int
	totalSeats     int
}

// FlightParams holds the values used to construct a Flight.
type FlightParams struct {
	ID             FlightID
	Number         FlightNumber
	Origin         Location
	Destination    Location
	DepartureTime  time.Time
	ArrivalTime    time.Time
	AvailableSeats int
	TotalSeats     int
	Price          Price
	Airline        Airline
	Status         FlightStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewFlight builds a Flight and checks the seat inventory invariants.
// An empty status defaults to ACTIVE.
func NewFlight(p FlightParams) (*Flight, error) {
	if p.TotalSeats < 0 {
		return nil, NewValidationError("totalSeats", "cannot be negative")
	}
	if p.AvailableSeats < 0 {
		return nil, NewValidationError("availableSeats", "cannot be negative")
	}
	if p.AvailableSeats > p.TotalSeats {
		return nil, NewValidationError("availableSeats", "cannot exceed total seats")
	}
	if !p.ArrivalTime.IsZero() && p.ArrivalTime.Before(p.DepartureTime) {
		return nil, NewValidationError("arrivalTime", "cannot be before departure time")
	}
	status := p.Status
	if status == "" {
		status = FlightStatusActive
	}

	return &Flight{
		ID:             p.ID,
		Number:         p.Number,
		Origin:         p.Origin,
		Destination:    p.Destination,
		DepartureTime:  p.DepartureTime,
		ArrivalTime:    p.ArrivalTime,
		Price:          p.Price,
		Airline:        p.Airline,
		Status:         status,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		availableSeats: p.AvailableSeats,
		totalSeats:     p.TotalSeats,
	}, nil
}

// AvailableSeats returns the number of seats that can still be sold.
func (f *Flight) AvailableSeats() int { return f.availableSeats }

// TotalSeats returns the cabin capacity.
func (f *Flight) TotalSeats() int { return f.totalSeats }

// HasAvailableSeats reports whether at least requested seats remain.
func (f *Flight) HasAvailableSeats(requested int) bool {
	return f.availableSeats >= requested
}

// ReserveSeats takes quantity seats out of inventory.
// On failure the inventory is left unchanged.
func (f *Flight) ReserveSeats(quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if !f.HasAvailableSeats(quantity) {
		return fmt.Errorf("%w: flight %s has %d seats left, %d requested",
			ErrNoSeatsAvailable, f.Number, f.availableSeats, quantity)
	}
	f.availableSeats -= quantity
	return nil
}

// ReleaseSeats returns quantity seats to inventory.
// Releasing beyond capacity means a caller released a seat it never reserved.
func (f *Flight) ReleaseSeats(quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if f.availableSeats+quantity > f.totalSeats {
		return WrapIllegalState("releasing %d seats on flight %s would exceed capacity %d",
			quantity, f.Number, f.totalSeats)
	}
	f.availableSeats += quantity
	return nil
}

// IsActive reports whether the flight status is ACTIVE.
func (f *Flight) IsActive() bool {
	return f.Status == FlightStatusActive
}

// IsBookable reports whether the flight can accept a new booking at now:
// it is active, departs strictly after now and has at least one seat left.
func (f *Flight) IsBookable(now time.Time) bool {
	return f.IsActive() && f.DepartureTime.After(now) && f.HasAvailableSeats(1)
}

// OccupancyRate returns the percentage of sold seats, or 0 for a flight without capacity.
func (f *Flight) OccupancyRate() float64 {
	if f.totalSeats == 0 {
		return 0
	}
	return float64(f.totalSeats-f.availableSeats) / float64(f.totalSeats) * 100
}

// DurationMinutes returns the scheduled flight time in minutes, or 0 when no arrival is set.
func (f *Flight) DurationMinutes() int {
	if f.ArrivalTime.IsZero() {
		return 0
	}
	return int(f.ArrivalTime.Sub(f.DepartureTime).Minutes())
}
