// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"strconv"
	"testing"
	"time"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// FixedNow is 15/10/2026 12:00:00 in Bogotá. Demo flights seeded at this
// instant depart on 16/10, 17/10 and 18/10.
var FixedNow = time.Date(2026, 10, 15, 17, 0, 0, 0, time.UTC)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustParseDisplay parses a dd/MM/yyyy HH:mm:ss string in the display time zone.
// It fails the test if parsing fails.
func MustParseDisplay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := timeutil.ParseDisplay(value)
	if err != nil {
		t.Fatalf("Failed to parse display time %s: %v", value, err)
	}
	return parsed
}

// FlightSpec describes a flight for NewFlight. Zero fields take defaults:
// BOG to MDE with Avianca, 90 minutes long, 250000 COP, ACTIVE, departing a
// day after FixedNow.
type FlightSpec struct {
	Number      domain.FlightNumber
	Origin      domain.Location
	Destination domain.Location
	Departure   time.Time
	Duration    time.Duration
	Seats       int
	Available   *int
	Price       string
	Airline     domain.Airline
	Status      domain.FlightStatus
}

// NewFlight builds an unsaved flight from spec.
// It fails the test if the flight violates an invariant.
func NewFlight(t *testing.T, spec FlightSpec) *domain.Flight {
	t.Helper()

	if spec.Number == "" {
		spec.Number = "AV999"
	}
	if spec.Origin == "" {
		spec.Origin = "BOG"
	}
	if spec.Destination == "" {
		spec.Destination = "MDE"
	}
	if spec.Departure.IsZero() {
		spec.Departure = FixedNow.Add(24 * time.Hour)
	}
	if spec.Duration == 0 {
		spec.Duration = 90 * time.Minute
	}
	if spec.Price == "" {
		spec.Price = "250000"
	}
	if spec.Airline == "" {
		spec.Airline = "Avianca"
	}
	if spec.Status == "" {
		spec.Status = domain.FlightStatusActive
	}
	available := spec.Seats
	if spec.Available != nil {
		available = *spec.Available
	}

	f, err := domain.NewFlight(domain.FlightParams{
		Number:         spec.Number,
		Origin:         spec.Origin,
		Destination:    spec.Destination,
		DepartureTime:  spec.Departure,
		ArrivalTime:    spec.Departure.Add(spec.Duration),
		AvailableSeats: available,
		TotalSeats:     spec.Seats,
		Price:          domain.MustPrice(spec.Price, "COP"),
		Airline:        spec.Airline,
		Status:         spec.Status,
		CreatedAt:      FixedNow,
		UpdatedAt:      FixedNow,
	})
	if err != nil {
		t.Fatalf("Failed to build flight %s: %v", spec.Number, err)
	}
	return f
}

// SeatLabels returns n distinct seat numbers: 1A..1F, 2A..2F and so on.
func SeatLabels(n int) []string {
	letters := "ABCDEF"
	out := make([]string, n)
	for i := range out {
		row := i/len(letters) + 1
		out[i] = strconv.Itoa(row) + string(letters[i%len(letters)])
	}
	return out
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}

// FloatPtr returns a pointer to a float64.
func FloatPtr(f float64) *float64 {
	return &f
}
