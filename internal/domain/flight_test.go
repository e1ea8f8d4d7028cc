package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// newTestFlight builds the AV101 BOG-MDE flight used across the domain tests.
func newTestFlight(t *testing.T, available, total int, status FlightStatus, departure time.Time) *Flight {
	t.Helper()
	f, err := NewFlight(FlightParams{
		ID:             1,
		Number:         "AV101",
		Origin:         "BOG",
		Destination:    "MDE",
		DepartureTime:  departure,
		ArrivalTime:    departure.Add(90 * time.Minute),
		AvailableSeats: available,
		TotalSeats:     total,
		Price:          MustPrice("250000", "COP"),
		Airline:        "Avianca",
		Status:         status,
	})
	require.NoError(t, err)
	return f
}

func TestNewFlight(t *testing.T) {
	tests := []struct {
		name      string
		available int
		total     int
		wantErr   bool
	}{
		{name: "full flight", available: 50, total: 50},
		{name: "empty inventory", available: 0, total: 50},
		{name: "no capacity", available: 0, total: 0},
		{name: "available exceeds total", available: 51, total: 50, wantErr: true},
		{name: "negative available", available: -1, total: 50, wantErr: true},
		{name: "negative total", available: 0, total: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFlight(FlightParams{
				Number:         "AV101",
				AvailableSeats: tt.available,
				TotalSeats:     tt.total,
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.available, f.AvailableSeats())
			assert.Equal(t, tt.total, f.TotalSeats())
			assert.Equal(t, FlightStatusActive, f.Status, "status defaults to ACTIVE")
		})
	}
}

func TestNewFlight_ArrivalBeforeDeparture(t *testing.T) {
	_, err := NewFlight(FlightParams{
		DepartureTime: testNow,
		ArrivalTime:   testNow.Add(-time.Hour),
		TotalSeats:    10,
	})
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestFlight_HasAvailableSeats(t *testing.T) {
	f := newTestFlight(t, 3, 50, FlightStatusActive, testNow.Add(24*time.Hour))

	assert.True(t, f.HasAvailableSeats(1))
	assert.True(t, f.HasAvailableSeats(3))
	assert.False(t, f.HasAvailableSeats(4))
}

func TestFlight_ReserveSeats(t *testing.T) {
	tests := []struct {
		name          string
		available     int
		quantity      int
		wantErr       error
		wantAvailable int
	}{
		{name: "single seat", available: 50, quantity: 1, wantAvailable: 49},
		{name: "last seat", available: 1, quantity: 1, wantAvailable: 0},
		{name: "several seats", available: 10, quantity: 4, wantAvailable: 6},
		{name: "not enough seats", available: 2, quantity: 3, wantErr: ErrNoSeatsAvailable, wantAvailable: 2},
		{name: "sold out", available: 0, quantity: 1, wantErr: ErrNoSeatsAvailable, wantAvailable: 0},
		{name: "zero quantity", available: 5, quantity: 0, wantErr: ErrInvalidArgument, wantAvailable: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlight(t, tt.available, 50, FlightStatusActive, testNow.Add(time.Hour))

			err := f.ReserveSeats(tt.quantity)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAvailable, f.AvailableSeats())
			assert.GreaterOrEqual(t, f.AvailableSeats(), 0)
		})
	}
}

func TestFlight_ReleaseSeats(t *testing.T) {
	tests := []struct {
		name          string
		available     int
		quantity      int
		wantErr       error
		wantAvailable int
	}{
		{name: "release one", available: 49, quantity: 1, wantAvailable: 50},
		{name: "release several", available: 10, quantity: 5, wantAvailable: 15},
		{name: "exceeds capacity", available: 50, quantity: 1, wantErr: ErrIllegalState, wantAvailable: 50},
		{name: "negative quantity", available: 10, quantity: -1, wantErr: ErrInvalidArgument, wantAvailable: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlight(t, tt.available, 50, FlightStatusActive, testNow.Add(time.Hour))

			err := f.ReleaseSeats(tt.quantity)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAvailable, f.AvailableSeats())
			assert.LessOrEqual(t, f.AvailableSeats(), f.TotalSeats())
		})
	}
}

func TestFlight_IsBookable(t *testing.T) {
	tests := []struct {
		name      string
		status    FlightStatus
		departure time.Time
		available int
		want      bool
	}{
		{name: "active future with seats", status: FlightStatusActive, departure: testNow.Add(24 * time.Hour), available: 50, want: true},
		{name: "cancelled", status: FlightStatusCancelled, departure: testNow.Add(24 * time.Hour), available: 50, want: false},
		{name: "delayed", status: FlightStatusDelayed, departure: testNow.Add(24 * time.Hour), available: 50, want: false},
		{name: "departs exactly now", status: FlightStatusActive, departure: testNow, available: 50, want: false},
		{name: "already departed", status: FlightStatusActive, departure: testNow.Add(-time.Minute), available: 50, want: false},
		{name: "sold out", status: FlightStatusActive, departure: testNow.Add(24 * time.Hour), available: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFlight(t, tt.available, 50, tt.status, tt.departure)
			assert.Equal(t, tt.want, f.IsBookable(testNow))
		})
	}
}

func TestFlight_OccupancyRate(t *testing.T) {
	assert.InDelta(t, 0.0, newTestFlight(t, 50, 50, FlightStatusActive, testNow).OccupancyRate(), 0.001)
	assert.InDelta(t, 50.0, newTestFlight(t, 25, 50, FlightStatusActive, testNow).OccupancyRate(), 0.001)
	assert.InDelta(t, 100.0, newTestFlight(t, 0, 50, FlightStatusActive, testNow).OccupancyRate(), 0.001)
	assert.InDelta(t, 0.0, newTestFlight(t, 0, 0, FlightStatusActive, testNow).OccupancyRate(), 0.001)
}
