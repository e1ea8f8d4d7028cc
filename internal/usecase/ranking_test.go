package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

func flightIDs(flights []*domain.Flight) []domain.FlightID {
	ids := make([]domain.FlightID, 0, len(flights))
	for _, f := range flights {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestSortFlights(t *testing.T) {
	cheapSlow := routeFlight(t, 1, "Wingo", "120000", 6*time.Hour, 150, 5)
	pricyFast := routeFlight(t, 2, "Avianca", "300000", 2*time.Hour, 55, 30)
	middle := routeFlight(t, 3, "LATAM", "180000", 4*time.Hour, 60, 12)
	flights := []*domain.Flight{cheapSlow, pricyFast, middle}

	tests := []struct {
		name    string
		sortBy  domain.SortOption
		wantIDs []domain.FlightID
	}{
		{name: "departure", sortBy: domain.SortByDeparture, wantIDs: []domain.FlightID{2, 3, 1}},
		{name: "unknown falls back to departure", sortBy: domain.SortOption("random"), wantIDs: []domain.FlightID{2, 3, 1}},
		{name: "price", sortBy: domain.SortByPrice, wantIDs: []domain.FlightID{1, 3, 2}},
		{name: "duration", sortBy: domain.SortByDuration, wantIDs: []domain.FlightID{2, 3, 1}},
		{name: "seats descending", sortBy: domain.SortBySeats, wantIDs: []domain.FlightID{2, 3, 1}},
		{name: "best value", sortBy: domain.SortByBestValue, wantIDs: []domain.FlightID{3, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortFlights(flights, tt.sortBy)

			assert.Equal(t, tt.wantIDs, flightIDs(got))
			assert.Equal(t, []domain.FlightID{1, 2, 3}, flightIDs(flights), "input must not be reordered")
		})
	}
}

func TestSortFlights_StableForTies(t *testing.T) {
	a := routeFlight(t, 1, "Avianca", "200000", 2*time.Hour, 60, 10)
	b := routeFlight(t, 2, "Avianca", "200000", 3*time.Hour, 60, 10)

	got := SortFlights([]*domain.Flight{b, a}, domain.SortByPrice)

	assert.Equal(t, []domain.FlightID{2, 1}, flightIDs(got))
}

func TestSortFlights_Small(t *testing.T) {
	assert.Empty(t, SortFlights(nil, domain.SortByPrice))

	single := routeFlight(t, 1, "Avianca", "200000", time.Hour, 60, 10)
	assert.Equal(t, []domain.FlightID{1}, flightIDs(SortFlights([]*domain.Flight{single}, domain.SortByBestValue)))
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.0, normalizeValue(5, 5, 5))
	assert.Equal(t, 0.5, normalizeValue(15, 10, 20))
	assert.Equal(t, 1.0, normalizeValue(20, 10, 20))
}
