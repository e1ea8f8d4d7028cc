package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

func TestApplyFilters(t *testing.T) {
	// Departures at 10:00, 12:00 and 18:00 UTC.
	morning := routeFlight(t, 1, "Avianca", "250000", 2*time.Hour, 60, 10)
	noon := routeFlight(t, 2, "LATAM", "180000", 4*time.Hour, 75, 10)
	evening := routeFlight(t, 3, "Wingo", "120000", 10*time.Hour, 120, 10)
	flights := []*domain.Flight{morning, noon, evening}

	maxPrice := decimal.NewFromInt(200000)

	tests := []struct {
		name    string
		opts    *domain.FilterOptions
		wantIDs []domain.FlightID
	}{
		{name: "nil options return all", opts: nil, wantIDs: []domain.FlightID{1, 2, 3}},
		{name: "empty options return all", opts: &domain.FilterOptions{}, wantIDs: []domain.FlightID{1, 2, 3}},
		{name: "max price", opts: &domain.FilterOptions{MaxPrice: &maxPrice}, wantIDs: []domain.FlightID{2, 3}},
		{
			name:    "airlines are case-insensitive",
			opts:    &domain.FilterOptions{Airlines: []string{"AVIANCA", " wingo "}},
			wantIDs: []domain.FlightID{1, 3},
		},
		{
			name: "departure window",
			opts: &domain.FilterOptions{DepartureTimeRange: &domain.TimeRange{
				Start: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
				End:   time.Date(0, 1, 1, 12, 0, 0, 0, time.UTC),
			}},
			wantIDs: []domain.FlightID{1, 2},
		},
		{
			name:    "duration range",
			opts:    &domain.FilterOptions{DurationRange: &domain.DurationRange{MaxMinutes: ptr(80)}},
			wantIDs: []domain.FlightID{1, 2},
		},
		{
			name: "filters combine",
			opts: &domain.FilterOptions{
				MaxPrice:      &maxPrice,
				DurationRange: &domain.DurationRange{MinMinutes: ptr(100)},
			},
			wantIDs: []domain.FlightID{3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilters(flights, tt.opts)

			ids := make([]domain.FlightID, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Len(t, flights, 3, "input must not be modified")
		})
	}
}
