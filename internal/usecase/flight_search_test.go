package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// routeFlight builds a BOG-MDE flight with the given id, departure offset from fixedNow and seats.
func routeFlight(t *testing.T, id int64, airline string, price string, departIn time.Duration, durationMin, seats int) *domain.Flight {
	t.Helper()
	dep := fixedNow.Add(departIn)
	f, err := domain.NewFlight(domain.FlightParams{
		ID:             domain.FlightID(id),
		Number:         domain.FlightNumber(fmt.Sprintf("AV%03d", id)),
		Origin:         "BOG",
		Destination:    "MDE",
		DepartureTime:  dep,
		ArrivalTime:    dep.Add(time.Duration(durationMin) * time.Minute),
		AvailableSeats: seats,
		TotalSeats:     50,
		Price:          domain.MustPrice(price, "COP"),
		Airline:        domain.Airline(airline),
		Status:         domain.FlightStatusActive,
	})
	require.NoError(t, err)
	return f
}

func newSearchUseCase(flights domain.FlightRepository) FlightSearchUseCase {
	return NewFlightSearchUseCase(flights, &Config{Clock: timeutil.NewMockClock(fixedNow)})
}

func TestFlightSearch_Search(t *testing.T) {
	departed := routeFlight(t, 3, "Avianca", "200000", -time.Hour, 60, 10)
	soldOut := routeFlight(t, 4, "Avianca", "200000", 5*time.Hour, 60, 0)
	few := routeFlight(t, 5, "LATAM", "180000", 6*time.Hour, 70, 2)
	many := routeFlight(t, 6, "Avianca", "250000", 2*time.Hour, 60, 40)

	tests := []struct {
		name    string
		query   SearchFlightsQuery
		repo    []*domain.Flight
		wantIDs []domain.FlightID
	}{
		{
			name:    "drops departed and sold out flights",
			query:   SearchFlightsQuery{Origin: "BOG", Destination: "MDE"},
			repo:    []*domain.Flight{departed, soldOut, few, many},
			wantIDs: []domain.FlightID{6, 5},
		},
		{
			name:    "passenger count filters small inventory",
			query:   SearchFlightsQuery{Origin: "BOG", Destination: "MDE", Passengers: ptr(3)},
			repo:    []*domain.Flight{few, many},
			wantIDs: []domain.FlightID{6},
		},
		{
			name:    "party larger than any flight returns empty",
			query:   SearchFlightsQuery{Origin: "BOG", Destination: "MDE", Passengers: ptr(100)},
			repo:    []*domain.Flight{few, many},
			wantIDs: []domain.FlightID{},
		},
		{
			name:    "sort by price",
			query:   SearchFlightsQuery{Origin: "BOG", Destination: "MDE", SortBy: domain.SortByPrice},
			repo:    []*domain.Flight{many, few},
			wantIDs: []domain.FlightID{5, 6},
		},
		{
			name: "airline filter",
			query: SearchFlightsQuery{
				Origin: "BOG", Destination: "MDE",
				Filters: &domain.FilterOptions{Airlines: []string{"latam"}},
			},
			repo:    []*domain.Flight{many, few},
			wantIDs: []domain.FlightID{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockFlightRepository(ctrl)
			repo.EXPECT().Search(gomock.Any(), domain.Location("BOG"), domain.Location("MDE"), tt.query.DepartureDate).
				Return(tt.repo, nil)

			got, err := newSearchUseCase(repo).Search(context.Background(), tt.query)

			require.NoError(t, err)
			ids := make([]domain.FlightID, 0, len(got))
			for _, f := range got {
				ids = append(ids, f.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFlightSearch_PassesDateAndTrimmedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockFlightRepository(ctrl)
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo.EXPECT().Search(gomock.Any(), domain.Location("BOG"), domain.Location("CTG"), &day).Return(nil, nil)

	got, err := newSearchUseCase(repo).Search(context.Background(), SearchFlightsQuery{
		Origin:        "  BOG ",
		Destination:   "CTG",
		DepartureDate: &day,
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFlightSearch_Validation(t *testing.T) {
	negative := decimal.NewFromInt(-1)
	tests := []struct {
		name  string
		query SearchFlightsQuery
	}{
		{name: "missing origin", query: SearchFlightsQuery{Destination: "MDE"}},
		{name: "missing destination", query: SearchFlightsQuery{Origin: "BOG", Destination: " "}},
		{name: "zero passengers", query: SearchFlightsQuery{Origin: "BOG", Destination: "MDE", Passengers: ptr(0)}},
		{name: "negative max price", query: SearchFlightsQuery{
			Origin: "BOG", Destination: "MDE",
			Filters: &domain.FilterOptions{MaxPrice: &negative},
		}},
		{name: "inverted duration range", query: SearchFlightsQuery{
			Origin: "BOG", Destination: "MDE",
			Filters: &domain.FilterOptions{DurationRange: &domain.DurationRange{MinMinutes: ptr(90), MaxMinutes: ptr(30)}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := domain.NewMockFlightRepository(ctrl)

			_, err := newSearchUseCase(repo).Search(context.Background(), tt.query)

			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestFlightSearch_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := domain.NewMockFlightRepository(ctrl)
	dbErr := errors.New("db unavailable")
	repo.EXPECT().Search(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := newSearchUseCase(repo).Search(context.Background(), SearchFlightsQuery{Origin: "BOG", Destination: "MDE"})

	assert.ErrorIs(t, err, dbErr)
}
