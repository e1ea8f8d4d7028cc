package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search returns the bookable flights for a route. When the query carries a
	// passenger count, flights without that many free seats are left out.
	// Results are filtered by query.Filters and ordered by query.SortBy.
	Search(ctx context.Context, query SearchFlightsQuery) ([]*domain.Flight, error)
}

type flightSearchUseCase struct {
	flights domain.FlightRepository
	clock   timeutil.Clock
}

// NewFlightSearchUseCase creates a FlightSearchUseCase.
func NewFlightSearchUseCase(flights domain.FlightRepository, config *Config) FlightSearchUseCase {
	cfg := resolveConfig(config)
	return &flightSearchUseCase{
		flights: flights,
		clock:   cfg.Clock,
	}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, query SearchFlightsQuery) ([]*domain.Flight, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	origin := domain.Location(strings.TrimSpace(query.Origin))
	destination := domain.Location(strings.TrimSpace(query.Destination))

	candidates, err := uc.flights.Search(ctx, origin, destination, query.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("search flights %s-%s: %w", origin, destination, err)
	}

	now := uc.clock.Now()
	results := make([]*domain.Flight, 0, len(candidates))
	for _, f := range candidates {
		if !f.IsBookable(now) {
			continue
		}
		if query.Passengers != nil && !f.HasAvailableSeats(*query.Passengers) {
			continue
		}
		results = append(results, f)
	}
	results = SortFlights(ApplyFilters(results, query.Filters), query.SortBy)

	zerolog.Ctx(ctx).Debug().
		Str("origin", origin.String()).
		Str("destination", destination.String()).
		Int("candidates", len(candidates)).
		Int("results", len(results)).
		Msg("Flight search completed")

	return results, nil
}
