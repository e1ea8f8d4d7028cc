package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// FlightRepository implements domain.FlightRepository.
type FlightRepository struct {
	store *Store
}

// FindByID returns a copy of the flight with the given ID.
func (r *FlightRepository) FindByID(_ context.Context, id domain.FlightID) (*domain.Flight, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	f, ok := r.store.flights[id]
	if !ok {
		return nil, domain.NewFlightNotFoundError(id)
	}
	return &f, nil
}

// FindByIDForUpdate is FindByID; units of work are already serialized by the store.
func (r *FlightRepository) FindByIDForUpdate(ctx context.Context, id domain.FlightID) (*domain.Flight, error) {
	return r.FindByID(ctx, id)
}

// Save assigns the next flight ID and stores a copy of flight.
func (r *FlightRepository) Save(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	defer r.store.lockWrite(ctx)()

	row := *flight
	if row.ID == 0 {
		r.store.seq.flight++
		row.ID = domain.FlightID(r.store.seq.flight)
	} else if int64(row.ID) > r.store.seq.flight {
		r.store.seq.flight = int64(row.ID)
	}
	r.store.flights[row.ID] = row
	flight.ID = row.ID
	return &row, nil
}

// Update replaces the stored flight.
func (r *FlightRepository) Update(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.flights[flight.ID]; !ok {
		return nil, domain.NewFlightNotFoundError(flight.ID)
	}
	row := *flight
	r.store.flights[row.ID] = row
	return &row, nil
}

// DeleteByID removes the flight.
func (r *FlightRepository) DeleteByID(ctx context.Context, id domain.FlightID) error {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.flights[id]; !ok {
		return domain.NewFlightNotFoundError(id)
	}
	delete(r.store.flights, id)
	return nil
}

// FindAll returns every flight ordered by departure time.
func (r *FlightRepository) FindAll(_ context.Context) ([]*domain.Flight, error) {
	return r.collect(func(*domain.Flight) bool { return true }), nil
}

// Search matches origin and destination case-insensitively. When date is set,
// only flights departing on that calendar day (in date's location) are returned.
func (r *FlightRepository) Search(_ context.Context, origin, destination domain.Location, date *time.Time) ([]*domain.Flight, error) {
	var start, end time.Time
	if date != nil {
		start, end = timeutil.DayBounds(*date)
	}

	return r.collect(func(f *domain.Flight) bool {
		if !strings.EqualFold(f.Origin.String(), origin.String()) ||
			!strings.EqualFold(f.Destination.String(), destination.String()) {
			return false
		}
		if date != nil && (f.DepartureTime.Before(start) || !f.DepartureTime.Before(end)) {
			return false
		}
		return true
	}), nil
}

// collect returns copies of the matching flights ordered by departure time, then id.
func (r *FlightRepository) collect(match func(*domain.Flight) bool) []*domain.Flight {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Flight, 0, len(r.store.flights))
	for _, row := range r.store.flights {
		f := row
		if match(&f) {
			result = append(result, &f)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].DepartureTime.Equal(result[j].DepartureTime) {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

var _ domain.FlightRepository = (*FlightRepository)(nil)
