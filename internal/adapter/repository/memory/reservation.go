package memory

import (
	"context"
	"sort"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// ReservationRepository implements domain.ReservationRepository.
type ReservationRepository struct {
	store *Store
}

// FindByID returns a copy of the stored reservation.
func (r *ReservationRepository) FindByID(_ context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	res, ok := r.store.reservations[id]
	if !ok {
		return nil, domain.NewReservationNotFoundError(id)
	}
	return &res, nil
}

// FindByIDForUpdate is FindByID; units of work are already serialized by the store.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	return r.FindByID(ctx, id)
}

// Save assigns an ID and stores the reservation.
func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	defer r.store.lockWrite(ctx)()

	row := *reservation
	if row.ID == 0 {
		r.store.seq.reservation++
		row.ID = domain.ReservationID(r.store.seq.reservation)
	} else if int64(row.ID) > r.store.seq.reservation {
		r.store.seq.reservation = int64(row.ID)
	}
	r.store.reservations[row.ID] = row
	reservation.ID = row.ID
	return &row, nil
}

// Update overwrites an existing reservation.
func (r *ReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.reservations[reservation.ID]; !ok {
		return nil, domain.NewReservationNotFoundError(reservation.ID)
	}
	row := *reservation
	r.store.reservations[row.ID] = row
	return &row, nil
}

// DeleteByID removes the reservation.
func (r *ReservationRepository) DeleteByID(ctx context.Context, id domain.ReservationID) error {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.reservations[id]; !ok {
		return domain.NewReservationNotFoundError(id)
	}
	delete(r.store.reservations, id)
	return nil
}

// FindByUserID lists the user's reservations.
func (r *ReservationRepository) FindByUserID(_ context.Context, userID domain.UserID) ([]*domain.Reservation, error) {
	return r.collect(func(res *domain.Reservation) bool { return res.UserID == userID }), nil
}

// FindAll lists all reservations.
func (r *ReservationRepository) FindAll(_ context.Context) ([]*domain.Reservation, error) {
	return r.collect(func(*domain.Reservation) bool { return true }), nil
}

func (r *ReservationRepository) collect(match func(*domain.Reservation) bool) []*domain.Reservation {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Reservation, 0)
	for _, row := range r.store.reservations {
		res := row
		if match(&res) {
			result = append(result, &res)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

var _ domain.ReservationRepository = (*ReservationRepository)(nil)
