package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

const reservationColumns = `id, user_id, ticket_id, flight_id, status, observations,
	reservation_date, created_at, updated_at`

// ReservationRepository implements domain.ReservationRepository.
type ReservationRepository struct {
	store *Store
}

// FindByID returns the reservation with id.
func (r *ReservationRepository) FindByID(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	return r.findOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

// FindByIDForUpdate locks the reservation row until the surrounding transaction ends.
func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	return r.findOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
}

func (r *ReservationRepository) findOne(ctx context.Context, query string, id domain.ReservationID) (*domain.Reservation, error) {
	res, err := scanReservation(r.store.conn(ctx).QueryRow(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewReservationNotFoundError(id)
		}
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return res, nil
}

// Save inserts the reservation and sets its generated ID.
func (r *ReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	const query = `
		INSERT INTO reservations (user_id, ticket_id, flight_id, status, observations,
			reservation_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.store.conn(ctx).QueryRow(ctx, query,
		int64(reservation.UserID), int64(reservation.TicketID), int64(reservation.FlightID),
		string(reservation.Status()), reservation.Observations,
		reservation.ReservationDate, reservation.CreatedAt, reservation.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	reservation.ID = domain.ReservationID(id)
	return reservation, nil
}

// Update writes the reservation status and observations.
func (r *ReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	const query = `
		UPDATE reservations SET status = $2, observations = $3, updated_at = $4
		WHERE id = $1`

	tag, err := r.store.conn(ctx).Exec(ctx, query,
		int64(reservation.ID), string(reservation.Status()), reservation.Observations, reservation.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update reservation %d: %w", reservation.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewReservationNotFoundError(reservation.ID)
	}
	return reservation, nil
}

// DeleteByID deletes the reservation row.
func (r *ReservationRepository) DeleteByID(ctx context.Context, id domain.ReservationID) error {
	tag, err := r.store.conn(ctx).Exec(ctx, `DELETE FROM reservations WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewReservationNotFoundError(id)
	}
	return nil
}

// FindByUserID selects the user's reservations.
func (r *ReservationRepository) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE user_id = $1 ORDER BY id`, int64(userID))
}

// FindAll selects every reservation.
func (r *ReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	return r.list(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY id`)
}

func (r *ReservationRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	rows, err := r.store.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	return reservations, nil
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		id, userID, ticketID, flightID   int64
		status, observations             string
		reservedAt, createdAt, updatedAt time.Time
	)
	err := row.Scan(&id, &userID, &ticketID, &flightID, &status, &observations, &reservedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	return domain.RestoreReservation(domain.ReservationParams{
		ID:              domain.ReservationID(id),
		UserID:          domain.UserID(userID),
		TicketID:        domain.TicketID(ticketID),
		FlightID:        domain.FlightID(flightID),
		Status:          domain.ReservationStatus(status),
		Observations:    observations,
		ReservationDate: reservedAt,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}), nil
}

var _ domain.ReservationRepository = (*ReservationRepository)(nil)
