package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

const flightColumns = `id, number, origin, destination, departure_time, arrival_time,
	available_seats, total_seats, price::text, currency, airline, status, created_at, updated_at`

// FlightRepository implements domain.FlightRepository.
type FlightRepository struct {
	store *Store
}

// FindByID selects one flight row.
func (r *FlightRepository) FindByID(ctx context.Context, id domain.FlightID) (*domain.Flight, error) {
	return r.findOne(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1`, id)
}

// FindByIDForUpdate locks the flight row until the surrounding transaction ends.
func (r *FlightRepository) FindByIDForUpdate(ctx context.Context, id domain.FlightID) (*domain.Flight, error) {
	return r.findOne(ctx, `SELECT `+flightColumns+` FROM flights WHERE id = $1 FOR UPDATE`, id)
}

func (r *FlightRepository) findOne(ctx context.Context, query string, id domain.FlightID) (*domain.Flight, error) {
	f, err := scanFlight(r.store.conn(ctx).QueryRow(ctx, query, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewFlightNotFoundError(id)
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return f, nil
}

// Save inserts the flight and sets its generated ID.
func (r *FlightRepository) Save(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	const query = `
		INSERT INTO flights (number, origin, destination, departure_time, arrival_time,
			available_seats, total_seats, price, currency, airline, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	err := r.store.conn(ctx).QueryRow(ctx, query,
		string(flight.Number), string(flight.Origin), string(flight.Destination),
		flight.DepartureTime, flight.ArrivalTime,
		flight.AvailableSeats(), flight.TotalSeats(),
		flight.Price.Amount().String(), flight.Price.Currency(),
		string(flight.Airline), string(flight.Status),
		flight.CreatedAt, flight.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("insert flight %s: %w", flight.Number, err)
	}

	flight.ID = domain.FlightID(id)
	return flight, nil
}

// Update writes every mutable flight column.
func (r *FlightRepository) Update(ctx context.Context, flight *domain.Flight) (*domain.Flight, error) {
	const query = `
		UPDATE flights SET number = $2, origin = $3, destination = $4, departure_time = $5,
			arrival_time = $6, available_seats = $7, total_seats = $8, price = $9, currency = $10,
			airline = $11, status = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.store.conn(ctx).Exec(ctx, query,
		int64(flight.ID), string(flight.Number), string(flight.Origin), string(flight.Destination),
		flight.DepartureTime, flight.ArrivalTime,
		flight.AvailableSeats(), flight.TotalSeats(),
		flight.Price.Amount().String(), flight.Price.Currency(),
		string(flight.Airline), string(flight.Status), flight.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update flight %d: %w", flight.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.NewFlightNotFoundError(flight.ID)
	}
	return flight, nil
}

// DeleteByID deletes the flight row.
func (r *FlightRepository) DeleteByID(ctx context.Context, id domain.FlightID) error {
	tag, err := r.store.conn(ctx).Exec(ctx, `DELETE FROM flights WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete flight %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewFlightNotFoundError(id)
	}
	return nil
}

// FindAll selects all flights ordered by departure time.
func (r *FlightRepository) FindAll(ctx context.Context) ([]*domain.Flight, error) {
	return r.list(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_time, id`)
}

// Search matches origin and destination case-insensitively. A date restricts
// results to departures within that calendar day of the date's location.
func (r *FlightRepository) Search(ctx context.Context, origin, destination domain.Location, date *time.Time) ([]*domain.Flight, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + flightColumns + ` FROM flights WHERE upper(origin) = upper($1) AND upper(destination) = upper($2)`)
	args := []any{string(origin), string(destination)}

	if date != nil {
		start, end := timeutil.DayBounds(*date)
		sb.WriteString(` AND departure_time >= $3 AND departure_time < $4`)
		args = append(args, start, end)
	}
	sb.WriteString(` ORDER BY departure_time, id`)

	return r.list(ctx, sb.String(), args...)
}

func (r *FlightRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Flight, error) {
	rows, err := r.store.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query flights: %w", err)
	}
	defer rows.Close()

	flights := make([]*domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flights: %w", err)
	}
	return flights, nil
}

func scanFlight(row scanner) (*domain.Flight, error) {
	var (
		id                                   int64
		number, origin, destination, airline string
		amount, currency, status             string
		available, total                     int
		departure, arrival                   time.Time
		createdAt, updatedAt                 time.Time
	)
	err := row.Scan(
		&id, &number, &origin, &destination, &departure, &arrival,
		&available, &total, &amount, &currency, &airline, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(amount, currency)
	if err != nil {
		return nil, err
	}
	return domain.NewFlight(domain.FlightParams{
		ID:             domain.FlightID(id),
		Number:         domain.FlightNumber(number),
		Origin:         domain.Location(origin),
		Destination:    domain.Location(destination),
		DepartureTime:  departure,
		ArrivalTime:    arrival,
		AvailableSeats: available,
		TotalSeats:     total,
		Price:          price,
		Airline:        domain.Airline(airline),
		Status:         domain.FlightStatus(status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	})
}

var _ domain.FlightRepository = (*FlightRepository)(nil)
