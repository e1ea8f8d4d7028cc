package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

const ticketColumns = `id, flight_id, user_id, passenger_name, seat_number, price::text, currency,
	class, status, created_at, updated_at`

// TicketRepository implements domain.TicketRepository. The active seat index
// rejects a second non-cancelled ticket for the same seat with a SeatTakenError.
type TicketRepository struct {
	store *Store
}

// FindByID selects one ticket row.
func (r *TicketRepository) FindByID(ctx context.Context, id domain.TicketID) (*domain.Ticket, error) {
	t, err := scanTicket(r.store.conn(ctx).QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id = $1`, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, id)
		}
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return t, nil
}

// Save inserts the ticket. A taken seat maps to ErrSeatAlreadyTaken.
func (r *TicketRepository) Save(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	const query = `
		INSERT INTO tickets (flight_id, user_id, passenger_name, seat_number, price, currency,
			class, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int64
	err := r.store.conn(ctx).QueryRow(ctx, query,
		int64(ticket.FlightID), int64(ticket.UserID), ticket.PassengerName, string(ticket.SeatNumber()),
		ticket.Price.Amount().String(), ticket.Price.Currency(),
		string(ticket.Class), string(ticket.Status()), ticket.CreatedAt, ticket.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewSeatTakenError(ticket.FlightID, ticket.SeatNumber())
		}
		return nil, fmt.Errorf("insert ticket: %w", err)
	}

	ticket.ID = domain.TicketID(id)
	return ticket, nil
}

// Update writes the ticket row.
func (r *TicketRepository) Update(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	const query = `
		UPDATE tickets SET passenger_name = $2, seat_number = $3, price = $4, currency = $5,
			class = $6, status = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.store.conn(ctx).Exec(ctx, query,
		int64(ticket.ID), ticket.PassengerName, string(ticket.SeatNumber()),
		ticket.Price.Amount().String(), ticket.Price.Currency(),
		string(ticket.Class), string(ticket.Status()), ticket.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewSeatTakenError(ticket.FlightID, ticket.SeatNumber())
		}
		return nil, fmt.Errorf("update ticket %d: %w", ticket.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, ticket.ID)
	}
	return ticket, nil
}

// DeleteByID deletes the ticket row.
func (r *TicketRepository) DeleteByID(ctx context.Context, id domain.TicketID) error {
	tag, err := r.store.conn(ctx).Exec(ctx, `DELETE FROM tickets WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete ticket %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, id)
	}
	return nil
}

// FindByUserID selects the user's tickets.
func (r *TicketRepository) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE user_id = $1 ORDER BY id`, int64(userID))
}

// FindByFlightID selects the tickets of a flight.
func (r *TicketRepository) FindByFlightID(ctx context.Context, flightID domain.FlightID) ([]*domain.Ticket, error) {
	return r.list(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE flight_id = $1 ORDER BY id`, int64(flightID))
}

// IsSeatTaken reports whether an active ticket holds the seat.
func (r *TicketRepository) IsSeatTaken(ctx context.Context, flightID domain.FlightID, seat domain.SeatNumber) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM tickets WHERE flight_id = $1 AND seat_number = $2 AND status <> 'CANCELLED'
		)`

	var taken bool
	if err := r.store.conn(ctx).QueryRow(ctx, query, int64(flightID), string(seat)).Scan(&taken); err != nil {
		return false, fmt.Errorf("check seat %s on flight %d: %w", seat, flightID, err)
	}
	return taken, nil
}

func (r *TicketRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Ticket, error) {
	rows, err := r.store.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]*domain.Ticket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}
	return tickets, nil
}

func scanTicket(row scanner) (*domain.Ticket, error) {
	var (
		id, flightID, userID int64
		passenger, seat      string
		amount, currency     string
		class, status        string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&id, &flightID, &userID, &passenger, &seat, &amount, &currency,
		&class, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(amount, currency)
	if err != nil {
		return nil, err
	}
	return domain.RestoreTicket(domain.TicketParams{
		ID:            domain.TicketID(id),
		FlightID:      domain.FlightID(flightID),
		UserID:        domain.UserID(userID),
		PassengerName: passenger,
		SeatNumber:    domain.SeatNumber(seat),
		Price:         price,
		Class:         domain.TicketClass(class),
		Status:        domain.TicketStatus(status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}), nil
}

var _ domain.TicketRepository = (*TicketRepository)(nil)
