package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// TicketRepository implements domain.TicketRepository.
// Like the Postgres seat index, it refuses a second active ticket for the same flight seat.
type TicketRepository struct {
	store *Store
}

// FindByID returns a copy of the ticket.
func (r *TicketRepository) FindByID(_ context.Context, id domain.TicketID) (*domain.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.tickets[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, id)
	}
	return &t, nil
}

// Save stores a new ticket. The seat must be free on its flight.
func (r *TicketRepository) Save(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	defer r.store.lockWrite(ctx)()

	row := *ticket
	if err := r.checkSeatLocked(&row); err != nil {
		return nil, err
	}
	if row.ID == 0 {
		r.store.seq.ticket++
		row.ID = domain.TicketID(r.store.seq.ticket)
	} else if int64(row.ID) > r.store.seq.ticket {
		r.store.seq.ticket = int64(row.ID)
	}
	r.store.tickets[row.ID] = row
	ticket.ID = row.ID
	return &row, nil
}

// Update overwrites the ticket, keeping seats unique per flight.
func (r *TicketRepository) Update(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.tickets[ticket.ID]; !ok {
		return nil, fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, ticket.ID)
	}
	row := *ticket
	if err := r.checkSeatLocked(&row); err != nil {
		return nil, err
	}
	r.store.tickets[row.ID] = row
	return &row, nil
}

// checkSeatLocked fails when another active ticket holds t's seat. Callers hold store.mu.
func (r *TicketRepository) checkSeatLocked(t *domain.Ticket) error {
	if t.IsCancelled() {
		return nil
	}
	for id, other := range r.store.tickets {
		if id != t.ID && other.FlightID == t.FlightID && other.SeatNumber() == t.SeatNumber() && !other.IsCancelled() {
			return domain.NewSeatTakenError(t.FlightID, t.SeatNumber())
		}
	}
	return nil
}

// DeleteByID removes the ticket.
func (r *TicketRepository) DeleteByID(ctx context.Context, id domain.TicketID) error {
	defer r.store.lockWrite(ctx)()

	if _, ok := r.store.tickets[id]; !ok {
		return fmt.Errorf("%w: id %d", domain.ErrTicketNotFound, id)
	}
	delete(r.store.tickets, id)
	return nil
}

// FindByUserID lists the user's tickets.
func (r *TicketRepository) FindByUserID(_ context.Context, userID domain.UserID) ([]*domain.Ticket, error) {
	return r.collect(func(t *domain.Ticket) bool { return t.UserID == userID }), nil
}

// FindByFlightID lists the tickets issued for a flight.
func (r *TicketRepository) FindByFlightID(_ context.Context, flightID domain.FlightID) ([]*domain.Ticket, error) {
	return r.collect(func(t *domain.Ticket) bool { return t.FlightID == flightID }), nil
}

// IsSeatTaken reports whether a non-cancelled ticket holds the seat.
func (r *TicketRepository) IsSeatTaken(_ context.Context, flightID domain.FlightID, seat domain.SeatNumber) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, t := range r.store.tickets {
		if t.FlightID == flightID && t.SeatNumber() == seat && !t.IsCancelled() {
			return true, nil
		}
	}
	return false, nil
}

func (r *TicketRepository) collect(match func(*domain.Ticket) bool) []*domain.Ticket {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*domain.Ticket, 0)
	for _, row := range r.store.tickets {
		t := row
		if match(&t) {
			result = append(result, &t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

var _ domain.TicketRepository = (*TicketRepository)(nil)
