// Package memory implements the repository ports on in-process maps.
// It backs local runs and the HTTP integration tests.
//
// Units of work run one at a time. Each one works on the live maps and a
// snapshot taken on entry is restored if it fails. Writes outside a unit of
// work are serialized with units of work, so a restore never drops them.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

type txKey struct{}

// Store holds every table. Entities are copied on the way in and out so
// callers never share pointers with the store.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	flights      map[domain.FlightID]domain.Flight
	tickets      map[domain.TicketID]domain.Ticket
	reservations map[domain.ReservationID]domain.Reservation
	users        map[domain.UserID]domain.User

	seq sequences
}

type sequences struct {
	flight      int64
	ticket      int64
	reservation int64
	user        int64
}

type snapshot struct {
	flights      map[domain.FlightID]domain.Flight
	tickets      map[domain.TicketID]domain.Ticket
	reservations map[domain.ReservationID]domain.Reservation
	users        map[domain.UserID]domain.User
	seq          sequences
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		flights:      make(map[domain.FlightID]domain.Flight),
		tickets:      make(map[domain.TicketID]domain.Ticket),
		reservations: make(map[domain.ReservationID]domain.Reservation),
		users:        make(map[domain.UserID]domain.User),
	}
}

// Repositories returns the repository ports backed by s.
func (s *Store) Repositories() domain.Repositories {
	return domain.Repositories{
		Flights:      &FlightRepository{store: s},
		Tickets:      &TicketRepository{store: s},
		Reservations: &ReservationRepository{store: s},
		Users:        &UserRepository{store: s},
		Transactor:   s,
	}
}

// WithinTx implements domain.Transactor. Nested calls join the outer unit of work.
// Repository calls inside fn must use the context fn receives; a write made
// with any other context waits for the unit of work to finish.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// lockWrite locks the tables for one write and returns the unlock function.
// Writes outside a unit of work also take txMu so a rollback cannot discard them.
func (s *Store) lockWrite(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		flights:      maps.Clone(s.flights),
		tickets:      maps.Clone(s.tickets),
		reservations: maps.Clone(s.reservations),
		users:        maps.Clone(s.users),
		seq:          s.seq,
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flights = snap.flights
	s.tickets = snap.tickets
	s.reservations = snap.reservations
	s.users = snap.users
	s.seq = snap.seq
}

var _ domain.Transactor = (*Store)(nil)
