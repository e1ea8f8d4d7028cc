package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// rowLockDB behaves like a READ COMMITTED database with row locks. Plain reads
// return the last committed row, locking reads wait for the row lock, and
// writes become visible when the unit of work commits.
type rowLockDB struct {
	mu           sync.Mutex
	flights      map[domain.FlightID]domain.Flight
	tickets      map[domain.TicketID]domain.Ticket
	reservations map[domain.ReservationID]domain.Reservation
	locks        map[string]*sync.Mutex

	// contended receives the row key when a locking read has to wait.
	contended chan string
	// onTicketRead runs after every committed ticket read.
	onTicketRead func()
}

type lockTx struct {
	held    []*sync.Mutex
	pending []func()
}

type lockTxKey struct{}

func newRowLockDB(f *domain.Flight, t *domain.Ticket, r *domain.Reservation) *rowLockDB {
	return &rowLockDB{
		flights:      map[domain.FlightID]domain.Flight{f.ID: *f},
		tickets:      map[domain.TicketID]domain.Ticket{t.ID: *t},
		reservations: map[domain.ReservationID]domain.Reservation{r.ID: *r},
		locks:        make(map[string]*sync.Mutex),
		contended:    make(chan string, 1),
		onTicketRead: func() {},
	}
}

func (db *rowLockDB) repositories() domain.Repositories {
	return domain.Repositories{
		Flights:      lockFlights{db: db},
		Tickets:      lockTickets{db: db},
		Reservations: lockReservations{db: db},
		Transactor:   db,
	}
}

func (db *rowLockDB) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx := &lockTx{}
	err := fn(context.WithValue(ctx, lockTxKey{}, tx))
	if err == nil {
		db.mu.Lock()
		for _, apply := range tx.pending {
			apply()
		}
		db.mu.Unlock()
	}
	for _, l := range tx.held {
		l.Unlock()
	}
	return err
}

func (db *rowLockDB) lockRow(ctx context.Context, key string) {
	tx := ctx.Value(lockTxKey{}).(*lockTx)

	db.mu.Lock()
	l, ok := db.locks[key]
	if !ok {
		l = &sync.Mutex{}
		db.locks[key] = l
	}
	db.mu.Unlock()

	if !l.TryLock() {
		select {
		case db.contended <- key:
		default:
		}
		l.Lock()
	}
	tx.held = append(tx.held, l)
}

func (db *rowLockDB) write(ctx context.Context, apply func()) {
	tx := ctx.Value(lockTxKey{}).(*lockTx)
	tx.pending = append(tx.pending, apply)
}

// The embedded interfaces satisfy the ports; only the methods below are used.

type lockFlights struct {
	domain.FlightRepository
	db *rowLockDB
}

func (r lockFlights) FindByID(_ context.Context, id domain.FlightID) (*domain.Flight, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	f, ok := r.db.flights[id]
	if !ok {
		return nil, domain.NewFlightNotFoundError(id)
	}
	return &f, nil
}

func (r lockFlights) FindByIDForUpdate(ctx context.Context, id domain.FlightID) (*domain.Flight, error) {
	r.db.lockRow(ctx, fmt.Sprintf("flight:%d", id))
	return r.FindByID(ctx, id)
}

func (r lockFlights) Update(ctx context.Context, f *domain.Flight) (*domain.Flight, error) {
	row := *f
	r.db.write(ctx, func() { r.db.flights[row.ID] = row })
	return f, nil
}

type lockTickets struct {
	domain.TicketRepository
	db *rowLockDB
}

func (r lockTickets) FindByID(_ context.Context, id domain.TicketID) (*domain.Ticket, error) {
	r.db.mu.Lock()
	t, ok := r.db.tickets[id]
	r.db.mu.Unlock()
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	r.db.onTicketRead()
	return &t, nil
}

func (r lockTickets) IsSeatTaken(_ context.Context, flightID domain.FlightID, seat domain.SeatNumber) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, t := range r.db.tickets {
		if t.FlightID == flightID && t.SeatNumber() == seat && !t.IsCancelled() {
			return true, nil
		}
	}
	return false, nil
}

func (r lockTickets) Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error) {
	row := *t
	r.db.write(ctx, func() { r.db.tickets[row.ID] = row })
	return t, nil
}

type lockReservations struct {
	domain.ReservationRepository
	db *rowLockDB
}

func (r lockReservations) FindByID(_ context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	res, ok := r.db.reservations[id]
	if !ok {
		return nil, domain.NewReservationNotFoundError(id)
	}
	return &res, nil
}

func (r lockReservations) FindByIDForUpdate(ctx context.Context, id domain.ReservationID) (*domain.Reservation, error) {
	r.db.lockRow(ctx, fmt.Sprintf("reservation:%d", id))
	return r.FindByID(ctx, id)
}

func (r lockReservations) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	row := *res
	r.db.write(ctx, func() { r.db.reservations[row.ID] = row })
	return res, nil
}

// pauseFirstTicketRead blocks the first ticket read until resume is closed.
func pauseFirstTicketRead(db *rowLockDB) (paused, resume chan struct{}) {
	paused = make(chan struct{})
	resume = make(chan struct{})
	var first atomic.Bool
	db.onTicketRead = func() {
		if first.CompareAndSwap(false, true) {
			close(paused)
			<-resume
		}
	}
	return paused, resume
}

func newLockingUseCase(t *testing.T) (*rowLockDB, ReservationUseCase) {
	t.Helper()
	db := newRowLockDB(
		createTestFlight(t, 49, 50, domain.FlightStatusActive),
		createTestTicket(100, "12A", domain.TicketStatusConfirmed),
		createTestReservation(200, domain.ReservationStatusConfirmed),
	)
	uc := NewReservationUseCase(db.repositories(), &Config{
		Clock:     timeutil.NewMockClock(fixedNow),
		Publisher: domain.NopPublisher{},
	})
	return db, uc
}

func TestCancelReservation_WaitsForInFlightUpdate(t *testing.T) {
	db, uc := newLockingUseCase(t)
	ctx := context.Background()
	paused, resume := pauseFirstTicketRead(db)

	updateErr := make(chan error, 1)
	go func() {
		_, err := uc.UpdateReservation(ctx, UpdateReservationCommand{ReservationID: 200, SeatNumber: "14B"})
		updateErr <- err
	}()
	<-paused

	cancelErr := make(chan error, 1)
	go func() {
		_, err := uc.CancelReservation(ctx, CancelReservationCommand{ReservationID: 200, Reason: "plans changed"})
		cancelErr <- err
	}()

	select {
	case key := <-db.contended:
		assert.Equal(t, "reservation:200", key)
	case err := <-cancelErr:
		t.Errorf("cancel committed while the update was in flight: %v", err)
		cancelErr <- err
	}
	close(resume)

	require.NoError(t, <-updateErr)
	require.NoError(t, <-cancelErr)

	res := db.reservations[200]
	ticket := db.tickets[100]
	flight := db.flights[1]
	assert.True(t, res.IsCancelled())
	assert.True(t, ticket.IsCancelled())
	assert.Equal(t, domain.SeatNumber("14B"), ticket.SeatNumber())
	assert.Equal(t, 50, flight.AvailableSeats())
}

func TestCancelReservation_ConcurrentCancelsReleaseOnce(t *testing.T) {
	db, uc := newLockingUseCase(t)
	ctx := context.Background()
	paused, resume := pauseFirstTicketRead(db)

	firstErr := make(chan error, 1)
	go func() {
		_, err := uc.CancelReservation(ctx, CancelReservationCommand{ReservationID: 200})
		firstErr <- err
	}()
	<-paused

	secondErr := make(chan error, 1)
	go func() {
		_, err := uc.CancelReservation(ctx, CancelReservationCommand{ReservationID: 200})
		secondErr <- err
	}()

	select {
	case <-db.contended:
	case err := <-secondErr:
		t.Errorf("second cancel finished while the first was in flight: %v", err)
		secondErr <- err
	}
	close(resume)

	require.NoError(t, <-firstErr)
	assert.ErrorIs(t, <-secondErr, domain.ErrInvalidBooking)

	flight := db.flights[1]
	assert.Equal(t, 50, flight.AvailableSeats())
	res := db.reservations[200]
	assert.True(t, res.IsCancelled())
}
