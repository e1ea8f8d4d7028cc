package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

var fixedNow = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

// mocks bundles the gomock doubles a reservation use case needs.
type mocks struct {
	flights      *domain.MockFlightRepository
	tickets      *domain.MockTicketRepository
	reservations *domain.MockReservationRepository
	tx           *domain.MockTransactor
	publisher    *domain.MockEventPublisher
}

func newMocks(ctrl *gomock.Controller) *mocks {
	m := &mocks{
		flights:      domain.NewMockFlightRepository(ctrl),
		tickets:      domain.NewMockTicketRepository(ctrl),
		reservations: domain.NewMockReservationRepository(ctrl),
		tx:           domain.NewMockTransactor(ctrl),
		publisher:    domain.NewMockEventPublisher(ctrl),
	}
	// The transactor just runs the unit of work.
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	return m
}

func (m *mocks) useCase() ReservationUseCase {
	return NewReservationUseCase(domain.Repositories{
		Flights:      m.flights,
		Tickets:      m.tickets,
		Reservations: m.reservations,
		Transactor:   m.tx,
	}, &Config{
		Clock:     timeutil.NewMockClock(fixedNow),
		Publisher: m.publisher,
	})
}

// createTestFlight returns the AV101 BOG-MDE flight departing the day after fixedNow.
func createTestFlight(t *testing.T, available, total int, status domain.FlightStatus) *domain.Flight {
	t.Helper()
	departure := fixedNow.Add(24 * time.Hour)
	f, err := domain.NewFlight(domain.FlightParams{
		ID:             1,
		Number:         "AV101",
		Origin:         "BOG",
		Destination:    "MDE",
		DepartureTime:  departure,
		ArrivalTime:    departure.Add(90 * time.Minute),
		AvailableSeats: available,
		TotalSeats:     total,
		Price:          domain.MustPrice("250000", "COP"),
		Airline:        "Avianca",
		Status:         status,
	})
	require.NoError(t, err)
	return f
}

func createTestTicket(id domain.TicketID, seat domain.SeatNumber, status domain.TicketStatus) *domain.Ticket {
	return domain.RestoreTicket(domain.TicketParams{
		ID:            id,
		FlightID:      1,
		UserID:        2,
		PassengerName: "John Doe",
		SeatNumber:    seat,
		Price:         domain.MustPrice("250000", "COP"),
		Class:         domain.TicketClassEconomy,
		Status:        status,
	})
}

func createTestReservation(id domain.ReservationID, status domain.ReservationStatus) *domain.Reservation {
	return domain.RestoreReservation(domain.ReservationParams{
		ID:              id,
		UserID:          2,
		TicketID:        100,
		FlightID:        1,
		Status:          status,
		Observations:    "aisle",
		ReservationDate: fixedNow.Add(-time.Hour),
	})
}

func ptr[T any](v T) *T { return &v }
