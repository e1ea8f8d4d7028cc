package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

func validBookCommand() BookTicketCommand {
	return BookTicketCommand{
		UserID:        2,
		FlightID:      1,
		PassengerName: "John Doe",
		SeatNumber:    "12A",
		TicketClass:   "ECONOMY",
		Observations:  "window please",
	}
}

// expectSaves makes ticket and reservation saves assign ids 100 and 200.
func expectSaves(m *mocks) {
	m.tickets.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, t *domain.Ticket) (*domain.Ticket, error) {
			t.ID = 100
			return t, nil
		},
	)
	m.reservations.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
			r.ID = 200
			return r, nil
		},
	)
}

func TestBookTicket_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	flight := createTestFlight(t, 50, 50, domain.FlightStatusActive)

	var savedTicket *domain.Ticket
	var published domain.ReservationEvent
	gomock.InOrder(
		m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), domain.FlightID(1)).Return(flight, nil),
		m.tickets.EXPECT().IsSeatTaken(gomock.Any(), domain.FlightID(1), domain.SeatNumber("12A")).Return(false, nil),
		m.tickets.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
				tk.ID = 100
				savedTicket = tk
				return tk, nil
			},
		),
		m.reservations.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
				r.ID = 200
				return r, nil
			},
		),
		m.flights.EXPECT().Update(gomock.Any(), flight).Return(flight, nil),
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.ReservationEvent) error {
				published = e
				return nil
			},
		),
	)

	res, err := m.useCase().BookTicket(context.Background(), validBookCommand())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationID(200), res.ID)
	assert.Equal(t, domain.TicketID(100), res.TicketID)
	assert.Equal(t, domain.FlightID(1), res.FlightID)
	assert.Equal(t, domain.UserID(2), res.UserID)
	assert.Equal(t, domain.ReservationStatusConfirmed, res.Status())
	assert.Equal(t, "window please", res.Observations)
	assert.Equal(t, fixedNow, res.ReservationDate)

	assert.Equal(t, 49, flight.AvailableSeats())

	require.NotNil(t, savedTicket)
	assert.Equal(t, domain.TicketStatusConfirmed, savedTicket.Status())
	assert.Equal(t, domain.SeatNumber("12A"), savedTicket.SeatNumber())
	assert.Equal(t, "John Doe", savedTicket.PassengerName)
	assert.True(t, savedTicket.Price.Equal(domain.MustPrice("250000", "COP")))

	assert.Equal(t, domain.EventReservationBooked, published.Type)
	assert.Equal(t, domain.ReservationID(200), published.ReservationID)
	assert.Equal(t, "250000.00", published.Amount)
	assert.Equal(t, "COP", published.Currency)
	assert.NotEmpty(t, published.ID)
	assert.Equal(t, fixedNow, published.OccurredAt)
}

func TestBookTicket_ClassPricing(t *testing.T) {
	tests := []struct {
		name      string
		class     string
		wantPrice string
	}{
		{name: "economy keeps base fare", class: "ECONOMY", wantPrice: "250000"},
		{name: "premium economy", class: "premium_economy", wantPrice: "375000"},
		{name: "business", class: "BUSINESS", wantPrice: "625000"},
		{name: "first class", class: "FIRST_CLASS", wantPrice: "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			flight := createTestFlight(t, 10, 10, domain.FlightStatusActive)

			var saved *domain.Ticket
			m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(flight, nil)
			m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			m.tickets.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) {
					tk.ID = 1
					saved = tk
					return tk, nil
				},
			)
			m.reservations.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
					r.ID = 1
					return r, nil
				},
			)
			m.flights.EXPECT().Update(gomock.Any(), gomock.Any()).Return(flight, nil)
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

			cmd := validBookCommand()
			cmd.TicketClass = tt.class
			_, err := m.useCase().BookTicket(context.Background(), cmd)

			require.NoError(t, err)
			assert.True(t, saved.Price.Equal(domain.MustPrice(tt.wantPrice, "COP")), "got %s", saved.Price)
		})
	}
}

func TestBookTicket_Failures(t *testing.T) {
	tests := []struct {
		name    string
		cmd     func() BookTicketCommand
		setup   func(t *testing.T, m *mocks)
		wantErr error
	}{
		{
			name: "seat already taken",
			cmd:  validBookCommand,
			setup: func(t *testing.T, m *mocks) {
				m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestFlight(t, 50, 50, domain.FlightStatusActive), nil)
				m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: domain.ErrSeatAlreadyTaken,
		},
		{
			name: "flight not found",
			cmd:  validBookCommand,
			setup: func(t *testing.T, m *mocks) {
				m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewFlightNotFoundError(1))
			},
			wantErr: domain.ErrFlightNotFound,
		},
		{
			name: "cancelled flight is not bookable",
			cmd:  validBookCommand,
			setup: func(t *testing.T, m *mocks) {
				m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestFlight(t, 50, 50, domain.FlightStatusCancelled), nil)
				m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: domain.ErrInvalidBooking,
		},
		{
			name: "sold out flight is not bookable",
			cmd:  validBookCommand,
			setup: func(t *testing.T, m *mocks) {
				m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestFlight(t, 0, 50, domain.FlightStatusActive), nil)
				m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: domain.ErrInvalidBooking,
		},
		{
			name: "unknown ticket class",
			cmd: func() BookTicketCommand {
				c := validBookCommand()
				c.TicketClass = "LUXURY"
				return c
			},
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "missing passenger name",
			cmd: func() BookTicketCommand {
				c := validBookCommand()
				c.PassengerName = "   "
				return c
			},
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "non-positive flight id",
			cmd: func() BookTicketCommand {
				c := validBookCommand()
				c.FlightID = 0
				return c
			},
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "observations too long",
			cmd: func() BookTicketCommand {
				c := validBookCommand()
				c.Observations = strings.Repeat("x", domain.MaxObservationsLength+1)
				return c
			},
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			tt.setup(t, m)

			res, err := m.useCase().BookTicket(context.Background(), tt.cmd())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestBookTicket_SeatTakenCarriesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
		Return(createTestFlight(t, 50, 50, domain.FlightStatusActive), nil)
	m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	_, err := m.useCase().BookTicket(context.Background(), validBookCommand())

	var seatErr *domain.SeatTakenError
	require.ErrorAs(t, err, &seatErr)
	assert.Equal(t, domain.FlightID(1), seatErr.FlightID)
	assert.Equal(t, domain.SeatNumber("12A"), seatErr.Seat)
}

func TestBookTicket_SaveTicketFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	dbErr := errors.New("connection reset")

	m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
		Return(createTestFlight(t, 50, 50, domain.FlightStatusActive), nil)
	m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	m.tickets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, dbErr)

	_, err := m.useCase().BookTicket(context.Background(), validBookCommand())

	assert.ErrorIs(t, err, dbErr)
}

func TestBookTicket_PublishFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	flight := createTestFlight(t, 50, 50, domain.FlightStatusActive)

	m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(flight, nil)
	m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	expectSaves(m)
	m.flights.EXPECT().Update(gomock.Any(), gomock.Any()).Return(flight, nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := m.useCase().BookTicket(context.Background(), validBookCommand())

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationID(200), res.ID)
}

func TestBookTicket_NilConfigUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	flights := domain.NewMockFlightRepository(ctrl)
	flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(nil, domain.NewFlightNotFoundError(1))

	uc := NewReservationUseCase(domain.Repositories{Flights: flights}, nil)
	_, err := uc.BookTicket(context.Background(), validBookCommand())

	assert.ErrorIs(t, err, domain.ErrFlightNotFound)
}

func TestCancelReservation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	reservation := createTestReservation(200, domain.ReservationStatusConfirmed)
	ticket := createTestTicket(100, "12A", domain.TicketStatusConfirmed)
	flight := createTestFlight(t, 49, 50, domain.FlightStatusActive)

	var published domain.ReservationEvent
	gomock.InOrder(
		m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), domain.ReservationID(200)).Return(reservation, nil),
		m.tickets.EXPECT().FindByID(gomock.Any(), domain.TicketID(100)).Return(ticket, nil),
		m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), domain.FlightID(1)).Return(flight, nil),
		m.tickets.EXPECT().Update(gomock.Any(), ticket).Return(ticket, nil),
		m.flights.EXPECT().Update(gomock.Any(), flight).Return(flight, nil),
		m.reservations.EXPECT().Update(gomock.Any(), reservation).Return(reservation, nil),
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e domain.ReservationEvent) error {
				published = e
				return nil
			},
		),
	)

	res, err := m.useCase().CancelReservation(context.Background(), CancelReservationCommand{
		ReservationID: 200,
		Reason:        "change of plans",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ReservationStatusCancelled, res.Status())
	assert.Contains(t, res.Observations, "change of plans")
	assert.True(t, ticket.IsCancelled())
	assert.Equal(t, 50, flight.AvailableSeats())
	assert.Equal(t, domain.EventReservationCancelled, published.Type)
	assert.Equal(t, "change of plans", published.Reason)
}

func TestCancelReservation_Failures(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		reason  string
		setup   func(t *testing.T, m *mocks)
		wantErr error
	}{
		{
			name: "already cancelled touches no ticket or flight",
			id:   200,
			setup: func(t *testing.T, m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestReservation(200, domain.ReservationStatusCancelled), nil)
			},
			wantErr: domain.ErrInvalidBooking,
		},
		{
			name: "reservation not found",
			id:   999,
			setup: func(t *testing.T, m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), domain.ReservationID(999)).
					Return(nil, domain.NewReservationNotFoundError(999))
			},
			wantErr: domain.ErrReservationNotFound,
		},
		{
			name: "missing ticket",
			id:   200,
			setup: func(t *testing.T, m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestReservation(200, domain.ReservationStatusConfirmed), nil)
				m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTicketNotFound)
			},
			wantErr: domain.ErrTicketNotFound,
		},
		{
			name: "releasing beyond capacity",
			id:   200,
			setup: func(t *testing.T, m *mocks) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestReservation(200, domain.ReservationStatusConfirmed), nil)
				m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).
					Return(createTestTicket(100, "12A", domain.TicketStatusConfirmed), nil)
				m.flights.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestFlight(t, 50, 50, domain.FlightStatusActive), nil)
				m.tickets.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tk *domain.Ticket) (*domain.Ticket, error) { return tk, nil },
				)
			},
			wantErr: domain.ErrIllegalState,
		},
		{
			name:    "invalid id",
			id:      0,
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name:    "reason longer than observations",
			id:      200,
			reason:  strings.Repeat("é", domain.MaxObservationsLength+1),
			setup:   func(t *testing.T, m *mocks) {},
			wantErr: domain.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			tt.setup(t, m)

			res, err := m.useCase().CancelReservation(context.Background(), CancelReservationCommand{ReservationID: tt.id, Reason: tt.reason})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestUpdateReservation(t *testing.T) {
	tests := []struct {
		name      string
		cmd       UpdateReservationCommand
		setup     func(m *mocks, res *domain.Reservation, ticket *domain.Ticket)
		wantErr   error
		wantSeat  domain.SeatNumber
		wantNotes string
	}{
		{
			name: "same seat skips availability check",
			cmd:  UpdateReservationCommand{ReservationID: 200, SeatNumber: "12A"},
			setup: func(m *mocks, res *domain.Reservation, ticket *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(res, nil)
				m.tickets.EXPECT().FindByID(gomock.Any(), domain.TicketID(100)).Return(ticket, nil)
				m.reservations.EXPECT().Update(gomock.Any(), res).Return(res, nil)
			},
			wantSeat:  "12A",
			wantNotes: "aisle",
		},
		{
			name: "free seat moves the ticket",
			cmd:  UpdateReservationCommand{ReservationID: 200, SeatNumber: "15C"},
			setup: func(m *mocks, res *domain.Reservation, ticket *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(res, nil)
				m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ticket, nil)
				m.tickets.EXPECT().IsSeatTaken(gomock.Any(), domain.FlightID(1), domain.SeatNumber("15C")).Return(false, nil)
				m.tickets.EXPECT().Update(gomock.Any(), ticket).Return(ticket, nil)
				m.reservations.EXPECT().Update(gomock.Any(), res).Return(res, nil)
			},
			wantSeat:  "15C",
			wantNotes: "aisle",
		},
		{
			name: "taken seat is rejected",
			cmd:  UpdateReservationCommand{ReservationID: 200, SeatNumber: "15C"},
			setup: func(m *mocks, res *domain.Reservation, ticket *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(res, nil)
				m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ticket, nil)
				m.tickets.EXPECT().IsSeatTaken(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: domain.ErrSeatAlreadyTaken,
		},
		{
			name: "observations only",
			cmd:  UpdateReservationCommand{ReservationID: 200, Observations: ptr("extra legroom")},
			setup: func(m *mocks, res *domain.Reservation, ticket *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(res, nil)
				m.reservations.EXPECT().Update(gomock.Any(), res).Return(res, nil)
			},
			wantSeat:  "12A",
			wantNotes: "extra legroom",
		},
		{
			name: "empty observations clear the text",
			cmd:  UpdateReservationCommand{ReservationID: 200, SeatNumber: "  ", Observations: ptr("")},
			setup: func(m *mocks, res *domain.Reservation, ticket *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).Return(res, nil)
				m.reservations.EXPECT().Update(gomock.Any(), res).Return(res, nil)
			},
			wantSeat:  "12A",
			wantNotes: "",
		},
		{
			name: "cancelled reservation",
			cmd:  UpdateReservationCommand{ReservationID: 200, SeatNumber: "15C"},
			setup: func(m *mocks, _ *domain.Reservation, _ *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(createTestReservation(200, domain.ReservationStatusCancelled), nil)
			},
			wantErr: domain.ErrInvalidBooking,
		},
		{
			name: "reservation not found",
			cmd:  UpdateReservationCommand{ReservationID: 404},
			setup: func(m *mocks, _ *domain.Reservation, _ *domain.Ticket) {
				m.reservations.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewReservationNotFoundError(404))
			},
			wantErr: domain.ErrReservationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newMocks(ctrl)
			res := createTestReservation(200, domain.ReservationStatusConfirmed)
			ticket := createTestTicket(100, "12A", domain.TicketStatusConfirmed)
			tt.setup(m, res, ticket)

			got, err := m.useCase().UpdateReservation(context.Background(), tt.cmd)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeat, ticket.SeatNumber())
			assert.Equal(t, tt.wantNotes, got.Observations)
			assert.Equal(t, domain.ReservationStatusConfirmed, got.Status())
		})
	}
}

func TestGetUserReservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newMocks(ctrl)
	list := []*domain.Reservation{
		createTestReservation(1, domain.ReservationStatusConfirmed),
		createTestReservation(2, domain.ReservationStatusCancelled),
	}
	m.reservations.EXPECT().FindByUserID(gomock.Any(), domain.UserID(2)).Return(list, nil)

	got, err := m.useCase().GetUserReservations(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = m.useCase().GetUserReservations(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestDetails(t *testing.T) {
	t.Run("joins ticket and flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMocks(ctrl)
		res := createTestReservation(200, domain.ReservationStatusConfirmed)
		m.tickets.EXPECT().FindByID(gomock.Any(), domain.TicketID(100)).
			Return(createTestTicket(100, "12A", domain.TicketStatusConfirmed), nil)
		m.flights.EXPECT().FindByID(gomock.Any(), domain.FlightID(1)).
			Return(createTestFlight(t, 49, 50, domain.FlightStatusActive), nil)

		d, err := m.useCase().Details(context.Background(), res)

		require.NoError(t, err)
		assert.Same(t, res, d.Reservation)
		assert.NotNil(t, d.Ticket)
		assert.NotNil(t, d.Flight)
	})

	t.Run("missing rows are tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMocks(ctrl)
		m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTicketNotFound)
		m.flights.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.NewFlightNotFoundError(1))

		d, err := m.useCase().Details(context.Background(), createTestReservation(200, domain.ReservationStatusConfirmed))

		require.NoError(t, err)
		assert.Nil(t, d.Ticket)
		assert.Nil(t, d.Flight)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := newMocks(ctrl)
		m.tickets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := m.useCase().Details(context.Background(), createTestReservation(200, domain.ReservationStatusConfirmed))

		assert.Error(t, err)
	})
}
