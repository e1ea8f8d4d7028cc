package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// seatsPerBooking is the number of seats taken by one BookTicket call.
const seatsPerBooking = 1

// ReservationUseCase defines the booking operations.
type ReservationUseCase interface {
	// BookTicket issues a ticket, records a reservation and takes one seat out of inventory.
	BookTicket(ctx context.Context, cmd BookTicketCommand) (*domain.Reservation, error)

	// CancelReservation cancels a reservation and its ticket and returns the seat to inventory.
	CancelReservation(ctx context.Context, cmd CancelReservationCommand) (*domain.Reservation, error)

	// UpdateReservation moves the ticket to another seat and/or replaces the observations.
	UpdateReservation(ctx context.Context, cmd UpdateReservationCommand) (*domain.Reservation, error)

	// GetUserReservations lists every reservation owned by a user.
	GetUserReservations(ctx context.Context, userID int64) ([]*domain.Reservation, error)

	// Details loads the ticket and flight a reservation refers to.
	Details(ctx context.Context, reservation *domain.Reservation) (*ReservationDetails, error)
}

// ReservationDetails joins a reservation with its ticket and flight.
// Ticket or Flight is nil when the referenced row no longer exists.
type ReservationDetails struct {
	Reservation *domain.Reservation
	Ticket      *domain.Ticket
	Flight      *domain.Flight
}

type reservationUseCase struct {
	flights      domain.FlightRepository
	tickets      domain.TicketRepository
	reservations domain.ReservationRepository
	tx           domain.Transactor

	rules   *domain.ReservationService
	pricing *domain.PriceCalculator

	clock     timeutil.Clock
	publisher domain.EventPublisher
}

// NewReservationUseCase creates a ReservationUseCase.
// If config is nil, the system clock is used and events are discarded.
func NewReservationUseCase(repos domain.Repositories, config *Config) ReservationUseCase {
	cfg := resolveConfig(config)

	var tx domain.Transactor = directTx{}
	if repos.Transactor != nil {
		tx = repos.Transactor
	}

	return &reservationUseCase{
		flights:      repos.Flights,
		tickets:      repos.Tickets,
		reservations: repos.Reservations,
		tx:           tx,
		rules:        domain.NewReservationService(),
		pricing:      domain.NewPriceCalculator(),
		clock:        cfg.Clock,
		publisher:    cfg.Publisher,
	}
}

// BookTicket implements ReservationUseCase.BookTicket.
func (uc *reservationUseCase) BookTicket(ctx context.Context, cmd BookTicketCommand) (*domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	class, err := domain.ParseTicketClass(cmd.TicketClass)
	if err != nil {
		return nil, err
	}
	seat, err := domain.NewSeatNumber(strings.TrimSpace(cmd.SeatNumber))
	if err != nil {
		return nil, err
	}
	userID := domain.UserID(cmd.UserID)
	flightID := domain.FlightID(cmd.FlightID)

	var (
		saved  *domain.Reservation
		ticket *domain.Ticket
	)
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		flight, err := uc.flights.FindByIDForUpdate(ctx, flightID)
		if err != nil {
			return err
		}

		taken, err := uc.tickets.IsSeatTaken(ctx, flight.ID, seat)
		if err != nil {
			return fmt.Errorf("check seat %s: %w", seat, err)
		}
		if taken {
			return domain.NewSeatTakenError(flight.ID, seat)
		}

		now := uc.clock.Now()
		if err := uc.rules.ValidateReservation(flight, seatsPerBooking, now); err != nil {
			return err
		}
		if err := flight.ReserveSeats(seatsPerBooking); err != nil {
			return err
		}

		price := uc.pricing.CalculatePrice(flight.Price, class)
		newTicket, err := domain.NewTicket(flight.ID, userID, cmd.PassengerName, seat, price, class, now)
		if err != nil {
			return err
		}
		ticket, err = uc.tickets.Save(ctx, newTicket)
		if err != nil {
			return fmt.Errorf("save ticket: %w", err)
		}

		reservation := domain.NewReservation(userID, ticket.ID, flight.ID, cmd.Observations, now)
		saved, err = uc.reservations.Save(ctx, reservation)
		if err != nil {
			return fmt.Errorf("save reservation: %w", err)
		}

		flight.UpdatedAt = now
		if _, err := uc.flights.Update(ctx, flight); err != nil {
			return fmt.Errorf("update flight: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("reservation_id", int64(saved.ID)).
		Int64("flight_id", int64(flightID)).
		Str("seat", seat.String()).
		Msg("Ticket booked")

	uc.publish(ctx, domain.ReservationEvent{
		Type:          domain.EventReservationBooked,
		ReservationID: saved.ID,
		TicketID:      ticket.ID,
		FlightID:      saved.FlightID,
		UserID:        saved.UserID,
		SeatNumber:    ticket.SeatNumber(),
		TicketClass:   ticket.Class,
		Amount:        ticket.Price.Amount().StringFixed(2),
		Currency:      ticket.Price.Currency(),
	})

	return saved, nil
}

// CancelReservation implements ReservationUseCase.CancelReservation.
// The reservation row is locked before its status is checked, then the flight.
// Writes happen in the order ticket, flight, reservation.
func (uc *reservationUseCase) CancelReservation(ctx context.Context, cmd CancelReservationCommand) (*domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var cancelled *domain.Reservation
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		reservation, err := uc.reservations.FindByIDForUpdate(ctx, domain.ReservationID(cmd.ReservationID))
		if err != nil {
			return err
		}
		if err := uc.rules.ValidateCancellation(reservation); err != nil {
			return err
		}

		now := uc.clock.Now()
		if err := reservation.Cancel(cmd.Reason, now); err != nil {
			return err
		}

		ticket, err := uc.tickets.FindByID(ctx, reservation.TicketID)
		if err != nil {
			return fmt.Errorf("load ticket %d: %w", reservation.TicketID, err)
		}
		flight, err := uc.flights.FindByIDForUpdate(ctx, ticket.FlightID)
		if err != nil {
			return err
		}

		if err := ticket.Cancel(now); err != nil {
			return err
		}
		if _, err := uc.tickets.Update(ctx, ticket); err != nil {
			return fmt.Errorf("update ticket: %w", err)
		}

		if err := flight.ReleaseSeats(seatsPerBooking); err != nil {
			return err
		}
		flight.UpdatedAt = now
		if _, err := uc.flights.Update(ctx, flight); err != nil {
			return fmt.Errorf("update flight: %w", err)
		}

		cancelled, err = uc.reservations.Update(ctx, reservation)
		if err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Int64("reservation_id", int64(cancelled.ID)).
		Msg("Reservation cancelled")

	uc.publish(ctx, domain.ReservationEvent{
		Type:          domain.EventReservationCancelled,
		ReservationID: cancelled.ID,
		TicketID:      cancelled.TicketID,
		FlightID:      cancelled.FlightID,
		UserID:        cancelled.UserID,
		Reason:        cmd.Reason,
	})

	return cancelled, nil
}

// UpdateReservation implements ReservationUseCase.UpdateReservation.
// The reservation row is locked before the ticket is read, so a concurrent
// cancellation either completes first or waits for this update.
func (uc *reservationUseCase) UpdateReservation(ctx context.Context, cmd UpdateReservationCommand) (*domain.Reservation, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var newSeat domain.SeatNumber
	if s := strings.TrimSpace(cmd.SeatNumber); s != "" {
		seat, err := domain.NewSeatNumber(s)
		if err != nil {
			return nil, err
		}
		newSeat = seat
	}

	var updated *domain.Reservation
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		reservation, err := uc.reservations.FindByIDForUpdate(ctx, domain.ReservationID(cmd.ReservationID))
		if err != nil {
			return err
		}
		if err := uc.rules.ValidateUpdate(reservation); err != nil {
			return err
		}

		now := uc.clock.Now()
		if newSeat != "" {
			if err := uc.changeSeat(ctx, reservation, newSeat); err != nil {
				return err
			}
		}
		if cmd.Observations != nil {
			reservation.UpdateObservations(*cmd.Observations, now)
		}

		updated, err = uc.reservations.Update(ctx, reservation)
		if err != nil {
			return fmt.Errorf("update reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// changeSeat moves the reservation's ticket to seat. Asking for the seat the
// ticket already holds is a no-op and skips the availability check.
func (uc *reservationUseCase) changeSeat(ctx context.Context, reservation *domain.Reservation, seat domain.SeatNumber) error {
	ticket, err := uc.tickets.FindByID(ctx, reservation.TicketID)
	if err != nil {
		return fmt.Errorf("load ticket %d: %w", reservation.TicketID, err)
	}
	if ticket.SeatNumber() == seat {
		return nil
	}

	taken, err := uc.tickets.IsSeatTaken(ctx, ticket.FlightID, seat)
	if err != nil {
		return fmt.Errorf("check seat %s: %w", seat, err)
	}
	if taken {
		return domain.NewSeatTakenError(ticket.FlightID, seat)
	}

	if err := ticket.UpdateSeatNumber(seat, uc.clock.Now()); err != nil {
		return err
	}
	if _, err := uc.tickets.Update(ctx, ticket); err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// GetUserReservations implements ReservationUseCase.GetUserReservations.
func (uc *reservationUseCase) GetUserReservations(ctx context.Context, userID int64) ([]*domain.Reservation, error) {
	id, err := domain.NewUserID(userID)
	if err != nil {
		return nil, err
	}
	return uc.reservations.FindByUserID(ctx, id)
}

// Details implements ReservationUseCase.Details.
func (uc *reservationUseCase) Details(ctx context.Context, reservation *domain.Reservation) (*ReservationDetails, error) {
	details := &ReservationDetails{Reservation: reservation}

	ticket, err := uc.tickets.FindByID(ctx, reservation.TicketID)
	switch {
	case err == nil:
		details.Ticket = ticket
	case !errors.Is(err, domain.ErrTicketNotFound):
		return nil, fmt.Errorf("load ticket %d: %w", reservation.TicketID, err)
	}

	flight, err := uc.flights.FindByID(ctx, reservation.FlightID)
	switch {
	case err == nil:
		details.Flight = flight
	case !errors.Is(err, domain.ErrFlightNotFound):
		return nil, fmt.Errorf("load flight %d: %w", reservation.FlightID, err)
	}

	return details, nil
}

// publish sends an event and only logs failures; the reservation is already committed.
func (uc *reservationUseCase) publish(ctx context.Context, event domain.ReservationEvent) {
	event.ID = uuid.NewString()
	event.OccurredAt = uc.clock.Now()

	if err := uc.publisher.Publish(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().
			Err(err).
			Str("event_type", string(event.Type)).
			Int64("reservation_id", int64(event.ReservationID)).
			Msg("Failed to publish reservation event")
	}
}
