package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=domain

// FlightRepository persists flights.
// FindByID returns a *FlightNotFoundError when the id has no row.
type FlightRepository interface {
	FindByID(ctx context.Context, id FlightID) (*Flight, error)

	// FindByIDForUpdate loads a flight and, inside a transaction, locks its row
	// until the transaction ends. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id FlightID) (*Flight, error)

	Save(ctx context.Context, flight *Flight) (*Flight, error)
	Update(ctx context.Context, flight *Flight) (*Flight, error)
	DeleteByID(ctx context.Context, id FlightID) error
	FindAll(ctx context.Context) ([]*Flight, error)

	// Search returns flights between origin and destination. When date is set,
	// only flights departing on that calendar day are returned.
	Search(ctx context.Context, origin, destination Location, date *time.Time) ([]*Flight, error)
}

// TicketRepository persists tickets.
type TicketRepository interface {
	FindByID(ctx context.Context, id TicketID) (*Ticket, error)
	Save(ctx context.Context, ticket *Ticket) (*Ticket, error)
	Update(ctx context.Context, ticket *Ticket) (*Ticket, error)
	DeleteByID(ctx context.Context, id TicketID) error
	FindByUserID(ctx context.Context, userID UserID) ([]*Ticket, error)
	FindByFlightID(ctx context.Context, flightID FlightID) ([]*Ticket, error)

	// IsSeatTaken reports whether a non-cancelled ticket holds seat on the flight.
	IsSeatTaken(ctx context.Context, flightID FlightID, seat SeatNumber) (bool, error)
}

// ReservationRepository persists reservations.
// FindByID returns a *ReservationNotFoundError when the id has no row.
type ReservationRepository interface {
	FindByID(ctx context.Context, id ReservationID) (*Reservation, error)
	// FindByIDForUpdate loads the reservation and locks it until the
	// surrounding unit of work ends.
	FindByIDForUpdate(ctx context.Context, id ReservationID) (*Reservation, error)
	Save(ctx context.Context, reservation *Reservation) (*Reservation, error)
	Update(ctx context.Context, reservation *Reservation) (*Reservation, error)
	DeleteByID(ctx context.Context, id ReservationID) error
	FindByUserID(ctx context.Context, userID UserID) ([]*Reservation, error)
	FindAll(ctx context.Context) ([]*Reservation, error)
}

// UserRepository persists users.
type UserRepository interface {
	FindByID(ctx context.Context, id UserID) (*User, error)
	FindByUsername(ctx context.Context, username Username) (*User, error)
	Save(ctx context.Context, user *User) (*User, error)
	DeleteByID(ctx context.Context, id UserID) error
	FindAll(ctx context.Context) ([]*User, error)
}

// Transactor runs fn as a single unit of work. Repository calls made with the
// context passed to fn join the unit of work; if fn returns an error every
// write made through that context is discarded.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repositories groups the repository ports used by the use cases.
type Repositories struct {
	Flights      FlightRepository
	Tickets      TicketRepository
	Reservations ReservationRepository
	Users        UserRepository
	Transactor   Transactor
}
