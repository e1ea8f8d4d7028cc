// Package seed loads the demo accounts and flights used for local runs.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "password"

type demoUser struct {
	username  domain.Username
	firstName string
	lastName  string
	email     domain.Email
	role      domain.UserRole
}

var demoUsers = []demoUser{
	{username: "admin", firstName: "Admin", lastName: "System", email: "admin@airline.com", role: domain.UserRoleAdmin},
	{username: "user", firstName: "Usuario", lastName: "Demo", email: "user@airline.com", role: domain.UserRoleUser},
}

type demoFlight struct {
	number      domain.FlightNumber
	origin      domain.Location
	destination domain.Location
	dayOffset   int
	hour        int
	seats       int
	price       string
	airline     domain.Airline
}

var demoFlights = []demoFlight{
	{number: "AV101", origin: "BOG", destination: "MDE", dayOffset: 1, hour: 8, seats: 50, price: "250000.00", airline: "Avianca"},
	{number: "AV102", origin: "BOG", destination: "CTG", dayOffset: 2, hour: 10, seats: 50, price: "300000.00", airline: "Avianca"},
	{number: "LA201", origin: "MDE", destination: "CTG", dayOffset: 3, hour: 14, seats: 45, price: "280000.00", airline: "LATAM"},
}

const (
	demoCurrency     = "COP"
	demoFlightLength = 90 * time.Minute
)

// Load inserts the demo users and flights. Users that already exist are left
// alone, and flights are only added to an empty flights table. Departures are
// placed on the days after clock.Now() in the display time zone.
func Load(ctx context.Context, repos domain.Repositories, hasher domain.PasswordHasher, clock timeutil.Clock) error {
	now := clock.Now()

	if err := loadUsers(ctx, repos.Users, hasher, now); err != nil {
		return err
	}
	return loadFlights(ctx, repos.Flights, now)
}

func loadUsers(ctx context.Context, users domain.UserRepository, hasher domain.PasswordHasher, now time.Time) error {
	for _, u := range demoUsers {
		_, err := users.FindByUsername(ctx, u.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("look up user %s: %w", u.username, err)
		}

		hash, err := hasher.Hash(DemoPassword)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.username, err)
		}
		_, err = users.Save(ctx, &domain.User{
			Username:     u.username,
			PasswordHash: hash,
			FirstName:    u.firstName,
			LastName:     u.lastName,
			Email:        u.email,
			Role:         u.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("save user %s: %w", u.username, err)
		}
		zerolog.Ctx(ctx).Info().Str("username", u.username.String()).Msg("Demo user created")
	}
	return nil
}

func loadFlights(ctx context.Context, flights domain.FlightRepository, now time.Time) error {
	existing, err := flights.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list flights: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	today := timeutil.StartOfDay(now.In(timeutil.DisplayLocation()))
	for _, d := range demoFlights {
		departure := today.AddDate(0, 0, d.dayOffset).Add(time.Duration(d.hour) * time.Hour)
		f, err := domain.NewFlight(domain.FlightParams{
			Number:         d.number,
			Origin:         d.origin,
			Destination:    d.destination,
			DepartureTime:  departure,
			ArrivalTime:    departure.Add(demoFlightLength),
			AvailableSeats: d.seats,
			TotalSeats:     d.seats,
			Price:          domain.MustPrice(d.price, demoCurrency),
			Airline:        d.airline,
			Status:         domain.FlightStatusActive,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("build flight %s: %w", d.number, err)
		}
		if _, err := flights.Save(ctx, f); err != nil {
			return fmt.Errorf("save flight %s: %w", d.number, err)
		}
	}

	zerolog.Ctx(ctx).Info().Int("flights", len(demoFlights)).Msg("Demo flights created")
	return nil
}
