package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FlightStatus is the operational status of a flight.
type FlightStatus string

const (
	FlightStatusActive    FlightStatus = "ACTIVE"
	FlightStatusCancelled FlightStatus = "CANCELLED"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCompleted FlightStatus = "COMPLETED"
	FlightStatusBoarding  FlightStatus = "BOARDING"
)

var flightStatuses = map[FlightStatus]string{
	FlightStatusActive:    "Active",
	FlightStatusCancelled: "Cancelled",
	FlightStatusDelayed:   "Delayed",
	FlightStatusCompleted: "Completed",
	FlightStatusBoarding:  "Boarding",
}

// ParseFlightStatus maps a status code to a FlightStatus.
func ParseFlightStatus(code string) (FlightStatus, error) {
	s := FlightStatus(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := flightStatuses[s]; !ok {
		return "", fmt.Errorf("%w: unknown flight status %q", ErrInvalidArgument, code)
	}
	return s, nil
}

// Description returns a human-readable label.
func (s FlightStatus) Description() string { return flightStatuses[s] }

func (s FlightStatus) String() string { return string(s) }

// ReservationStatus is the lifecycle state of a reservation.
// PENDING and EXPIRED exist for data completeness; no operation in this
// service moves a reservation into or out of them.
type ReservationStatus string

const (
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusExpired   ReservationStatus = "EXPIRED"
)

var reservationStatuses = map[ReservationStatus]string{
	ReservationStatusConfirmed: "Confirmed",
	ReservationStatusCancelled: "Cancelled",
	ReservationStatusPending:   "Pending",
	ReservationStatusExpired:   "Expired",
}

// ParseReservationStatus maps a status code to a ReservationStatus.
func ParseReservationStatus(code string) (ReservationStatus, error) {
	s := ReservationStatus(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := reservationStatuses[s]; !ok {
		return "", fmt.Errorf("%w: unknown reservation status %q", ErrInvalidArgument, code)
	}
	return s, nil
}

func (s ReservationStatus) Description() string { return reservationStatuses[s] }

func (s ReservationStatus) String() string { return string(s) }

// TicketStatus is the lifecycle state of a ticket.
type TicketStatus string

const (
	TicketStatusConfirmed TicketStatus = "CONFIRMED"
	TicketStatusCancelled TicketStatus = "CANCELLED"
	TicketStatusUsed      TicketStatus = "USED"
	TicketStatusRefunded  TicketStatus = "REFUNDED"
)

var ticketStatuses = map[TicketStatus]string{
	TicketStatusConfirmed: "Confirmed",
	TicketStatusCancelled: "Cancelled",
	TicketStatusUsed:      "Used",
	TicketStatusRefunded:  "Refunded",
}

// ParseTicketStatus maps a status code to a TicketStatus.
func ParseTicketStatus(code string) (TicketStatus, error) {
	s := TicketStatus(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := ticketStatuses[s]; !ok {
		return "", fmt.Errorf("%w: unknown ticket status %q", ErrInvalidArgument, code)
	}
	return s, nil
}

func (s TicketStatus) Description() string { return ticketStatuses[s] }

func (s TicketStatus) String() string { return string(s) }

// TicketClass is the cabin class of a ticket. Each class carries a fixed
// multiplier applied to the flight's base price.
type TicketClass string

const (
	TicketClassEconomy        TicketClass = "ECONOMY"
	TicketClassPremiumEconomy TicketClass = "PREMIUM_ECONOMY"
	TicketClassBusiness       TicketClass = "BUSINESS"
	TicketClassFirst          TicketClass = "FIRST_CLASS"
)

var ticketClassMultipliers = map[TicketClass]decimal.Decimal{
	TicketClassEconomy:        decimal.RequireFromString("1.0"),
	TicketClassPremiumEconomy: decimal.RequireFromString("1.5"),
	TicketClassBusiness:       decimal.RequireFromString("2.5"),
	TicketClassFirst:          decimal.RequireFromString("4.0"),
}

// ParseTicketClass maps a class code to a TicketClass.
func ParseTicketClass(code string) (TicketClass, error) {
	c := TicketClass(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := ticketClassMultipliers[c]; !ok {
		return "", fmt.Errorf("%w: unknown ticket class %q", ErrInvalidArgument, code)
	}
	return c, nil
}

// Multiplier returns the price multiplier of the class.
func (c TicketClass) Multiplier() decimal.Decimal {
	return ticketClassMultipliers[c]
}

func (c TicketClass) String() string { return string(c) }

// UserRole is the authorization role of a user.
type UserRole string

const (
	UserRoleAdmin UserRole = "ADMIN"
	UserRoleUser  UserRole = "USER"
	UserRoleAgent UserRole = "AGENT"
)

var userRoles = map[UserRole]string{
	UserRoleAdmin: "Administrator",
	UserRoleUser:  "User",
	UserRoleAgent: "Agent",
}

// ParseUserRole maps a role code to a UserRole.
func ParseUserRole(code string) (UserRole, error) {
	r := UserRole(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := userRoles[r]; !ok {
		return "", fmt.Errorf("%w: unknown user role %q", ErrInvalidArgument, code)
	}
	return r, nil
}

func (r UserRole) Description() string { return userRoles[r] }

func (r UserRole) String() string { return string(r) }
