package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// FlightID identifies a flight. Persisted flights always have a positive id.
type FlightID int64

// TicketID identifies a ticket.
type TicketID int64

// ReservationID identifies a reservation.
type ReservationID int64

// UserID identifies a user.
type UserID int64

// NewFlightID validates and returns a FlightID.
func NewFlightID(v int64) (FlightID, error) {
	if v <= 0 {
		return 0, NewValidationError("flightId", "must be positive")
	}
	return FlightID(v), nil
}

// NewTicketID validates and returns a TicketID.
func NewTicketID(v int64) (TicketID, error) {
	if v <= 0 {
		return 0, NewValidationError("ticketId", "must be positive")
	}
	return TicketID(v), nil
}

// NewReservationID validates and returns a ReservationID.
func NewReservationID(v int64) (ReservationID, error) {
	if v <= 0 {
		return 0, NewValidationError("reservationId", "must be positive")
	}
	return ReservationID(v), nil
}

// NewUserID validates and returns a UserID.
func NewUserID(v int64) (UserID, error) {
	if v <= 0 {
		return 0, NewValidationError("userId", "must be positive")
	}
	return UserID(v), nil
}

var (
	flightNumberPattern = regexp.MustCompile(`^[A-Z]{2,3}\d{3,4}$`)
	seatNumberPattern   = regexp.MustCompile(`^\d{1,2}[A-F]$`)
	emailPattern        = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
)

// FlightNumber is an airline designator followed by a number, e.g. "AV101".
type FlightNumber string

// NewFlightNumber validates a flight number: 2-3 uppercase letters and 3-4 digits.
func NewFlightNumber(v string) (FlightNumber, error) {
	if strings.TrimSpace(v) == "" {
		return "", NewValidationError("flightNumber", "cannot be empty")
	}
	if !flightNumberPattern.MatchString(v) {
		return "", NewValidationError("flightNumber", "expected 2-3 uppercase letters followed by 3-4 digits, e.g. AV101")
	}
	return FlightNumber(v), nil
}

func (n FlightNumber) String() string { return string(n) }

// SeatNumber is a cabin row and seat letter, e.g. "12A".
type SeatNumber string

// NewSeatNumber validates a seat number: 1-2 digits and a letter A-F.
func NewSeatNumber(v string) (SeatNumber, error) {
	if strings.TrimSpace(v) == "" {
		return "", NewValidationError("seatNumber", "cannot be empty")
	}
	if !seatNumberPattern.MatchString(v) {
		return "", NewValidationError("seatNumber", "expected 1-2 digits followed by a letter A-F, e.g. 12A")
	}
	return SeatNumber(v), nil
}

func (s SeatNumber) String() string { return string(s) }

// Location is an origin or destination, usually an airport code.
type Location string

// NewLocation validates a location of 3 to 100 characters.
func NewLocation(v string) (Location, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", NewValidationError("location", "cannot be empty")
	}
	if n := utf8.RuneCountInString(v); n < 3 || n > 100 {
		return "", NewValidationError("location", "must be between 3 and 100 characters")
	}
	return Location(v), nil
}

func (l Location) String() string { return string(l) }

// Airline is the operating carrier's name.
type Airline string

// NewAirline validates an airline name of 2 to 100 characters.
func NewAirline(v string) (Airline, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", NewValidationError("airline", "cannot be empty")
	}
	if n := utf8.RuneCountInString(v); n < 2 || n > 100 {
		return "", NewValidationError("airline", "must be between 2 and 100 characters")
	}
	return Airline(v), nil
}

func (a Airline) String() string { return string(a) }

// Username is a unique login name.
type Username string

// NewUsername validates a username of 3 to 50 characters.
func NewUsername(v string) (Username, error) {
	if strings.TrimSpace(v) == "" {
		return "", NewValidationError("username", "cannot be empty")
	}
	if n := utf8.RuneCountInString(v); n < 3 || n > 50 {
		return "", NewValidationError("username", "must be between 3 and 50 characters")
	}
	return Username(v), nil
}

func (u Username) String() string { return string(u) }

// Email is a validated e-mail address.
type Email string

// NewEmail validates the address format.
func NewEmail(v string) (Email, error) {
	if strings.TrimSpace(v) == "" {
		return "", NewValidationError("email", "cannot be empty")
	}
	if !emailPattern.MatchString(v) {
		return "", NewValidationError("email", "invalid email format")
	}
	return Email(v), nil
}

func (e Email) String() string { return string(e) }
