package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the booking domain.
// Callers check them with errors.Is; the typed errors below unwrap to them.
var (
	// ErrFlightNotFound is returned when a flight id has no row.
	ErrFlightNotFound = errors.New("flight not found")

	// ErrReservationNotFound is returned when a reservation id has no row.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrTicketNotFound is returned when a reservation points at a ticket that no longer exists.
	ErrTicketNotFound = errors.New("ticket not found")

	// ErrUserNotFound is returned when a user id or username has no row.
	ErrUserNotFound = errors.New("user not found")

	// ErrSeatAlreadyTaken is returned when a seat is held by a non-cancelled ticket on the same flight.
	ErrSeatAlreadyTaken = errors.New("seat already taken")

	// ErrNoSeatsAvailable is returned when the requested quantity exceeds remaining inventory.
	ErrNoSeatsAvailable = errors.New("no seats available")

	// ErrInvalidBooking is returned when a flight is not bookable or a reservation
	// is already cancelled when a cancel or update is attempted.
	ErrInvalidBooking = errors.New("invalid booking")

	// ErrAuthenticationFailed is returned for an unknown username or a password mismatch.
	// Both cases share this error so callers cannot tell them apart.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrInvalidToken is returned when a bearer token is malformed, expired or forged.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidArgument is returned when an input value fails validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState marks a state transition that the calling code should never attempt,
	// such as cancelling a cancelled ticket or releasing more seats than the flight holds.
	ErrIllegalState = errors.New("illegal state transition")
)

// FlightNotFoundError reports the flight id that could not be found.
type FlightNotFoundError struct {
	ID FlightID
}

func (e *FlightNotFoundError) Error() string {
	return fmt.Sprintf("flight not found: id %d", e.ID)
}

func (e *FlightNotFoundError) Unwrap() error {
	return ErrFlightNotFound
}

// NewFlightNotFoundError creates a FlightNotFoundError for the given id.
func NewFlightNotFoundError(id FlightID) *FlightNotFoundError {
	return &FlightNotFoundError{ID: id}
}

// ReservationNotFoundError reports the reservation id that could not be found.
type ReservationNotFoundError struct {
	ID ReservationID
}

func (e *ReservationNotFoundError) Error() string {
	return fmt.Sprintf("reservation not found: id %d", e.ID)
}

func (e *ReservationNotFoundError) Unwrap() error {
	return ErrReservationNotFound
}

// NewReservationNotFoundError creates a ReservationNotFoundError for the given id.
func NewReservationNotFoundError(id ReservationID) *ReservationNotFoundError {
	return &ReservationNotFoundError{ID: id}
}

// SeatTakenError reports the seat that is already held on a flight.
type SeatTakenError struct {
	FlightID FlightID
	Seat     SeatNumber
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %s is already taken on flight %d", e.Seat, e.FlightID)
}

func (e *SeatTakenError) Unwrap() error {
	return ErrSeatAlreadyTaken
}

// NewSeatTakenError creates a SeatTakenError for the given flight and seat.
func NewSeatTakenError(flightID FlightID, seat SeatNumber) *SeatTakenError {
	return &SeatTakenError{FlightID: flightID, Seat: seat}
}

// ValidationError represents a single field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// NewValidationError creates a ValidationError for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidBooking wraps ErrInvalidBooking with a formatted reason.
func WrapInvalidBooking(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidBooking, fmt.Sprintf(format, args...))
}

// WrapIllegalState wraps ErrIllegalState with a formatted reason.
func WrapIllegalState(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrIllegalState, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is any of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFlightNotFound) ||
		errors.Is(err, ErrReservationNotFound) ||
		errors.Is(err, ErrTicketNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict reports whether err is a seat inventory conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSeatAlreadyTaken) || errors.Is(err, ErrNoSeatsAvailable)
}

// IsBadRequest reports whether err was caused by the caller's input.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrInvalidBooking) || errors.Is(err, ErrInvalidArgument)
}
