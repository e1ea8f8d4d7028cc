// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
)

const (
	maxPassengerNameLength = 30
	maxObservationsLength  = domain.MaxObservationsLength
)

// Validation regex patterns.
var (
	passengerNamePattern = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`)
	seatNumberPattern    = regexp.MustCompile(`^\d{1,2}[A-F]$`)
	timePattern          = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Valid sort options.
var validSortOptions = map[string]bool{
	"best":      true,
	"price":     true,
	"duration":  true,
	"departure": true,
	"seats":     true,
	"":          true, // defaults to departure
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"user"`
	Password string `json:"password" example:"password"`
}

// Validate validates the login request.
func (r *LoginRequest) Validate() error {
	errs := &ValidationErrors{}
	if strings.TrimSpace(r.Username) == "" {
		errs.Add("username", "username is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}
	return errs.OrNil()
}

// SearchFlightsRequest is the body of POST /flights/search.
type SearchFlightsRequest struct {
	// Origin is a city name or IATA code, e.g. "Bogotá" or "BOG"
	Origin string `json:"origin" example:"BOG"`

	// Destination is a city name or IATA code
	Destination string `json:"destination" example:"MDE"`

	// DepartureDate restricts results to one day, format dd/MM/yyyy HH:mm:ss
	DepartureDate string `json:"departureDate,omitempty" example:"16/10/2026 00:00:00"`

	// Passengers drops flights with fewer free seats
	Passengers *int `json:"passengers,omitempty" example:"2"`

	// Filters contains optional filtering criteria
	Filters *FilterDTO `json:"filters,omitempty"`

	// SortBy is one of best, price, duration, departure, seats
	SortBy string `json:"sortBy,omitempty" example:"price"`
}

// FilterDTO represents optional filters for flight search.
type FilterDTO struct {
	// MaxPrice drops flights priced above this amount
	MaxPrice *float64 `json:"maxPrice,omitempty" example:"300000"`

	// Airlines keeps only flights operated by these airlines
	Airlines []string `json:"airlines,omitempty" example:"Avianca,LATAM"`

	// DepartureTimeRange keeps flights departing within a local time window
	DepartureTimeRange *TimeRangeDTO `json:"departureTimeRange,omitempty"`

	// DurationRange keeps flights by scheduled duration in minutes
	DurationRange *DurationRangeDTO `json:"durationRange,omitempty"`
}

// TimeRangeDTO represents a time window in HH:MM.
type TimeRangeDTO struct {
	Start string `json:"start" example:"06:00"`
	End   string `json:"end" example:"12:00"`
}

// DurationRangeDTO represents a duration range filter in minutes.
type DurationRangeDTO struct {
	MinMinutes *int `json:"minMinutes,omitempty" example:"60"`
	MaxMinutes *int `json:"maxMinutes,omitempty" example:"180"`
}

// BookingRequest is the body of POST /reservations.
type BookingRequest struct {
	UserID        int64  `json:"userId" example:"2"`
	FlightID      int64  `json:"flightId" example:"1"`
	PassengerName string `json:"passengerName" example:"Juan Pérez"`
	SeatNumber    string `json:"seatNumber" example:"12A"`
	TicketClass   string `json:"ticketClass,omitempty" example:"ECONOMY"`
	Observations  string `json:"observations,omitempty" example:"Window seat please"`
}

// UpdateReservationRequest is the body of PUT /reservations.
type UpdateReservationRequest struct {
	ReservationID int64   `json:"reservationId" example:"1"`
	SeatNumber    string  `json:"seatNumber,omitempty" example:"14C"`
	Observations  *string `json:"observations,omitempty" example:"Vegetarian meal"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// OrNil returns v as an error when it holds anything, nil otherwise.
func (v *ValidationErrors) OrNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Origin) == "" {
		errs.Add("origin", "origin is required")
	}
	if strings.TrimSpace(r.Destination) == "" {
		errs.Add("destination", "destination is required")
	}
	if r.Origin != "" && r.Destination != "" &&
		domain.NormalizeCityCode(r.Origin) == domain.NormalizeCityCode(r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	if r.DepartureDate != "" {
		if _, err := timeutil.ParseDisplay(r.DepartureDate); err != nil {
			errs.Add("departureDate", "departureDate must be in dd/MM/yyyy HH:mm:ss format")
		}
	}

	if r.Passengers != nil && *r.Passengers < 1 {
		errs.Add("passengers", "passengers must be at least 1")
	}

	if !validSortOptions[strings.ToLower(r.SortBy)] {
		errs.Add("sortBy", "sortBy must be one of: best, price, duration, departure, seats")
	}

	r.validateFilters(errs)

	return errs.OrNil()
}

func (r *SearchFlightsRequest) validateFilters(errs *ValidationErrors) {
	if r.Filters == nil {
		return
	}

	if r.Filters.MaxPrice != nil && *r.Filters.MaxPrice < 0 {
		errs.Add("filters.maxPrice", "maxPrice must be a positive number")
	}

	for i, airline := range r.Filters.Airlines {
		if strings.TrimSpace(airline) == "" {
			errs.Add(fmt.Sprintf("filters.airlines[%d]", i), "airline must not be blank")
		}
	}

	if tr := r.Filters.DepartureTimeRange; tr != nil {
		validateTimeOfDay(errs, "filters.departureTimeRange.start", tr.Start)
		validateTimeOfDay(errs, "filters.departureTimeRange.end", tr.End)
	}

	if dr := r.Filters.DurationRange; dr != nil {
		if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
			errs.Add("filters.durationRange.minMinutes", "minMinutes must be a non-negative number")
		}
		if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
			errs.Add("filters.durationRange.maxMinutes", "maxMinutes must be a non-negative number")
		}
		if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
			errs.Add("filters.durationRange", "minMinutes must be less than or equal to maxMinutes")
		}
	}
}

// Validate validates the booking request.
func (r *BookingRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.UserID <= 0 {
		errs.Add("userId", "userId is required")
	}
	if r.FlightID <= 0 {
		errs.Add("flightId", "flightId is required")
	}

	name := strings.TrimSpace(r.PassengerName)
	switch {
	case name == "":
		errs.Add("passengerName", "passengerName is required")
	case utf8.RuneCountInString(name) > maxPassengerNameLength:
		errs.Add("passengerName", fmt.Sprintf("passengerName cannot exceed %d characters", maxPassengerNameLength))
	case !passengerNamePattern.MatchString(name):
		errs.Add("passengerName", "passengerName may only contain letters and spaces")
	}

	if strings.TrimSpace(r.SeatNumber) == "" {
		errs.Add("seatNumber", "seatNumber is required")
	} else {
		validateSeat(errs, r.SeatNumber)
	}

	if r.TicketClass != "" {
		if _, err := domain.ParseTicketClass(strings.ToUpper(r.TicketClass)); err != nil {
			errs.Add("ticketClass", "ticketClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST_CLASS")
		}
	}

	validateObservations(errs, r.Observations)

	return errs.OrNil()
}

// Validate validates the update request.
func (r *UpdateReservationRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.ReservationID <= 0 {
		errs.Add("reservationId", "reservationId is required")
	}
	if strings.TrimSpace(r.SeatNumber) != "" {
		validateSeat(errs, r.SeatNumber)
	}
	if r.Observations != nil {
		validateObservations(errs, *r.Observations)
	}

	return errs.OrNil()
}

func validateSeat(errs *ValidationErrors, seat string) {
	if !seatNumberPattern.MatchString(strings.TrimSpace(seat)) {
		errs.Add("seatNumber", "seatNumber must be a row number followed by a letter A-F, e.g. 12A")
	}
}

func validateObservations(errs *ValidationErrors, observations string) {
	if utf8.RuneCountInString(observations) > maxObservationsLength {
		errs.Add("observations", fmt.Sprintf("observations cannot exceed %d characters", maxObservationsLength))
	}
}

// ValidateCancelReason checks the optional reason given when cancelling a reservation.
func ValidateCancelReason(reason string) error {
	errs := &ValidationErrors{}
	if utf8.RuneCountInString(reason) > maxObservationsLength {
		errs.Add("reason", fmt.Sprintf("reason cannot exceed %d characters", maxObservationsLength))
	}
	return errs.OrNil()
}

func validateTimeOfDay(errs *ValidationErrors, field, value string) {
	if value == "" {
		errs.Add(field, "time is required when a time range is specified")
		return
	}
	if _, _, ok := parseClock(value); !ok {
		errs.Add(field, "time must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

// parseClock parses HH:MM into hour and minute.
func parseClock(value string) (hour, minute int, ok bool) {
	if !timePattern.MatchString(value) {
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(value, "%02d:%02d", &hour, &minute); err != nil {
		return 0, 0, false
	}
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
