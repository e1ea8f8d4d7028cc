package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReservationService holds the booking rules that span more than one entity.
// It is stateless and safe for concurrent use.
type ReservationService struct{}

// NewReservationService creates a ReservationService.
func NewReservationService() *ReservationService {
	return &ReservationService{}
}

// ValidateReservation checks that seats can be booked on flight at now.
// Bookability is checked before seat count, so a cancelled flight with seats
// left yields ErrInvalidBooking rather than ErrNoSeatsAvailable.
func (s *ReservationService) ValidateReservation(flight *Flight, seats int, now time.Time) error {
	if !flight.IsBookable(now) {
		return WrapInvalidBooking("flight %s is not available for booking", flight.Number)
	}
	if !flight.HasAvailableSeats(seats) {
		return fmt.Errorf("%w: flight %s has %d seats left, %d requested",
			ErrNoSeatsAvailable, flight.Number, flight.AvailableSeats(), seats)
	}
	return nil
}

// ValidateCancellation rejects reservations that are already cancelled.
func (s *ReservationService) ValidateCancellation(r *Reservation) error {
	if r.IsCancelled() {
		return WrapInvalidBooking("reservation %d is already cancelled", r.ID)
	}
	return nil
}

// ValidateUpdate rejects changes to cancelled reservations.
func (s *ReservationService) ValidateUpdate(r *Reservation) error {
	if r.IsCancelled() {
		return WrapInvalidBooking("cannot update cancelled reservation %d", r.ID)
	}
	return nil
}

// GroupDiscountMinTickets is the smallest group that receives the group discount.
const GroupDiscountMinTickets = 5

var groupDiscountRate = decimal.RequireFromString("0.10")

// PriceCalculator derives ticket prices from a flight's base fare.
type PriceCalculator struct{}

// NewPriceCalculator creates a PriceCalculator.
func NewPriceCalculator() *PriceCalculator {
	return &PriceCalculator{}
}

// CalculatePrice applies the class multiplier to base.
// Economy fares are returned as-is so no rounding is introduced.
func (c *PriceCalculator) CalculatePrice(base Price, class TicketClass) Price {
	if class == TicketClassEconomy {
		return base
	}
	return base.Multiply(class.Multiplier())
}

// ApplyGroupDiscount takes 10% off total when at least five tickets are bought together.
func (c *PriceCalculator) ApplyGroupDiscount(total Price, tickets int) Price {
	if tickets < GroupDiscountMinTickets {
		return total
	}
	discount := total.Amount().Mul(groupDiscountRate)
	return Price{amount: total.Amount().Sub(discount), currency: total.Currency()}
}

// AvailabilityService answers schedule questions about a flight.
type AvailabilityService struct{}

// NewAvailabilityService creates an AvailabilityService.
func NewAvailabilityService() *AvailabilityService {
	return &AvailabilityService{}
}

// IsFlightAvailable reports whether the flight is active, has a seat left and departs after now.
func (s *AvailabilityService) IsFlightAvailable(f *Flight, now time.Time) bool {
	return f.IsActive() && f.HasAvailableSeats(1) && f.DepartureTime.After(now)
}

// CanBeCancelled reports whether the flight itself may still be cancelled.
func (s *AvailabilityService) CanBeCancelled(f *Flight, now time.Time) bool {
	return f.Status != FlightStatusCancelled && f.DepartureTime.After(now)
}

// HoursUntilDeparture returns whole hours between now and departure, truncated toward zero.
// It is negative for flights that already left.
func (s *AvailabilityService) HoursUntilDeparture(f *Flight, now time.Time) int64 {
	return int64(f.DepartureTime.Sub(now) / time.Hour)
}
