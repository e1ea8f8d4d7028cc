package http

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
)

const tokenType = "Bearer"

// ToSearchQuery converts a validated SearchFlightsRequest to a use case query.
// City names are normalized to IATA codes.
func ToSearchQuery(req *SearchFlightsRequest) (usecase.SearchFlightsQuery, error) {
	query := usecase.SearchFlightsQuery{
		Origin:      domain.NormalizeCityCode(req.Origin),
		Destination: domain.NormalizeCityCode(req.Destination),
		Passengers:  req.Passengers,
		Filters:     ToDomainFilters(req.Filters),
		SortBy:      domain.ParseSortOption(strings.ToLower(req.SortBy)),
	}
	if req.DepartureDate != "" {
		date, err := timeutil.ParseDisplay(req.DepartureDate)
		if err != nil {
			return usecase.SearchFlightsQuery{}, domain.NewValidationError("departureDate", "must be in dd/MM/yyyy HH:mm:ss format")
		}
		query.DepartureDate = &date
	}
	return query, nil
}

// ToDomainFilters converts a FilterDTO to domain.FilterOptions.
func ToDomainFilters(dto *FilterDTO) *domain.FilterOptions {
	if dto == nil {
		return nil
	}

	opts := &domain.FilterOptions{
		Airlines: dto.Airlines,
	}
	if dto.MaxPrice != nil {
		maxPrice := decimal.NewFromFloat(*dto.MaxPrice)
		opts.MaxPrice = &maxPrice
	}
	if dto.DepartureTimeRange != nil {
		opts.DepartureTimeRange = toDomainTimeRange(dto.DepartureTimeRange)
	}
	if dto.DurationRange != nil {
		opts.DurationRange = &domain.DurationRange{
			MinMinutes: dto.DurationRange.MinMinutes,
			MaxMinutes: dto.DurationRange.MaxMinutes,
		}
	}
	return opts
}

// toDomainTimeRange builds a time-of-day window in the display location.
func toDomainTimeRange(dto *TimeRangeDTO) *domain.TimeRange {
	loc := timeutil.DisplayLocation()
	startH, startM, _ := parseClock(dto.Start)
	endH, endM, _ := parseClock(dto.End)
	return &domain.TimeRange{
		Start: time.Date(0, 1, 1, startH, startM, 0, 0, loc),
		End:   time.Date(0, 1, 1, endH, endM, 0, 0, loc),
	}
}

// ToBookCommand converts a BookingRequest. The ticket class defaults to ECONOMY.
func ToBookCommand(req *BookingRequest) usecase.BookTicketCommand {
	class := strings.ToUpper(strings.TrimSpace(req.TicketClass))
	if class == "" {
		class = domain.TicketClassEconomy.String()
	}
	return usecase.BookTicketCommand{
		UserID:        req.UserID,
		FlightID:      req.FlightID,
		PassengerName: strings.TrimSpace(req.PassengerName),
		SeatNumber:    strings.TrimSpace(req.SeatNumber),
		TicketClass:   class,
		Observations:  req.Observations,
	}
}

// ToUpdateCommand converts an UpdateReservationRequest.
func ToUpdateCommand(req *UpdateReservationRequest) usecase.UpdateReservationCommand {
	return usecase.UpdateReservationCommand{
		ReservationID: req.ReservationID,
		SeatNumber:    strings.TrimSpace(req.SeatNumber),
		Observations:  req.Observations,
	}
}

// ToFlightResponse converts a domain flight.
func ToFlightResponse(f *domain.Flight) FlightResponse {
	return FlightResponse{
		FlightID:        int64(f.ID),
		FlightNumber:    f.Number.String(),
		Origin:          f.Origin.String(),
		Destination:     f.Destination.String(),
		DepartureTime:   timeutil.FormatDisplay(f.DepartureTime),
		ArrivalTime:     timeutil.FormatDisplay(f.ArrivalTime),
		DurationMinutes: f.DurationMinutes(),
		AvailableSeats:  f.AvailableSeats(),
		TotalSeats:      f.TotalSeats(),
		Price:           f.Price.Amount().InexactFloat64(),
		Currency:        f.Price.Currency(),
		Airline:         f.Airline.String(),
		Status:          f.Status.String(),
	}
}

// ToFlightResponses converts a slice of domain flights.
func ToFlightResponses(flights []*domain.Flight) []FlightResponse {
	out := make([]FlightResponse, len(flights))
	for i, f := range flights {
		out[i] = ToFlightResponse(f)
	}
	return out
}

// ToReservationResponse flattens reservation details.
func ToReservationResponse(d *usecase.ReservationDetails) ReservationResponse {
	r := d.Reservation
	out := ReservationResponse{
		ReservationID:   int64(r.ID),
		UserID:          int64(r.UserID),
		FlightID:        int64(r.FlightID),
		TicketID:        int64(r.TicketID),
		Status:          r.Status().String(),
		Observations:    r.Observations,
		ReservationDate: timeutil.FormatDisplay(r.ReservationDate),
	}

	if f := d.Flight; f != nil {
		out.FlightNumber = f.Number.String()
		out.Origin = f.Origin.String()
		out.Destination = f.Destination.String()
		out.DepartureTime = timeutil.FormatDisplay(f.DepartureTime)
	}

	if t := d.Ticket; t != nil {
		price := t.Price.Amount().InexactFloat64()
		out.PassengerName = t.PassengerName
		out.SeatNumber = t.SeatNumber().String()
		out.TicketClass = t.Class.String()
		out.Price = &price
		out.Currency = t.Price.Currency()
	}

	return out
}

// ToLoginResponse converts an AuthResult.
func ToLoginResponse(res *usecase.AuthResult) LoginResponse {
	return LoginResponse{
		Token:    res.Token,
		Type:     tokenType,
		Username: res.Username.String(),
		Role:     res.Role.String(),
	}
}
