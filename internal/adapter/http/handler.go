// Package http provides the HTTP handler layer for the booking API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
)

// FlightHandler handles HTTP requests for flight-related endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Lists bookable flights on a route, optionally for one day and party size
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SwaggerFlightListResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 504 {object} SwaggerErrorResponse "Gateway timeout"
// @Router /flights/search [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	query, err := ToSearchQuery(&req)
	if err != nil {
		return writeError(c, err)
	}

	flights, err := h.useCase.Search(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return response.OK(c, ToFlightResponses(flights), searchMessage(len(flights)))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}

func searchMessage(n int) string {
	switch n {
	case 0:
		return response.MsgNoFlightsFound
	case 1:
		return response.MsgFlightFoundSingular
	default:
		return fmt.Sprintf(response.MsgFlightsFound, n)
	}
}

// writeError maps domain and request errors to HTTP responses.
// Anything unrecognized, including illegal state transitions, is a 500.
func writeError(c echo.Context, err error) error {
	var (
		requestErrs *ValidationErrors
		fieldErr    *domain.ValidationError
	)

	switch {
	case errors.As(err, &requestErrs):
		return response.ValidationError(c, requestErrs.ToMap())
	case errors.As(err, &fieldErr):
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})

	case errors.Is(err, domain.ErrFlightNotFound):
		return response.NotFound(c, response.MsgFlightNotFound)
	case errors.Is(err, domain.ErrReservationNotFound):
		return response.NotFound(c, response.MsgReservationNotFound)
	case errors.Is(err, domain.ErrTicketNotFound):
		return response.NotFound(c, response.MsgTicketNotFound)
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, response.MsgUserNotFound)

	case errors.Is(err, domain.ErrSeatAlreadyTaken):
		return response.Conflict(c, response.MsgSeatAlreadyTaken)
	case errors.Is(err, domain.ErrNoSeatsAvailable):
		return response.Conflict(c, response.MsgNoSeatsAvailable)
	case errors.Is(err, domain.ErrInvalidBooking):
		return response.InvalidBooking(c)

	case errors.Is(err, domain.ErrAuthenticationFailed):
		return response.Unauthorized(c, response.MsgAuthFailed)
	case errors.Is(err, domain.ErrInvalidToken):
		return response.Unauthorized(c, response.MsgTokenInvalid)

	case errors.Is(err, domain.ErrInvalidArgument):
		return response.BadRequest(c, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("Unhandled error")
	return response.InternalServerError(c)
}
