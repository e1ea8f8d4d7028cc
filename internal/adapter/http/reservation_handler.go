package http

import (
	"context"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
)

// ReservationHandler handles the protected reservation endpoints.
type ReservationHandler struct {
	useCase usecase.ReservationUseCase
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(uc usecase.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{useCase: uc}
}

// Create handles POST /api/v1/reservations
//
// @Summary Book a ticket
// @Description Issues a ticket for one seat and records a confirmed reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BookingRequest true "Booking"
// @Success 201 {object} SwaggerReservationResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error or flight not bookable"
// @Failure 401 {object} SwaggerErrorResponse "Missing or invalid token"
// @Failure 404 {object} SwaggerErrorResponse "Flight not found"
// @Failure 409 {object} SwaggerErrorResponse "Seat taken or flight full"
// @Router /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	reservation, err := h.useCase.BookTicket(ctx, ToBookCommand(&req))
	if err != nil {
		return writeError(c, err)
	}

	body, err := h.present(ctx, reservation)
	if err != nil {
		return writeError(c, err)
	}
	return response.Created(c, body, response.MsgReservationCreated)
}

// Update handles PUT /api/v1/reservations
//
// @Summary Change seat or observations
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateReservationRequest true "Changes"
// @Success 200 {object} SwaggerReservationResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error or reservation cancelled"
// @Failure 404 {object} SwaggerErrorResponse "Reservation not found"
// @Failure 409 {object} SwaggerErrorResponse "Seat taken"
// @Router /reservations [put]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req UpdateReservationRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	reservation, err := h.useCase.UpdateReservation(ctx, ToUpdateCommand(&req))
	if err != nil {
		return writeError(c, err)
	}

	body, err := h.present(ctx, reservation)
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, body, response.MsgReservationUpdated)
}

// Cancel handles DELETE /api/v1/reservations/:id
//
// @Summary Cancel a reservation
// @Description Cancels the reservation and its ticket and releases the seat
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param reason query string false "Cancellation reason"
// @Success 200 {object} SwaggerMessageResponse
// @Failure 400 {object} SwaggerErrorResponse "Already cancelled or reason too long"
// @Failure 404 {object} SwaggerErrorResponse "Reservation not found"
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}

	reason := c.QueryParam("reason")
	if err := ValidateCancelReason(reason); err != nil {
		return writeError(c, err)
	}

	_, err = h.useCase.CancelReservation(c.Request().Context(), usecase.CancelReservationCommand{
		ReservationID: id,
		Reason:        reason,
	})
	if err != nil {
		return writeError(c, err)
	}
	return response.OK(c, nil, response.MsgReservationCancelled)
}

// ListByUser handles GET /api/v1/reservations/user/:userId
//
// @Summary List a user's reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {object} SwaggerReservationListResponse
// @Failure 400 {object} SwaggerErrorResponse "Invalid user id"
// @Router /reservations/user/{userId} [get]
func (h *ReservationHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return writeError(c, err)
	}

	ctx := c.Request().Context()
	reservations, err := h.useCase.GetUserReservations(ctx, userID)
	if err != nil {
		return writeError(c, err)
	}

	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		body, err := h.present(ctx, r)
		if err != nil {
			return writeError(c, err)
		}
		out = append(out, body)
	}

	msg := response.MsgNoReservationsFound
	if len(out) > 0 {
		msg = fmt.Sprintf(response.MsgReservationsFound, len(out))
	}
	return response.OK(c, out, msg)
}

func (h *ReservationHandler) present(ctx context.Context, r *domain.Reservation) (ReservationResponse, error) {
	details, err := h.useCase.Details(ctx, r)
	if err != nil {
		return ReservationResponse{}, err
	}
	return ToReservationResponse(details), nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
