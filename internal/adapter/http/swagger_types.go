// Package http provides swagger type definitions for API documentation.
// These types spell out the envelope payloads so swag can document them.
package http

import "github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"

// SwaggerFlightListResponse is the envelope returned by flight search.
// @Description Flight search results
type SwaggerFlightListResponse struct {
	Success bool             `json:"success" example:"true"`
	Message string           `json:"message" example:"Found 2 available flights for your search"`
	Data    []FlightResponse `json:"data"`
}

// SwaggerReservationResponse is the envelope returned for one reservation.
// @Description A reservation with its flight and ticket
type SwaggerReservationResponse struct {
	Success bool                `json:"success" example:"true"`
	Message string              `json:"message" example:"Your reservation has been created successfully"`
	Data    ReservationResponse `json:"data"`
}

// SwaggerReservationListResponse is the envelope returned for a user's reservations.
// @Description Reservations owned by a user
type SwaggerReservationListResponse struct {
	Success bool                  `json:"success" example:"true"`
	Message string                `json:"message" example:"Found 1 reservation(s) for the user"`
	Data    []ReservationResponse `json:"data"`
}

// SwaggerLoginResponse is the envelope returned by login.
// @Description Issued bearer token
type SwaggerLoginResponse struct {
	Success bool          `json:"success" example:"true"`
	Message string        `json:"message" example:"Login successful. Welcome to the system"`
	Data    LoginResponse `json:"data"`
}

// SwaggerVerifyResponse is the envelope returned by token verification.
// @Description Token verification result
type SwaggerVerifyResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message" example:"Token is valid. Authenticated user: user"`
	Data    VerifyResponse `json:"data"`
}

// SwaggerMessageResponse is an envelope without data.
// @Description Outcome message
type SwaggerMessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Your reservation has been cancelled. The seats have been released"`
}

// SwaggerErrorResponse is the error envelope.
// @Description Error response
type SwaggerErrorResponse struct {
	Success bool                  `json:"success" example:"false"`
	Message string                `json:"message" example:"Validation failed for the data provided"`
	Error   *response.ErrorDetail `json:"error"`
}
