// Package response provides standardized HTTP response builders for the booking API.
// Every body is wrapped in the same envelope so clients can branch on "success".
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standardized API response envelope.
type Response struct {
	// Success indicates whether the request was successful
	Success bool `json:"success"`

	// Data contains the response payload (for successful responses)
	Data interface{} `json:"data,omitempty"`

	// Message is a human-readable summary of the outcome
	Message string `json:"message,omitempty"`

	// Error contains error details (for error responses)
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeInvalidBooking  = "invalid_booking"
	CodeNotFound        = "not_found"
	CodeConflict        = "conflict"
	CodeUnauthorized    = "unauthorized"
	CodeTooManyRequests = "too_many_requests"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Messages used in API responses.
const (
	MsgLoginSucceeded = "Login successful. Welcome to the system"
	MsgAuthFailed     = "The credentials provided are incorrect. Check your username and password"
	MsgTokenInvalid   = "The authentication token is invalid or has expired"
	MsgTokenRequired  = "An authentication token is required to access this resource"
	MsgTokenValid     = "Token is valid. Authenticated user: %s"

	MsgReservationCreated   = "Your reservation has been created successfully"
	MsgReservationUpdated   = "Your reservation has been updated successfully"
	MsgReservationCancelled = "Your reservation has been cancelled. The seats have been released"
	MsgReservationNotFound  = "No reservation was found with the given ID"
	MsgReservationsFound    = "Found %d reservation(s) for the user"
	MsgNoReservationsFound  = "The user has no reservations"

	MsgFlightNotFound      = "The requested flight was not found"
	MsgFlightsFound        = "Found %d available flights for your search"
	MsgFlightFoundSingular = "Found 1 available flight for your search"
	MsgNoFlightsFound      = "No flights were found for the given search criteria"

	MsgNoSeatsAvailable = "There are no seats available on the selected flight"
	MsgSeatAlreadyTaken = "The selected seat is already taken. Please choose another seat"
	MsgInvalidBooking   = "The booking data is invalid. Check the information provided"

	MsgUserNotFound   = "The specified user was not found"
	MsgTicketNotFound = "The specified ticket was not found"

	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Validation failed for the data provided"
	MsgInvalidArgument    = "The argument provided is not valid"
	MsgTooManyRequests    = "Too many requests. Please try again later"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An internal server error occurred. Please try again later"
)

// Success creates a successful response envelope.
func Success(data interface{}, message string) *Response {
	return &Response{
		Success: true,
		Data:    data,
		Message: message,
	}
}

// Failure creates a failed response envelope.
func Failure(code, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Message: message,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// OK writes a 200 OK envelope with data and message.
func OK(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Success(data, message))
}

// Created writes a 201 Created envelope with data and message.
func Created(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusCreated, Success(data, message))
}

// NoContent writes a 204 No Content response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
