package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, Failure(code, message, details))
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// InvalidBooking writes a 400 Bad Request response for a rejected booking.
func InvalidBooking(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidBooking, MsgInvalidBooking, nil)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// Conflict writes a 409 Conflict response.
func Conflict(c echo.Context, message string) error {
	return fail(c, http.StatusConflict, CodeConflict, message, nil)
}

// Unauthorized writes a 401 Unauthorized response.
func Unauthorized(c echo.Context, message string) error {
	return fail(c, http.StatusUnauthorized, CodeUnauthorized, message, nil)
}

// TooManyRequests writes a 429 response and sets Retry-After in whole seconds.
func TooManyRequests(c echo.Context, retryAfter time.Duration) error {
	secs := int(retryAfter.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	c.Response().Header().Set("Retry-After", strconv.Itoa(secs))
	return fail(c, http.StatusTooManyRequests, CodeTooManyRequests, MsgTooManyRequests, nil)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
