package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs one line per request and puts a
// request-scoped logger carrying the request ID on the request context, where
// handlers and use cases pick it up with zerolog.Ctx.
// Health checks are logged at debug level.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqLog := logger.WithRequestID(log, GetRequestID(c))
			c.SetRequest(req.WithContext(logger.Into(req.Context(), reqLog)))

			if err := next(c); err != nil {
				c.Error(err)
			}

			res := c.Response()
			status := res.Status

			var event *zerolog.Event
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			case strings.HasPrefix(req.URL.Path, "/health"):
				event = reqLog.Debug()
			default:
				event = reqLog.Info()
			}

			if username := GetUsername(c); username != "" {
				event = event.Str("username", username)
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
