package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the handlers served by the API.
type Handlers struct {
	Auth         *AuthHandler
	Flights      *FlightHandler
	Reservations *ReservationHandler
}

// RouteMiddleware holds the per-route middleware. Nil entries are skipped.
type RouteMiddleware struct {
	// Auth guards the reservation routes.
	Auth echo.MiddlewareFunc

	// LoginRateLimit and ReservationRateLimit keep separate buckets.
	LoginRateLimit       echo.MiddlewareFunc
	ReservationRateLimit echo.MiddlewareFunc
}

// RegisterRoutes registers the versioned API, /health and the swagger UI.
func RegisterRoutes(e *echo.Echo, h Handlers, mw RouteMiddleware) {
	e.GET("/health", h.Flights.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login, compact(mw.LoginRateLimit)...)
	auth.GET("/verify", h.Auth.Verify)

	flights := api.Group("/flights")
	flights.POST("/search", h.Flights.SearchFlights)

	// Auth runs first so a per-user limiter sees the username.
	reservations := api.Group("/reservations", compact(mw.Auth, mw.ReservationRateLimit)...)
	reservations.POST("", h.Reservations.Create)
	reservations.PUT("", h.Reservations.Update)
	reservations.DELETE("/:id", h.Reservations.Cancel)
	reservations.GET("/user/:userId", h.Reservations.ListByUser)
}

func compact(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}
