// Package integration provides helpers and integration tests for the booking service.
// The tests run the real HTTP stack, use cases, auth and in-memory repositories
// together, with a fixed clock and a recording event publisher.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/airline-booking/airline-ticket-booking/internal/adapter/auth"
	httpAdapter "github.com/airline-booking/airline-ticket-booking/internal/adapter/http"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/middleware"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/http/response"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/repository/memory"
	"github.com/airline-booking/airline-ticket-booking/internal/adapter/repository/seed"
	"github.com/airline-booking/airline-ticket-booking/internal/domain"
	"github.com/airline-booking/airline-ticket-booking/internal/infrastructure/timeutil"
	"github.com/airline-booking/airline-ticket-booking/internal/usecase"
	"github.com/airline-booking/airline-ticket-booking/test/mock"
	"github.com/airline-booking/airline-ticket-booking/test/testutil"
)

// Seeded identifiers, assigned in insertion order by the memory store.
const (
	AdminID = 1
	UserID  = 2
	AV101ID = 1
	AV102ID = 2
	LA201ID = 3
)

// TestServer wraps an Echo instance wired like cmd/server, minus Redis and RabbitMQ.
type TestServer struct {
	Echo         *echo.Echo
	Repos        domain.Repositories
	Clock        *timeutil.MockClock
	Publisher    *mock.Publisher
	Reservations usecase.ReservationUseCase
	Flights      usecase.FlightSearchUseCase
	Auth         usecase.AuthUseCase
}

// NewTestServer builds a server over a freshly seeded memory store.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	store := memory.NewStore()
	repos := store.Repositories()
	clock := timeutil.NewMockClock(testutil.FixedNow)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewJWTService("integration-test-secret-0123456789abcdef", 24*time.Hour, clock)

	if err := seed.Load(context.Background(), repos, hasher, clock); err != nil {
		t.Fatalf("seed: %v", err)
	}

	publisher := mock.NewPublisher()
	cfg := &usecase.Config{Clock: clock, Publisher: publisher}

	ts := &TestServer{
		Repos:        repos,
		Clock:        clock,
		Publisher:    publisher,
		Reservations: usecase.NewReservationUseCase(repos, cfg),
		Flights:      usecase.NewFlightSearchUseCase(repos.Flights, cfg),
		Auth:         usecase.NewAuthUseCase(repos.Users, hasher, tokens, tokens),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, zerolog.Nop())

	httpAdapter.RegisterRoutes(e, httpAdapter.Handlers{
		Auth:         httpAdapter.NewAuthHandler(ts.Auth),
		Flights:      httpAdapter.NewFlightHandler(ts.Flights),
		Reservations: httpAdapter.NewReservationHandler(ts.Reservations),
	}, httpAdapter.RouteMiddleware{
		Auth: middleware.Auth(ts.Auth),
	})
	ts.Echo = e

	return ts
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
	Token  string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	if req.Body != nil {
		body, _ = json.Marshal(req.Body)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if req.Token != "" {
		httpReq.Header.Set(echo.HeaderAuthorization, "Bearer "+req.Token)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Login authenticates a seeded account and returns its token.
func (ts *TestServer) Login(t *testing.T, username string) string {
	t.Helper()
	resp := ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/auth/login",
		Body:   httpAdapter.LoginRequest{Username: username, Password: seed.DemoPassword},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login %s: status %d: %s", username, resp.Code, resp.Body)
	}
	var out httpAdapter.LoginResponse
	if _, err := resp.Decode(&out); err != nil {
		t.Fatalf("login %s: %v", username, err)
	}
	return out.Token
}

// Book posts a booking as the demo user.
func (ts *TestServer) Book(token string, req httpAdapter.BookingRequest) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/reservations",
		Body:   req,
		Token:  token,
	})
}

// SearchRequest posts a flight search.
func (ts *TestServer) SearchRequest(req httpAdapter.SearchFlightsRequest) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/flights/search",
		Body:   req,
	})
}

// Envelope is the decoded response envelope.
type Envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

// Decode parses the envelope and unmarshals its data into out when out is not nil.
func (r Response) Decode(out interface{}) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return env, err
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env, err
		}
	}
	return env, nil
}

// DefaultBooking returns a valid booking on AV101 for the demo user.
func DefaultBooking(seat string) httpAdapter.BookingRequest {
	return httpAdapter.BookingRequest{
		UserID:        UserID,
		FlightID:      AV101ID,
		PassengerName: "Usuario Demo",
		SeatNumber:    seat,
	}
}

// DefaultSearch returns a BOG to MDE search with no date.
func DefaultSearch() httpAdapter.SearchFlightsRequest {
	return httpAdapter.SearchFlightsRequest{Origin: "BOG", Destination: "MDE"}
}

// AvailableSeats reads a flight's remaining inventory straight from the store.
func (ts *TestServer) AvailableSeats(t *testing.T, id domain.FlightID) int {
	t.Helper()
	f, err := ts.Repos.Flights.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("find flight %d: %v", id, err)
	}
	return f.AvailableSeats()
}

// AddFlight saves a flight built from spec and returns it with its id.
func (ts *TestServer) AddFlight(t *testing.T, spec testutil.FlightSpec) *domain.Flight {
	t.Helper()
	f, err := ts.Repos.Flights.Save(context.Background(), testutil.NewFlight(t, spec))
	if err != nil {
		t.Fatalf("save flight: %v", err)
	}
	return f
}
