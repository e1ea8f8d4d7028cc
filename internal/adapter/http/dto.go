package http

// FlightResponse is one flight in a search result.
type FlightResponse struct {
	FlightID        int64   `json:"flightId" example:"1"`
	FlightNumber    string  `json:"flightNumber" example:"AV101"`
	Origin          string  `json:"origin" example:"BOG"`
	Destination     string  `json:"destination" example:"MDE"`
	DepartureTime   string  `json:"departureTime" example:"16/10/2026 08:00:00"`
	ArrivalTime     string  `json:"arrivalTime" example:"16/10/2026 09:30:00"`
	DurationMinutes int     `json:"durationMinutes" example:"90"`
	AvailableSeats  int     `json:"availableSeats" example:"50"`
	TotalSeats      int     `json:"totalSeats" example:"50"`
	Price           float64 `json:"price" example:"250000"`
	Currency        string  `json:"currency" example:"COP"`
	Airline         string  `json:"airline" example:"Avianca"`
	Status          string  `json:"status" example:"ACTIVE"`
}

// ReservationResponse is a reservation joined with its ticket and flight.
// Flight and ticket fields are left empty when the referenced row is gone.
type ReservationResponse struct {
	ReservationID   int64    `json:"reservationId" example:"1"`
	UserID          int64    `json:"userId" example:"2"`
	FlightID        int64    `json:"flightId" example:"1"`
	TicketID        int64    `json:"ticketId" example:"1"`
	Status          string   `json:"status" example:"CONFIRMED"`
	Observations    string   `json:"observations,omitempty" example:"Window seat please"`
	ReservationDate string   `json:"reservationDate" example:"15/10/2026 12:00:00"`
	FlightNumber    string   `json:"flightNumber,omitempty" example:"AV101"`
	Origin          string   `json:"origin,omitempty" example:"BOG"`
	Destination     string   `json:"destination,omitempty" example:"MDE"`
	DepartureTime   string   `json:"departureTime,omitempty" example:"16/10/2026 08:00:00"`
	PassengerName   string   `json:"passengerName,omitempty" example:"Juan Pérez"`
	SeatNumber      string   `json:"seatNumber,omitempty" example:"12A"`
	TicketClass     string   `json:"ticketClass,omitempty" example:"ECONOMY"`
	Price           *float64 `json:"price,omitempty" example:"250000"`
	Currency        string   `json:"currency,omitempty" example:"COP"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type" example:"Bearer"`
	Username string `json:"username" example:"user"`
	Role     string `json:"role" example:"USER"`
}

// VerifyResponse reports the owner of a valid token.
type VerifyResponse struct {
	Username string `json:"username" example:"user"`
	Valid    bool   `json:"valid" example:"true"`
}
