package usecase

import (
	"strings"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// ApplyFilters returns the flights that match every filter in opts.
// A nil or empty opts returns flights unchanged. The input slice is not modified.
func ApplyFilters(flights []*domain.Flight, opts *domain.FilterOptions) []*domain.Flight {
	if opts.IsEmpty() {
		return flights
	}

	var airlineSet map[string]struct{}
	if len(opts.Airlines) > 0 {
		airlineSet = buildAirlineSet(opts.Airlines)
	}

	result := make([]*domain.Flight, 0, len(flights))
	for _, f := range flights {
		if passesAllFilters(f, opts, airlineSet) {
			result = append(result, f)
		}
	}
	return result
}

func passesAllFilters(f *domain.Flight, opts *domain.FilterOptions, airlineSet map[string]struct{}) bool {
	if opts.MaxPrice != nil && f.Price.Amount().GreaterThan(*opts.MaxPrice) {
		return false
	}
	if airlineSet != nil && !isAirlineInSet(f.Airline.String(), airlineSet) {
		return false
	}
	if opts.DepartureTimeRange != nil && !opts.DepartureTimeRange.Contains(f.DepartureTime) {
		return false
	}
	if opts.DurationRange != nil && !opts.DurationRange.Contains(f.DurationMinutes()) {
		return false
	}
	return true
}

// buildAirlineSet creates a case-insensitive lookup set of airline names.
func buildAirlineSet(airlines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(airlines))
	for _, name := range airlines {
		set[strings.ToUpper(strings.TrimSpace(name))] = struct{}{}
	}
	return set
}

func isAirlineInSet(name string, set map[string]struct{}) bool {
	_, ok := set[strings.ToUpper(name)]
	return ok
}
