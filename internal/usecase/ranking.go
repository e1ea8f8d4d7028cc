package usecase

import (
	"sort"

	"github.com/airline-booking/airline-ticket-booking/internal/domain"
)

// Best-value weights. Lower fare counts more than shorter flight time.
const (
	weightPrice    = 0.6
	weightDuration = 0.4
)

// SortFlights returns a sorted copy of flights. The sort is stable, so flights
// that compare equal keep their repository order. Unknown options sort by departure.
func SortFlights(flights []*domain.Flight, sortBy domain.SortOption) []*domain.Flight {
	result := make([]*domain.Flight, len(flights))
	copy(result, flights)
	if len(result) < 2 {
		return result
	}

	if !sortBy.IsValid() {
		sortBy = domain.SortByDeparture
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.Amount().LessThan(result[j].Price.Amount())
		})
	case domain.SortByDuration:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DurationMinutes() < result[j].DurationMinutes()
		})
	case domain.SortBySeats:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].AvailableSeats() > result[j].AvailableSeats()
		})
	case domain.SortByBestValue:
		scores := valueScores(result)
		sort.SliceStable(result, func(i, j int) bool {
			return scores[result[i]] < scores[result[j]]
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].DepartureTime.Before(result[j].DepartureTime)
		})
	}
	return result
}

// valueScores computes a score in [0, 1] per flight from the normalized fare
// and duration. Lower is better.
func valueScores(flights []*domain.Flight) map[*domain.Flight]float64 {
	minPrice, maxPrice := flights[0].Price.Amount().InexactFloat64(), flights[0].Price.Amount().InexactFloat64()
	minDur, maxDur := flights[0].DurationMinutes(), flights[0].DurationMinutes()
	for _, f := range flights[1:] {
		p := f.Price.Amount().InexactFloat64()
		minPrice, maxPrice = min(minPrice, p), max(maxPrice, p)
		d := f.DurationMinutes()
		minDur, maxDur = min(minDur, d), max(maxDur, d)
	}

	scores := make(map[*domain.Flight]float64, len(flights))
	for _, f := range flights {
		scores[f] = weightPrice*normalizeValue(f.Price.Amount().InexactFloat64(), minPrice, maxPrice) +
			weightDuration*normalizeValue(float64(f.DurationMinutes()), float64(minDur), float64(maxDur))
	}
	return scores
}

// normalizeValue maps value into [0, 1]. Returns 0 when min == max.
func normalizeValue(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	return (value - min) / (max - min)
}
