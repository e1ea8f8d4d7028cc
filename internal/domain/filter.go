package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SortOption defines the available orderings for flight search results.
type SortOption string

const (
	// SortByDeparture sorts by departure time ascending (default)
	SortByDeparture SortOption = "departure"

	// SortByPrice sorts by base fare ascending
	SortByPrice SortOption = "price"

	// SortByDuration sorts by scheduled flight time ascending
	SortByDuration SortOption = "duration"

	// SortBySeats sorts by remaining seats descending
	SortBySeats SortOption = "seats"

	// SortByBestValue sorts by a weighted fare and duration score
	SortByBestValue SortOption = "best"
)

// IsValid checks if the sort option is a known value.
func (s SortOption) IsValid() bool {
	switch s {
	case SortByDeparture, SortByPrice, SortByDuration, SortBySeats, SortByBestValue:
		return true
	default:
		return false
	}
}

// ParseSortOption converts a string to a SortOption.
// Empty or unknown values fall back to SortByDeparture.
func ParseSortOption(s string) SortOption {
	option := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if option.IsValid() {
		return option
	}
	return SortByDeparture
}

// FilterOptions narrows flight search results. Nil fields do not filter.
type FilterOptions struct {
	// MaxPrice drops flights whose base fare is above this amount.
	MaxPrice *decimal.Decimal

	// Airlines keeps only flights operated by one of these airlines (case-insensitive).
	Airlines []string

	// DepartureTimeRange keeps flights whose departure time of day falls in the window.
	DepartureTimeRange *TimeRange

	// DurationRange keeps flights whose scheduled duration falls in the range.
	DurationRange *DurationRange
}

// TimeRange is a time-of-day window. Only hour and minute are compared, in the
// location of Start.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains checks if the time of day of t falls within the range, both ends inclusive.
func (tr *TimeRange) Contains(t time.Time) bool {
	if tr == nil {
		return true
	}
	t = t.In(tr.Start.Location())
	minutes := t.Hour()*60 + t.Minute()
	start := tr.Start.Hour()*60 + tr.Start.Minute()
	end := tr.End.Hour()*60 + tr.End.Minute()
	return minutes >= start && minutes <= end
}

// DurationRange bounds a flight duration in minutes.
type DurationRange struct {
	MinMinutes *int
	MaxMinutes *int
}

// IsValid returns false if either bound is negative or min > max.
func (dr *DurationRange) IsValid() bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && *dr.MinMinutes < 0 {
		return false
	}
	if dr.MaxMinutes != nil && *dr.MaxMinutes < 0 {
		return false
	}
	if dr.MinMinutes != nil && dr.MaxMinutes != nil && *dr.MinMinutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// Contains checks if a duration in minutes falls within the range.
func (dr *DurationRange) Contains(minutes int) bool {
	if dr == nil {
		return true
	}
	if dr.MinMinutes != nil && minutes < *dr.MinMinutes {
		return false
	}
	if dr.MaxMinutes != nil && minutes > *dr.MaxMinutes {
		return false
	}
	return true
}

// IsEmpty reports whether no filter is set.
func (f *FilterOptions) IsEmpty() bool {
	return f == nil ||
		(f.MaxPrice == nil && len(f.Airlines) == 0 && f.DepartureTimeRange == nil && f.DurationRange == nil)
}
