package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locationCache stores loaded timezone locations.
var locationCache sync.Map

const (
	// UTC is the Coordinated Universal Time.
	UTC = "UTC"

	// Bogota is the zone flight times are displayed in.
	Bogota = "America/Bogota"
)

// Layouts used on the API surface.
const (
	// DisplayLayout renders timestamps as dd/MM/yyyy HH:mm:ss.
	DisplayLayout = "02/01/2006 15:04:05"

	// DateLayout is the yyyy-MM-dd layout of date query parameters.
	DateLayout = "2006-01-02"
)

// GetLocation returns a cached timezone location.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locationCache.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}

	locationCache.Store(name, loc)
	return loc, nil
}

// MustGetLocation returns a cached timezone location or panics.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// DisplayLocation is the location API timestamps are rendered in.
// It falls back to a fixed UTC-5 zone when tzdata is unavailable.
func DisplayLocation() *time.Location {
	loc, err := GetLocation(Bogota)
	if err != nil {
		return time.FixedZone("COT", -5*60*60)
	}
	return loc
}

// FormatDisplay renders t in the display location using DisplayLayout.
// A zero time renders as an empty string.
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(DisplayLocation()).Format(DisplayLayout)
}

// ParseDisplay parses a DisplayLayout string in the display location.
func ParseDisplay(value string) (time.Time, error) {
	return time.ParseInLocation(DisplayLayout, value, DisplayLocation())
}

// ParseDate parses a yyyy-MM-dd date as midnight in the display location.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, DisplayLocation())
}

// ParseInTimezone parses value with layout in the named timezone.
func ParseInTimezone(layout, value, timezone string) (time.Time, error) {
	loc, err := GetLocation(timezone)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(layout, value, loc)
}

// StartOfDay returns 00:00:00 of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayBounds returns the half-open range [start, end) covering t's calendar day.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := StartOfDay(t)
	return start, start.AddDate(0, 0, 1)
}

// ClearLocationCache drops cached locations.
func ClearLocationCache() {
	locationCache.Range(func(key, _ interface{}) bool {
		locationCache.Delete(key)
		return true
	})
}
