package timeutil

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := NewRealClock().Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, start, clock.Now())

	clock.Advance(30 * time.Minute)
	assert.Equal(t, start.Add(30*time.Minute), clock.Now())

	clock.AdvanceHours(2)
	assert.Equal(t, start.Add(150*time.Minute), clock.Now())

	clock.Advance(-150 * time.Minute)
	assert.Equal(t, start, clock.Now())

	later := start.AddDate(0, 1, 0)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}

func TestMockClock_ConcurrentAccess(t *testing.T) {
	clock := NewMockClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			clock.Advance(time.Second)
		}()
		go func() {
			defer wg.Done()
			_ = clock.Now()
		}()
	}
	wg.Wait()

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 50, 0, time.UTC), clock.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-03-14T08:00:00Z")
	assert.Equal(t, time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() { NewMockClockFromString("14/03/2026") })
}
