// Package clock abstracts wall time so business-day logic stays testable.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a hand-settable Clock for tests.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Set pins the clock to t.
func (c *MockClock) Set(t time.Time) {
	c.now = t
}

// Add advances the clock by d.
func (c *MockClock) Add(d time.Duration) {
	c.now = c.now.Add(d)
}
