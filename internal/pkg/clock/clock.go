package clock

import "time"

// Clock supplies the current instant to code whose output depends on it,
// such as the dashboard's month-over-month windows. Handlers take a Clock
// so tests can pin "now" to an exact calendar position.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the system time normalized to UTC, the timezone every
// calendar window is computed in.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock holds a fixed instant that tests move explicitly.
type FakeClock struct {
	now time.Time
}

// NewFake returns a FakeClock pinned to t. Pass a UTC instant; window
// boundaries are derived in UTC.
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the pinned instant.
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Set repins the clock to t.
func (f *FakeClock) Set(t time.Time) {
	f.now = t
}

// Advance moves the pinned instant forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
