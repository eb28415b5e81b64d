package utils

import "time"

// Clock abstracts the current time so quota windows can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in the server's local time zone.
type SystemClock struct{}

// Now implements [Clock].
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant. Set T to move it.
type FixedClock struct {
	T time.Time
}

// Now implements [Clock].
func (c *FixedClock) Now() time.Time {
	return c.T
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// NextDay returns midnight of the calendar day following t.
func NextDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
