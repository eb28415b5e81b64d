package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDayAndNextDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	ts := time.Date(2026, 3, 14, 23, 59, 59, 999, loc)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, loc), StartOfDay(ts))
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, loc), NextDay(ts))
}

func TestNextDay_MonthBoundary(t *testing.T) {
	ts := time.Date(2026, 1, 31, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), NextDay(ts))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	c := &FixedClock{T: at}
	assert.Equal(t, at, c.Now())

	c.T = at.Add(time.Hour)
	assert.Equal(t, at.Add(time.Hour), c.Now())
}

func TestNewSessionID_Unique(t *testing.T) {
	a, b := NewSessionID(), NewSessionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 27)
}
