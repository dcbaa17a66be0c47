package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOfCrossesMidnightBoundary(t *testing.T) {
	Init("Asia/Jakarta")

	// 18:30 UTC is already the next day in UTC+7
	utc := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-02", DateOf(utc))

	// 16:59 UTC is still the same day
	utc = time.Date(2025, 6, 1, 16, 59, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-01", DateOf(utc))
}

func TestInitUnknownZoneKeepsFallback(t *testing.T) {
	Init("Asia/Jakarta")
	before := Loc

	Init("Not/AZone")
	assert.Equal(t, before, Loc)
}

func TestStartAndEndOfDay(t *testing.T) {
	Init("Asia/Jakarta")

	ts := time.Date(2025, 6, 1, 10, 15, 0, 0, Loc)
	start := StartOfDay(ts)
	end := EndOfDay(ts)

	assert.Equal(t, "2025-06-01 00:00:00", start.Format(DateTimeLayout))
	assert.Equal(t, "2025-06-01 23:59:59", end.Format(DateTimeLayout))
	assert.True(t, end.After(start))
}
