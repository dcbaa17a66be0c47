package timeutil

import (
	"log"
	"time"
)

// Loc is the single application time zone. Every "calendar day" computation
// (tap gate, dashboard date filter, export range) goes through this location
// so date boundaries are consistent across the system.
var Loc *time.Location

func init() {
	Loc = time.FixedZone("WIB", 7*60*60) // UTC+7 default until Init runs
}

// Init sets the application time zone from config. Falls back to the fixed
// UTC+7 zone if the name is not in the tz database.
func Init(name string) {
	if name == "" {
		name = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("[Time] Unknown timezone %q, keeping UTC+7 fallback", name)
		return
	}
	Loc = loc
}

// Now returns the current time in the application zone.
func Now() time.Time {
	return time.Now().In(Loc)
}

// ToLocal converts any time to the application zone.
func ToLocal(t time.Time) time.Time {
	return t.In(Loc)
}

// Today returns the current calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format(DateLayout)
}

// DateOf returns the calendar date of t in the application zone.
func DateOf(t time.Time) string {
	return t.In(Loc).Format(DateLayout)
}

// StartOfDay returns 00:00:00 of t's calendar day in the application zone.
func StartOfDay(t time.Time) time.Time {
	lt := t.In(Loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, Loc)
}

// EndOfDay returns the last instant of t's calendar day in the application zone.
func EndOfDay(t time.Time) time.Time {
	lt := t.In(Loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 23, 59, 59, 999999999, Loc)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
)
