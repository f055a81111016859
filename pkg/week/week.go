// Package week holds calendar arithmetic for Monday-first weeks.
//
// Every function works in the location of its argument, so a date keeps
// its wall-clock day. Steps are done with time.Date and AddDate, never by
// adding multiples of 24h, which keeps results stable across DST changes.
package week

import (
	"time"
)

const (
	// KeyLayout is the canonical YYYY-MM-DD form used on the wire and as join key
	KeyLayout     = "2006-01-02"
	displayLayout = "Jan 2"
	DaysInWeek    = 7
)

var DayLabels = [DaysInWeek]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

// Day truncates t to midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Start returns Monday 00:00 of the week containing t.
func Start(t time.Time) time.Time {
	// Sunday is 0 in time.Weekday, it belongs to the week started six days before
	offset := (int(t.Weekday()) + 6) % DaysInWeek
	y, m, d := t.Date()
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// End returns Sunday 00:00 of the week starting at weekStart.
func End(weekStart time.Time) time.Time {
	return Start(weekStart).AddDate(0, 0, DaysInWeek-1)
}

// Shift moves a week start by n weeks (negative is backward).
func Shift(weekStart time.Time, n int) time.Time {
	return Start(weekStart).AddDate(0, 0, n*DaysInWeek)
}

// Dates lists Monday..Sunday of the week starting at weekStart.
func Dates(weekStart time.Time) [DaysInWeek]time.Time {
	var dates [DaysInWeek]time.Time
	monday := Start(weekStart)
	for i := range DaysInWeek {
		dates[i] = monday.AddDate(0, 0, i)
	}
	return dates
}

func FormatKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses YYYY-MM-DD as midnight in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(KeyLayout, key, loc)
}

// FormatDisplay gives a short form like "Jan 5". Only for output.
func FormatDisplay(t time.Time) string {
	return t.Format(displayLayout)
}

func IsCurrentWeek(weekStart time.Time) bool {
	return IsCurrentWeekAt(weekStart, time.Now())
}

func IsCurrentWeekAt(weekStart, now time.Time) bool {
	return FormatKey(weekStart) == FormatKey(Start(now.In(weekStart.Location())))
}

func IsFutureWeek(weekStart time.Time) bool {
	return IsFutureWeekAt(weekStart, time.Now())
}

func IsFutureWeekAt(weekStart, now time.Time) bool {
	return weekStart.After(Start(now.In(weekStart.Location())))
}

func IsToday(t, now time.Time) bool {
	return FormatKey(t) == FormatKey(now.In(t.Location()))
}

// Contains reports whether key (YYYY-MM-DD) lies within the week starting at weekStart.
// Lexical order of keys equals chronological order.
func Contains(weekStart time.Time, key string) bool {
	return key >= FormatKey(Start(weekStart)) && key <= FormatKey(End(weekStart))
}
