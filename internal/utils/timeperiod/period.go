// Package timeperiod holds the calendar-day arithmetic shared by the
// reporting services: day boundaries in the store's timezone, the default
// reporting window and the derivation of the previous comparison window.
package timeperiod

import "time"

// DayStart returns midnight of t's calendar day in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the last instant of t's calendar day in t's location.
func DayEnd(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// MonthStart returns midnight of the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole calendar days from from's day to to's day.
// Equal days yield 0. The count is calendar-based, so DST shifts inside the
// range do not skew it.
func DaysBetween(from, to time.Time) int {
	f := DayStart(from)
	t := DayStart(to)
	days := 0
	for f.Before(t) {
		f = f.AddDate(0, 0, 1)
		days++
	}
	return days
}

// Default is the system default reporting window: start of the current month
// through the end of today. The cached report snapshot is only valid for
// exactly this window.
func Default(now time.Time) (from, to time.Time) {
	return MonthStart(now), DayEnd(now)
}

// IsDefault reports whether [from, to] equals the default window by calendar
// day, ignoring the time-of-day of the bounds.
func IsDefault(from, to, now time.Time) bool {
	defFrom, defTo := Default(now)
	return SameDay(from, defFrom) && SameDay(to, defTo)
}

// Previous derives the comparison window: the immediately preceding window of
// equal day-count, ending the day before from.
func Previous(from, to time.Time) (time.Time, time.Time) {
	length := DaysBetween(from, to) + 1
	prevEnd := DayEnd(from.AddDate(0, 0, -1))
	prevStart := DayStart(from.AddDate(0, 0, -length))
	return prevStart, prevEnd
}
