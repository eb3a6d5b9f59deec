// Package dateutil provides calendar helpers for month-granular
// financial projections. All projection arithmetic works on
// first-of-month dates in UTC.
package dateutil

import "time"

// FirstOfMonth truncates a date to the first day of its month in UTC.
func FirstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the first-of-month date n months after t.
func AddMonths(t time.Time, n int) time.Time {
	return FirstOfMonth(t).AddDate(0, n, 0)
}

// MonthsBetween returns the number of whole calendar months from a to b.
// The result is negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// SameMonth reports whether two dates fall in the same (year, month).
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AgeAt returns the completed age in years at the given date.
func AgeAt(birth, at time.Time) int {
	age := at.Year() - birth.Year()
	if at.Month() < birth.Month() || (at.Month() == birth.Month() && at.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// MonthIndex maps a (year, month) pair onto a single comparable integer.
func MonthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}
