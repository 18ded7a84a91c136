package domain

import "time"

// Wire formats for dates. All dates in this system have day granularity.
const (
	DateLayout  = "20060102"
	MonthLayout = "200601"
)

// Day truncates t to UTC midnight, the canonical form for all stored dates.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of the given month.
func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last calendar day of the given month.
func MonthEnd(year int, month time.Month) time.Time {
	return MonthStart(year, month).AddDate(0, 1, -1)
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return MonthEnd(year, month).Day()
}
