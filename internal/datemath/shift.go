// Package datemath provides the primitive date arithmetic the rest of the
// module is built on: month shifting with end-of-month pinning, calendar
// bucket boundaries (week, biweek, month, quarter, year) and ISO week
// helpers.
//
// All functions operate on dates only. Values are expected to be (and are
// produced as) midnight UTC; any time-of-day on the input is discarded by
// Date-producing helpers.
package datemath

import "time"

// Date builds a date value: midnight UTC on the given day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ShiftMonths moves a date by whole months, not by 30 or 31 days.
//
// The day of month is clamped to the target month's length. If the input is
// the last day of its month, the result is the last day of the target month,
// so "end of month" is preserved across shifts:
//
//	ShiftMonths(2022-02-28, 1) == 2022-03-31
//	ShiftMonths(2022-03-31, 1) == 2022-04-30
//	ShiftMonths(2022-01-31, 1) == 2022-02-28
func ShiftMonths(date time.Time, months int) time.Time {
	year := date.Year() + (int(date.Month())+months)/12
	month := (int(date.Month()) + months) % 12
	if month < 1 {
		year--
		month += 12
	}

	var day int
	if date.Day() == DaysInMonth(date.Year(), date.Month()) {
		// the last day of the source month maps to the last day of the
		// target month
		day = DaysInMonth(year, time.Month(month))
	} else {
		day = min(date.Day(), DaysInMonth(year, time.Month(month)))
	}
	return Date(year, time.Month(month), day)
}

// ShiftQuarters moves a date by whole quarters (three months each).
func ShiftQuarters(date time.Time, quarters int) time.Time {
	return ShiftMonths(date, 3*quarters)
}

// ShiftYears moves a date by whole years, clamping Feb 29 as needed.
func ShiftYears(date time.Time, years int) time.Time {
	return ShiftMonths(date, 12*years)
}

// ShiftWeeks moves a date by whole weeks.
func ShiftWeeks(date time.Time, weeks int) time.Time {
	return date.AddDate(0, 0, 7*weeks)
}

// ShiftDays moves a date by whole days.
func ShiftDays(date time.Time, days int) time.Time {
	return date.AddDate(0, 0, days)
}
