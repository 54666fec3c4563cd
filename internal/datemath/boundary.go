package datemath

import "time"

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return Date(year, month+1, 0).Day()
}

// MonthEnd returns the last day of the given month.
func MonthEnd(year int, month time.Month) time.Time {
	return Date(year, month+1, 0)
}

// QuarterMonth returns the first month of the quarter the date falls in.
func QuarterMonth(date time.Time) time.Month {
	return time.Month(1 + 3*((int(date.Month())-1)/3))
}

// BeginningOfYear returns January 1 of the date's year.
func BeginningOfYear(date time.Time) time.Time {
	return Date(date.Year(), time.January, 1)
}

// EndOfYear returns December 31 of the date's year.
func EndOfYear(date time.Time) time.Time {
	return Date(date.Year(), time.December, 31)
}

// BeginningOfQuarter returns the first day of the quarter the date falls in.
func BeginningOfQuarter(date time.Time) time.Time {
	return Date(date.Year(), QuarterMonth(date), 1)
}

// EndOfQuarter returns the last day of the quarter the date falls in.
func EndOfQuarter(date time.Time) time.Time {
	return ShiftMonths(BeginningOfQuarter(date), 3).AddDate(0, 0, -1)
}

// BeginningOfMonth returns the first day of the date's month.
func BeginningOfMonth(date time.Time) time.Time {
	return Date(date.Year(), date.Month(), 1)
}

// EndOfMonth returns the last day of the date's month.
func EndOfMonth(date time.Time) time.Time {
	return MonthEnd(date.Year(), date.Month())
}

// BeginningOfWeek returns the Monday of the date's ISO week.
func BeginningOfWeek(date time.Time) time.Time {
	offset := (int(date.Weekday()) + 6) % 7 // Monday = 0
	return date.AddDate(0, 0, -offset)
}

// EndOfWeek returns the Sunday of the date's ISO week.
func EndOfWeek(date time.Time) time.Time {
	return BeginningOfWeek(date).AddDate(0, 0, 6)
}

// BeginningOfBiweek returns the Monday opening the date's biweek.
//
// Biweeks pair ISO weeks starting from week 1: biweek 1 spans weeks 1-2,
// biweek 26 spans weeks 51-52. A date in an even ISO week therefore belongs
// to the biweek opened by the previous week's Monday.
func BeginningOfBiweek(date time.Time) time.Time {
	monday := BeginningOfWeek(date)
	if _, week := date.ISOWeek(); week%2 == 0 {
		monday = monday.AddDate(0, 0, -7)
	}
	return monday
}

// EndOfBiweek returns the Sunday closing the date's biweek.
func EndOfBiweek(date time.Time) time.Time {
	return BeginningOfBiweek(date).AddDate(0, 0, 13)
}

// ISOWeekStart returns the Monday of the given ISO week.
func ISOWeekStart(year, week int) time.Time {
	// January 4 is always in ISO week 1
	return BeginningOfWeek(Date(year, time.January, 4)).AddDate(0, 0, 7*(week-1))
}

// WeeksInYear returns the number of ISO weeks in the given year, 52 or 53.
func WeeksInYear(year int) int {
	// December 28 is always in the last ISO week of its year
	_, week := Date(year, time.December, 28).ISOWeek()
	return week
}
