// Package unit buckets dates into fixed calendar grains (year, half,
// quarter, month, ISO week) and materializes each bucket as a closed
// interval. A CalendarUnit is a value like "Q1 2022"; Succ walks to the next
// bucket of the same grain, rolling the year over as needed.
package unit

import (
	"fmt"
	"time"

	"github.com/perioda/calends/duration"
	"github.com/perioda/calends/internal/datemath"
	"github.com/perioda/calends/interval"
)

// Grain is a fixed calendar bucket size.
type Grain int

const (
	GrainDay Grain = iota
	GrainWeek
	GrainMonth
	GrainQuarter
	GrainHalf
	GrainYear
)

// Duration returns the RelativeDuration spanning one bucket of the grain.
func (g Grain) Duration() duration.RelativeDuration {
	switch g {
	case GrainDay:
		return duration.Days(1)
	case GrainWeek:
		return duration.Days(7)
	case GrainMonth:
		return duration.Months(1)
	case GrainQuarter:
		return duration.Months(3)
	case GrainHalf:
		return duration.Months(6)
	case GrainYear:
		return duration.Months(12)
	default:
		panic(fmt.Sprintf("unit: unknown grain %d", g))
	}
}

// periods returns how many buckets of the grain fit in a year, or 0 when the
// count varies by year (weeks).
func (g Grain) periods() int {
	switch g {
	case GrainMonth:
		return 12
	case GrainQuarter:
		return 4
	case GrainHalf:
		return 2
	case GrainYear:
		return 1
	default:
		return 0
	}
}

func (g Grain) String() string {
	switch g {
	case GrainDay:
		return "day"
	case GrainWeek:
		return "week"
	case GrainMonth:
		return "month"
	case GrainQuarter:
		return "quarter"
	case GrainHalf:
		return "half"
	case GrainYear:
		return "year"
	default:
		return fmt.Sprintf("grain(%d)", int(g))
	}
}

// CalendarUnit identifies one bucket: a grain, a year, and the bucket's
// ordinal within the year (1-based; always 1 for years). Week ordinals are
// ISO week numbers against the ISO week-year.
type CalendarUnit struct {
	grain Grain
	year  int
	ord   int
}

// Year builds the bucket for a calendar year.
func Year(year int) CalendarUnit {
	return CalendarUnit{grain: GrainYear, year: year, ord: 1}
}

// Half builds the bucket for a half-year, half 1 or 2.
func Half(year, half int) CalendarUnit {
	return CalendarUnit{grain: GrainHalf, year: year, ord: half}
}

// Quarter builds the bucket for a quarter, 1 through 4.
func Quarter(year, quarter int) CalendarUnit {
	return CalendarUnit{grain: GrainQuarter, year: year, ord: quarter}
}

// Month builds the bucket for a month, 1 through 12.
func Month(year, month int) CalendarUnit {
	return CalendarUnit{grain: GrainMonth, year: year, ord: month}
}

// Week builds the bucket for an ISO week of the given ISO week-year.
func Week(year, week int) CalendarUnit {
	return CalendarUnit{grain: GrainWeek, year: year, ord: week}
}

// YearOf buckets a date into its calendar year.
func YearOf(date time.Time) CalendarUnit {
	return Year(date.Year())
}

// HalfOf buckets a date into its half-year.
func HalfOf(date time.Time) CalendarUnit {
	return Half(date.Year(), (int(date.Month())-1)/6+1)
}

// QuarterOf buckets a date into its quarter.
func QuarterOf(date time.Time) CalendarUnit {
	return Quarter(date.Year(), (int(date.Month())-1)/3+1)
}

// MonthOf buckets a date into its month.
func MonthOf(date time.Time) CalendarUnit {
	return Month(date.Year(), int(date.Month()))
}

// WeekOf buckets a date into its ISO week. Note the ISO week-year can differ
// from the calendar year near year boundaries.
func WeekOf(date time.Time) CalendarUnit {
	y, w := date.ISOWeek()
	return Week(y, w)
}

// Grain returns the bucket's grain.
func (u CalendarUnit) Grain() Grain { return u.grain }

// Year returns the bucket's year (the ISO week-year for weeks).
func (u CalendarUnit) Year() int { return u.year }

// Ordinal returns the bucket's 1-based ordinal within its year.
func (u CalendarUnit) Ordinal() int { return u.ord }

// Start returns the first date of the bucket.
func (u CalendarUnit) Start() time.Time {
	switch u.grain {
	case GrainYear:
		return datemath.Date(u.year, time.January, 1)
	case GrainHalf:
		return datemath.Date(u.year, time.Month(u.ord*6-5), 1)
	case GrainQuarter:
		return datemath.Date(u.year, time.Month(u.ord*3-2), 1)
	case GrainMonth:
		return datemath.Date(u.year, time.Month(u.ord), 1)
	case GrainWeek:
		return datemath.ISOWeekStart(u.year, u.ord)
	default:
		panic(fmt.Sprintf("unit: %v has no bucket start", u.grain))
	}
}

// Interval materializes the bucket as a closed interval spanning exactly one
// grain duration from the bucket start.
func (u CalendarUnit) Interval() interval.Interval {
	return interval.ClosedFromStart(u.Start(), u.grain.Duration())
}

// Succ returns the next bucket of the same grain, rolling into the next
// year when the ordinal passes the grain's period count. Week rollover uses
// the ISO week count of the current week-year (52 or 53).
func (u CalendarUnit) Succ() CalendarUnit {
	limit := u.grain.periods()
	if u.grain == GrainWeek {
		limit = datemath.WeeksInYear(u.year)
	}
	if u.ord >= limit {
		return CalendarUnit{grain: u.grain, year: u.year + 1, ord: 1}
	}
	return CalendarUnit{grain: u.grain, year: u.year, ord: u.ord + 1}
}

// String renders labels like "2022", "2022-H1", "2022-Q4", "2022-M07" and
// "2022-W52".
func (u CalendarUnit) String() string {
	switch u.grain {
	case GrainYear:
		return fmt.Sprintf("%d", u.year)
	case GrainHalf:
		return fmt.Sprintf("%d-H%d", u.year, u.ord)
	case GrainQuarter:
		return fmt.Sprintf("%d-Q%d", u.year, u.ord)
	case GrainMonth:
		return fmt.Sprintf("%d-M%02d", u.year, u.ord)
	case GrainWeek:
		return fmt.Sprintf("%d-W%02d", u.year, u.ord)
	default:
		return fmt.Sprintf("%d-%s%d", u.year, u.grain, u.ord)
	}
}
