// Package duration implements RelativeDuration, a compound signed duration
// of months, weeks and days.
//
// Unlike time.Duration, a RelativeDuration has no fixed length in absolute
// time: a month is a month, whether it has 28 or 31 days. Components are
// independent and never carry into each other; 40 days is 40 days, not one
// month and some days. Each component may be signed on its own, so a
// duration of "one month back two days" is a single value:
//
//	rd := duration.Months(1).WithDays(-2)
//	rd.AddTo(datemath.Date(2022, 1, 1)) // 2022-01-30
package duration

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/mo"

	"github.com/perioda/calends/internal/datemath"
)

// MaxComponent is the largest magnitude a single component may hold.
// Magnitudes are constrained to 20 bits so durations stay well inside the
// range of representable date arithmetic.
const MaxComponent = 1<<20 - 1

// RelativeDuration is a compound duration of months, weeks and days, each
// independently signed. It is an immutable value; the WithX builders return
// new values. The zero value is the zero duration.
type RelativeDuration struct {
	months int32
	weeks  int32
	days   int32
}

// FromMWD builds a duration from months, weeks and days. It panics when a
// component magnitude exceeds MaxComponent; that is a programmer error, use
// FromMWDChecked for untrusted magnitudes.
func FromMWD(months, weeks, days int) RelativeDuration {
	rd, ok := FromMWDChecked(months, weeks, days).Get()
	if !ok {
		panic(fmt.Sprintf("duration: component out of range in (%d, %d, %d)", months, weeks, days))
	}
	return rd
}

// FromMWDChecked builds a duration from months, weeks and days, returning
// None when a component magnitude exceeds MaxComponent.
func FromMWDChecked(months, weeks, days int) mo.Option[RelativeDuration] {
	for _, c := range [3]int{months, weeks, days} {
		if c > MaxComponent || c < -MaxComponent {
			return mo.None[RelativeDuration]()
		}
	}
	return mo.Some(RelativeDuration{months: int32(months), weeks: int32(weeks), days: int32(days)})
}

// Years builds a duration of whole years, stored as months.
func Years(years int) RelativeDuration {
	return FromMWD(12*years, 0, 0)
}

// Months builds a duration of whole months.
func Months(months int) RelativeDuration {
	return FromMWD(months, 0, 0)
}

// Weeks builds a duration of whole weeks.
func Weeks(weeks int) RelativeDuration {
	return FromMWD(0, weeks, 0)
}

// Days builds a duration of whole days.
func Days(days int) RelativeDuration {
	return FromMWD(0, 0, days)
}

// Zero returns the zero duration, the identity for Add.
func Zero() RelativeDuration {
	return RelativeDuration{}
}

// WithMonths returns a copy with the months component replaced.
func (rd RelativeDuration) WithMonths(months int) RelativeDuration {
	return FromMWD(months, int(rd.weeks), int(rd.days))
}

// WithWeeks returns a copy with the weeks component replaced.
func (rd RelativeDuration) WithWeeks(weeks int) RelativeDuration {
	return FromMWD(int(rd.months), weeks, int(rd.days))
}

// WithDays returns a copy with the days component replaced.
func (rd RelativeDuration) WithDays(days int) RelativeDuration {
	return FromMWD(int(rd.months), int(rd.weeks), days)
}

// NumMonths returns the signed months component.
func (rd RelativeDuration) NumMonths() int { return int(rd.months) }

// NumWeeks returns the signed weeks component.
func (rd RelativeDuration) NumWeeks() int { return int(rd.weeks) }

// NumDays returns the signed days component.
func (rd RelativeDuration) NumDays() int { return int(rd.days) }

// IsZero reports whether all three components are zero.
func (rd RelativeDuration) IsZero() bool {
	return rd == RelativeDuration{}
}

// Add sums two durations component-wise. Panics on component overflow.
func (rd RelativeDuration) Add(other RelativeDuration) RelativeDuration {
	return FromMWD(
		int(rd.months)+int(other.months),
		int(rd.weeks)+int(other.weeks),
		int(rd.days)+int(other.days),
	)
}

// Neg flips the sign of every component.
func (rd RelativeDuration) Neg() RelativeDuration {
	return RelativeDuration{months: -rd.months, weeks: -rd.weeks, days: -rd.days}
}

// Sub subtracts another duration component-wise. Panics on component overflow.
func (rd RelativeDuration) Sub(other RelativeDuration) RelativeDuration {
	return rd.Add(other.Neg())
}

// Mul scales every component by k. Panics on component overflow.
func (rd RelativeDuration) Mul(k int) RelativeDuration {
	return FromMWD(int(rd.months)*k, int(rd.weeks)*k, int(rd.days)*k)
}

// Div divides every component by k, truncating toward zero.
func (rd RelativeDuration) Div(k int) RelativeDuration {
	return FromMWD(int(rd.months)/k, int(rd.weeks)/k, int(rd.days)/k)
}

// AddTo applies the duration to a date: months first, then weeks, then days.
// The order matters. Month shifting pins end-of-month dates to the end of
// the target month (see datemath.ShiftMonths), so the application is not
// generally invertible:
//
//	Months(1).AddTo(2022-01-31)      // 2022-02-28
//	Months(-1).AddTo(2022-02-28)     // 2022-01-31 (pinned, not 01-28)
func (rd RelativeDuration) AddTo(date time.Time) time.Time {
	date = datemath.ShiftMonths(date, int(rd.months))
	date = datemath.ShiftWeeks(date, int(rd.weeks))
	return datemath.ShiftDays(date, int(rd.days))
}

// Between derives the duration from start to end as whole months crossed
// plus remaining whole days. end is exclusive. The result is negative when
// end precedes start.
func Between(start, end time.Time) RelativeDuration {
	if end.Before(start) {
		return Between(end, start).Neg()
	}

	months := 12*(end.Year()-start.Year()) + int(end.Month()) - int(start.Month())
	anchor := datemath.ShiftMonths(start, months)
	if anchor.After(end) {
		months--
		anchor = datemath.ShiftMonths(start, months)
	}
	days := int(end.Sub(anchor).Hours() / 24)
	return FromMWD(months, 0, days)
}

// String renders the duration in words, e.g. "1 month -2 weeks 1 day".
// The zero duration renders as the empty string.
func (rd RelativeDuration) String() string {
	parts := make([]string, 0, 3)
	for _, p := range [3]struct {
		n    int32
		unit string
	}{{rd.months, "month"}, {rd.weeks, "week"}, {rd.days, "day"}} {
		if s := pluralize(p.unit, int(p.n)); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func pluralize(unit string, n int) string {
	switch n {
	case 0:
		return ""
	case 1, -1:
		return fmt.Sprintf("%d %s", n, unit)
	default:
		return fmt.Sprintf("%d %ss", n, unit)
	}
}
