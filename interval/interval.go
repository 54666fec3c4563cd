// Package interval models spans of dates on the proleptic Gregorian
// calendar. An Interval is one of three shapes: Closed with both a start and
// an end, OpenStart with only an end, or OpenEnd with only a start.
//
// A closed interval is stored as its start date plus the RelativeDuration
// spanning it; the end is always derived, never stored, so the three
// construction rules (start+duration, end+duration, start+end) stay
// consistent with each other. Closed intervals are inclusive on both ends
// and can be stepped into a sequence of contiguous, non-overlapping spans of
// the same duration:
//
//	iter, _ := interval.ClosedFromStart(start, duration.Months(1)).UntilAfter(cutoff)
//	for iv, ok := iter.Next(); ok; iv, ok = iter.Next() { ... }
package interval

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/perioda/calends/bound"
	"github.com/perioda/calends/duration"
)

var (
	// ErrNotIterable is returned when iteration is requested on an open
	// interval, which has no duration to step by.
	ErrNotIterable = errors.New("interval: open interval is not iterable")

	// ErrNoStart is returned when narrowing an interval without a start
	// bound to IntervalWithStart.
	ErrNoStart = errors.New("interval: interval has no start bound")

	// ErrNoEnd is returned when narrowing an interval without an end bound
	// to IntervalWithEnd.
	ErrNoEnd = errors.New("interval: interval has no end bound")

	// ErrBothUnbounded is returned when decoding an interval with neither a
	// start nor an end; no variant represents that shape.
	ErrBothUnbounded = errors.New("interval: interval unbounded on both sides")
)

// Kind discriminates the three interval shapes.
type Kind int

const (
	KindClosed Kind = iota
	KindOpenStart
	KindOpenEnd
)

// Interval is a span of dates, possibly unbounded on one side. The zero
// value is a degenerate closed interval of one day at the zero date; build
// intervals with the constructors.
type Interval struct {
	kind Kind
	// start for Closed and OpenEnd, end for OpenStart
	date time.Time
	// Closed only
	dur duration.RelativeDuration
}

// ClosedFromStart builds a closed interval from its start date and the
// duration it spans.
func ClosedFromStart(start time.Time, dur duration.RelativeDuration) Interval {
	return Interval{kind: KindClosed, date: start, dur: dur}
}

// ClosedFromEnd builds a closed interval whose inclusive end is the given
// date, subtracting the duration to find the start.
func ClosedFromEnd(end time.Time, dur duration.RelativeDuration) Interval {
	return Interval{kind: KindClosed, date: spanAdjust(end, dur).Neg().AddTo(end), dur: dur}
}

// ClosedWithDates builds a closed interval spanning the two literal dates,
// deriving the duration as the whole months crossed plus remaining days up
// to the exclusive end. When end precedes start the duration runs backwards
// and the exclusive end sits one day before it instead of one day after.
// Either way the derived duration reproduces the same bounds when fed back
// to ClosedFromStart.
func ClosedWithDates(start, end time.Time) Interval {
	excl := 1
	if end.Before(start) {
		excl = -1
	}
	return Interval{kind: KindClosed, date: start, dur: duration.Between(start, end.AddDate(0, 0, excl))}
}

// OpenStart builds an interval unbounded on the start side.
func OpenStart(end time.Time) Interval {
	return Interval{kind: KindOpenStart, date: end}
}

// OpenEnd builds an interval unbounded on the end side.
func OpenEnd(start time.Time) Interval {
	return Interval{kind: KindOpenEnd, date: start}
}

// spanAdjust nudges the duration by one day toward zero so that the derived
// end leaves a one-day gap before the next iterated interval, regardless of
// the duration's direction.
func spanAdjust(anchor time.Time, dur duration.RelativeDuration) duration.RelativeDuration {
	shifted := dur.AddTo(anchor)
	switch {
	case shifted.After(anchor):
		return dur.Add(duration.Days(-1))
	case shifted.Before(anchor):
		return dur.Add(duration.Days(1))
	default:
		return dur
	}
}

// Kind returns the interval's shape.
func (iv Interval) Kind() Kind { return iv.kind }

// Duration returns the duration of a closed interval, or false for the open
// shapes, which have none.
func (iv Interval) Duration() (duration.RelativeDuration, bool) {
	if iv.kind != KindClosed {
		return duration.Zero(), false
	}
	return iv.dur, true
}

// BoundStart returns the start endpoint as a bound.
func (iv Interval) BoundStart() bound.Bound {
	switch iv.kind {
	case KindOpenStart:
		return bound.Unbounded()
	default:
		return bound.Included(iv.date)
	}
}

// BoundEnd returns the end endpoint as a bound.
func (iv Interval) BoundEnd() bound.Bound {
	switch iv.kind {
	case KindClosed:
		return bound.Included(spanAdjust(iv.date, iv.dur).AddTo(iv.date))
	case KindOpenStart:
		return bound.Included(iv.date)
	default:
		return bound.Unbounded()
	}
}

// StartDate returns the start date, or None when the start is unbounded.
func (iv Interval) StartDate() mo.Option[time.Time] {
	return iv.BoundStart().Date()
}

// EndDate returns the inclusive end date, or None when the end is unbounded.
func (iv Interval) EndDate() mo.Option[time.Time] {
	return iv.BoundEnd().Date()
}

// Within reports whether date falls inside the interval, both ends
// inclusive. An unbounded side extends containment to infinity.
func (iv Interval) Within(date time.Time) bool {
	return bound.Within(date, iv.BoundStart(), iv.BoundEnd())
}

// Equal reports whether two intervals have the same shape, anchor date and
// duration.
func (iv Interval) Equal(other Interval) bool {
	return iv.kind == other.kind && iv.date.Equal(other.date) && iv.dur == other.dur
}

// Compare orders two intervals by their (start, end) bound pairs, start
// first.
func Compare(a, b Interval) int {
	return bound.CompareRange(a.BoundStart(), a.BoundEnd(), b.BoundStart(), b.BoundEnd())
}

// ISO8601 renders the interval as "<start>/<end>"; an unbounded side renders
// as "..".
func (iv Interval) ISO8601() string {
	side := func(b bound.Bound) string {
		if d, ok := b.Date().Get(); ok {
			return d.Format(time.DateOnly)
		}
		return ".."
	}
	return fmt.Sprintf("%s/%s", side(iv.BoundStart()), side(iv.BoundEnd()))
}

func (iv Interval) String() string {
	return iv.ISO8601()
}
