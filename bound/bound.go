// Package bound models one endpoint of a date range: a date that is included,
// a date that is excluded, or no bound at all. A single pair of comparators
// orders bounds in their two roles, as the start or as the end of a range,
// which is what interval containment and recurrence termination are both
// built on.
package bound

import (
	"time"

	"github.com/samber/mo"
)

// Kind discriminates the three bound variants.
type Kind int

const (
	KindIncluded Kind = iota
	KindExcluded
	KindUnbounded
)

// Bound is one endpoint of a date range. The zero value is Unbounded.
type Bound struct {
	kind Kind
	date time.Time
}

// Included bounds the range at date, with date inside it.
func Included(date time.Time) Bound {
	return Bound{kind: KindIncluded, date: date}
}

// Excluded bounds the range at date, with date just outside it.
func Excluded(date time.Time) Bound {
	return Bound{kind: KindExcluded, date: date}
}

// Unbounded leaves the endpoint open.
func Unbounded() Bound {
	return Bound{kind: KindUnbounded}
}

// Kind returns the bound's variant.
func (b Bound) Kind() Kind { return b.kind }

// Date returns the bounding date, or None for Unbounded.
func (b Bound) Date() mo.Option[time.Time] {
	if b.kind == KindUnbounded {
		return mo.None[time.Time]()
	}
	return mo.Some(b.date)
}

// rank encodes a bound as a comparable (date, offset) pair for the end role:
// Excluded sits just below its date, Included exactly on it.
func rank(b Bound) (time.Time, int) {
	if b.kind == KindExcluded {
		return b.date, 1
	}
	return b.date, 2
}

// Compare orders two bounds in the end role: Unbounded is greater than
// everything, and an Excluded bound sorts just below an Included bound at
// the same date.
func Compare(a, b Bound) int {
	switch {
	case a.kind == KindUnbounded && b.kind == KindUnbounded:
		return 0
	case a.kind == KindUnbounded:
		return 1
	case b.kind == KindUnbounded:
		return -1
	}
	da, oa := rank(a)
	db, ob := rank(b)
	if c := da.Compare(db); c != 0 {
		return c
	}
	return oa - ob
}

// CompareStart orders two bounds in the start role: Unbounded is less than
// everything, and an Excluded bound sorts just above an Included bound at
// the same date.
func CompareStart(a, b Bound) int {
	switch {
	case a.kind == KindUnbounded && b.kind == KindUnbounded:
		return 0
	case a.kind == KindUnbounded:
		return -1
	case b.kind == KindUnbounded:
		return 1
	}
	da, oa := rank(a)
	db, ob := rank(b)
	if c := da.Compare(db); c != 0 {
		return c
	}
	// offsets flip for the start role
	return ob - oa
}

// CompareRange orders two (start, end) bound pairs, start first.
func CompareRange(start1, end1, start2, end2 Bound) int {
	if c := CompareStart(start1, start2); c != 0 {
		return c
	}
	return Compare(end1, end2)
}

// Within reports whether date falls inside [start, end], honoring each
// bound's kind. An Unbounded side extends the range to infinity in that
// direction.
func Within(date time.Time, start, end Bound) bool {
	item := Included(date)
	return CompareStart(item, start) >= 0 && Compare(item, end) <= 0
}
