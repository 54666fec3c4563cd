package interval

import "time"

// IntervalWithStart is a narrowing view over an Interval whose start bound
// is statically guaranteed, so Start needs no optional wrapper.
type IntervalWithStart struct {
	Interval
}

// NewIntervalWithStart narrows iv to a start-guaranteed view. It fails with
// ErrNoStart when iv is unbounded on the start side.
func NewIntervalWithStart(iv Interval) (IntervalWithStart, error) {
	if iv.Kind() == KindOpenStart {
		return IntervalWithStart{}, ErrNoStart
	}
	return IntervalWithStart{Interval: iv}, nil
}

// Start returns the guaranteed start date.
func (iv IntervalWithStart) Start() time.Time {
	return iv.StartDate().MustGet()
}

// IntervalWithEnd is a narrowing view over an Interval whose end bound is
// statically guaranteed, so End needs no optional wrapper.
type IntervalWithEnd struct {
	Interval
}

// NewIntervalWithEnd narrows iv to an end-guaranteed view. It fails with
// ErrNoEnd when iv is unbounded on the end side.
func NewIntervalWithEnd(iv Interval) (IntervalWithEnd, error) {
	if iv.Kind() == KindOpenEnd {
		return IntervalWithEnd{}, ErrNoEnd
	}
	return IntervalWithEnd{Interval: iv}, nil
}

// End returns the guaranteed inclusive end date.
func (iv IntervalWithEnd) End() time.Time {
	return iv.EndDate().MustGet()
}
