package interval

import "time"

// Iter steps a closed interval through consecutive, contiguous,
// non-overlapping spans of the same duration. The sequence is infinite;
// bound it with UntilAfter or stop consuming. Each Iter owns its cursor, so
// restarting means creating a new one.
type Iter struct {
	cur Interval
}

// Iterate returns an iterator over the interval and its successors. Open
// intervals have no duration to step by and fail with ErrNotIterable.
func (iv Interval) Iterate() (*Iter, error) {
	if iv.kind != KindClosed {
		return nil, ErrNotIterable
	}
	return &Iter{cur: iv}, nil
}

// Next yields the current interval and advances the cursor by the full
// duration, so consecutive intervals line up end-to-start with a one-day
// gap between an end and the next start.
func (it *Iter) Next() (Interval, bool) {
	iv := it.cur
	it.cur = Interval{kind: KindClosed, date: iv.dur.AddTo(iv.date), dur: iv.dur}
	return iv, true
}

// UntilAfter bounds the iteration: the sequence stops before yielding any
// interval whose end is at or past the given date (an exclusive bound
// evaluated against each candidate's end). Open intervals fail with
// ErrNotIterable.
func (iv Interval) UntilAfter(date time.Time) (*UntilAfterIter, error) {
	inner, err := iv.Iterate()
	if err != nil {
		return nil, err
	}
	return &UntilAfterIter{inner: inner, until: date}, nil
}

// UntilAfterIter is an Iter bounded by an exclusive end date.
type UntilAfterIter struct {
	inner *Iter
	until time.Time
	done  bool
}

// Next yields the next interval, or false once an interval's end reaches or
// passes the bound.
func (it *UntilAfterIter) Next() (Interval, bool) {
	if it.done {
		return Interval{}, false
	}
	iv, _ := it.inner.Next()
	if end, ok := iv.EndDate().Get(); ok && !end.Before(it.until) {
		it.done = true
		return Interval{}, false
	}
	return iv, true
}

// Collect drains the bounded iterator into a slice.
func (it *UntilAfterIter) Collect() []Interval {
	var out []Interval
	for iv, ok := it.Next(); ok; iv, ok = it.Next() {
		out = append(out, iv)
	}
	return out
}
