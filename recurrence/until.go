package recurrence

import (
	"time"

	"github.com/perioda/calends/bound"
)

// Until wraps any date-producing sequence and suppresses output once a
// value passes its termination bound. Once suppressed, the sequence stays
// exhausted even if the inner sequence would keep producing.
type Until struct {
	until bound.Bound
	inner DateSeq
	done  bool
}

// UntilInclusive bounds seq at date, yielding a value equal to date.
func UntilInclusive(date time.Time, seq DateSeq) *Until {
	return &Until{until: bound.Included(date), inner: seq}
}

// UntilExclusive bounds seq at date, suppressing a value equal to date.
func UntilExclusive(date time.Time, seq DateSeq) *Until {
	return &Until{until: bound.Excluded(date), inner: seq}
}

// Next pulls one date from the inner sequence, reporting false once the
// value compares past the termination bound.
func (u *Until) Next() (time.Time, bool) {
	if u.done {
		return time.Time{}, false
	}
	date, ok := u.inner.Next()
	if !ok || bound.Compare(bound.Included(date), u.until) > 0 {
		u.done = true
		return time.Time{}, false
	}
	return date, true
}
