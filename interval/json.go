package interval

import (
	"encoding/json"
	"time"
)

// wire is the structured form of an interval: each side an optional date,
// null representing an unbounded bound.
type wire struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// MarshalJSON emits {"start":...,"end":...} with null on an unbounded side. Use
// ISO8601 for the compact textual form.
func (iv Interval) MarshalJSON() ([]byte, error) {
	var w wire
	if d, ok := iv.StartDate().Get(); ok {
		s := d.Format(time.DateOnly)
		w.Start = &s
	}
	if d, ok := iv.EndDate().Get(); ok {
		e := d.Format(time.DateOnly)
		w.End = &e
	}
	return json.Marshal(w)
}

// UnmarshalJSON accepts the structured form. Both sides null is rejected
// with ErrBothUnbounded.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	parse := func(s string) (time.Time, error) {
		return time.ParseInLocation(time.DateOnly, s, time.UTC)
	}

	switch {
	case w.Start == nil && w.End == nil:
		return ErrBothUnbounded
	case w.Start == nil:
		end, err := parse(*w.End)
		if err != nil {
			return err
		}
		*iv = OpenStart(end)
	case w.End == nil:
		start, err := parse(*w.Start)
		if err != nil {
			return err
		}
		*iv = OpenEnd(start)
	default:
		start, err := parse(*w.Start)
		if err != nil {
			return err
		}
		end, err := parse(*w.End)
		if err != nil {
			return err
		}
		*iv = ClosedWithDates(start, end)
	}
	return nil
}
