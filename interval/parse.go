package interval

import (
	"errors"
	"strings"
	"time"

	"github.com/perioda/calends/duration"
)

// Parse reads the textual interval forms:
//
//	<start>/<end>      two YYYY-MM-DD dates, ClosedWithDates
//	<start>/<duration> a date and an ISO 8601 duration, ClosedFromStart
//	../<end>           open start
//	<start>/..         open end
//
// "../.." is rejected with ErrBothUnbounded since no variant represents it.
// Malformed input fails with a *duration.ParseError carrying the offset.
func Parse(s string) (Interval, error) {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return Interval{}, &duration.ParseError{Input: s, Offset: len(s), Msg: "expected '/' separator"}
	}
	left, right := s[:slash], s[slash+1:]

	if left == ".." {
		if right == ".." {
			return Interval{}, ErrBothUnbounded
		}
		end, err := parseDate(s, slash+1)
		if err != nil {
			return Interval{}, err
		}
		return OpenStart(end), nil
	}

	start, err := parseDate(s, 0)
	if err != nil {
		return Interval{}, err
	}

	switch {
	case right == "..":
		return OpenEnd(start), nil
	case strings.HasPrefix(right, "P"):
		dur, err := duration.ParseISO8601(right)
		if err != nil {
			// rebase the error onto the whole input so its offset lines up
			// with the date errors
			var perr *duration.ParseError
			if errors.As(err, &perr) {
				return Interval{}, &duration.ParseError{Input: s, Offset: slash + 1 + perr.Offset, Msg: perr.Msg}
			}
			return Interval{}, err
		}
		return ClosedFromStart(start, dur), nil
	default:
		end, err := parseDate(s, slash+1)
		if err != nil {
			return Interval{}, err
		}
		return ClosedWithDates(start, end), nil
	}
}

// parseDate reads a YYYY-MM-DD date at pos, normalized to midnight UTC.
func parseDate(s string, pos int) (time.Time, error) {
	lit := s[pos:]
	if i := strings.IndexByte(lit, '/'); i >= 0 {
		lit = lit[:i]
	}
	d, err := time.ParseInLocation(time.DateOnly, lit, time.UTC)
	if err != nil {
		return time.Time{}, &duration.ParseError{Input: s, Offset: pos, Msg: "expected YYYY-MM-DD date"}
	}
	return d, nil
}
