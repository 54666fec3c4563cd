package duration

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed ISO 8601-2:2019 duration or interval. It
// carries the offending input and the byte offset the parser stopped at.
type ParseError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q at offset %d: %s", e.Input, e.Offset, e.Msg)
}

// unit letters in their fixed order; years fold into months at parse time
var unitOrder = "YMWD"

// ParseISO8601 parses an ISO 8601-2:2019 duration with the time-of-day part
// omitted: "P" followed by up to four optional chunks in the fixed order
// years, months, weeks, days. Each chunk is an optionally signed integer
// followed by its unit letter, so "P3W2D" and "P-4M3W" are both valid. A
// years chunk folds into months at 12 per year.
func ParseISO8601(s string) (RelativeDuration, error) {
	rd, rest, err := parseRelativeDuration(s, 0)
	if err != nil {
		return Zero(), err
	}
	if rest != len(s) {
		return Zero(), &ParseError{Input: s, Offset: rest, Msg: "trailing input after duration"}
	}
	return rd, nil
}

// parseRelativeDuration consumes a duration starting at pos and returns the
// offset of the first byte it did not consume. Shared with the interval
// parser, which embeds durations in "<start>/<duration>" forms.
func parseRelativeDuration(s string, pos int) (RelativeDuration, int, error) {
	if pos >= len(s) || s[pos] != 'P' {
		return Zero(), pos, &ParseError{Input: s, Offset: pos, Msg: "expected 'P'"}
	}
	pos++

	var months, weeks, days int
	lastUnit := -1
	for pos < len(s) {
		n, unit, next, err := parseChunk(s, pos)
		if err != nil {
			// not a chunk; leave it for the caller
			break
		}
		order := strings.IndexByte(unitOrder, unit)
		if order <= lastUnit {
			return Zero(), pos, &ParseError{Input: s, Offset: pos, Msg: fmt.Sprintf("unit %q out of order", unit)}
		}
		lastUnit = order

		switch unit {
		case 'Y':
			months += 12 * n
		case 'M':
			months += n
		case 'W':
			weeks = n
		case 'D':
			days = n
		}
		pos = next
	}

	if lastUnit == -1 {
		return Zero(), pos, &ParseError{Input: s, Offset: pos, Msg: "expected at least one component"}
	}
	rd, ok := FromMWDChecked(months, weeks, days).Get()
	if !ok {
		return Zero(), pos, &ParseError{Input: s, Offset: pos, Msg: "duration component out of range"}
	}
	return rd, pos, nil
}

// parseChunk reads one signed-integer-plus-unit chunk at pos.
func parseChunk(s string, pos int) (n int, unit byte, next int, err error) {
	i := pos
	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		if n > MaxComponent {
			return 0, 0, pos, &ParseError{Input: s, Offset: i, Msg: "duration component out of range"}
		}
		i++
	}
	if i == start {
		return 0, 0, pos, &ParseError{Input: s, Offset: i, Msg: "expected digits"}
	}
	if i >= len(s) || strings.IndexByte(unitOrder, s[i]) < 0 {
		return 0, 0, pos, &ParseError{Input: s, Offset: i, Msg: "expected unit letter Y, M, W or D"}
	}
	if neg {
		n = -n
	}
	return n, s[i], i + 1, nil
}

// ISO8601 renders the duration in the same profile ParseISO8601 accepts,
// omitting zero chunks: Days(5) is "P5D", not "P0M0W5D". The zero duration
// renders as "P0D" so the output always parses back.
func (rd RelativeDuration) ISO8601() string {
	if rd.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	for _, p := range [3]struct {
		n    int32
		unit byte
	}{{rd.months, 'M'}, {rd.weeks, 'W'}, {rd.days, 'D'}} {
		if p.n != 0 {
			fmt.Fprintf(&b, "%d%c", p.n, p.unit)
		}
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler using the ISO 8601 form.
func (rd RelativeDuration) MarshalText() ([]byte, error) {
	return []byte(rd.ISO8601()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the ISO 8601 form.
func (rd *RelativeDuration) UnmarshalText(text []byte) error {
	parsed, err := ParseISO8601(string(text))
	if err != nil {
		return err
	}
	*rd = parsed
	return nil
}
