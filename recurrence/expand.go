package recurrence

import "time"

// ExpandOptions controls how far Expand materializes a sequence.
type ExpandOptions struct {
	// MaxOccurrences caps the number of dates collected. Zero falls back to
	// the default cap; expansion of a conceptually infinite sequence is
	// never unlimited.
	MaxOccurrences int
}

// DefaultExpandOptions provides a sensible cap for expansion.
var DefaultExpandOptions = ExpandOptions{
	MaxOccurrences: 1000,
}

// Expand drains seq into a slice, stopping at the option cap if the
// sequence does not exhaust itself first.
func Expand(seq DateSeq, opts ExpandOptions) []time.Time {
	limit := opts.MaxOccurrences
	if limit <= 0 {
		limit = DefaultExpandOptions.MaxOccurrences
	}

	out := make([]time.Time, 0, min(limit, 64))
	for len(out) < limit {
		date, ok := seq.Next()
		if !ok {
			break
		}
		out = append(out, date)
	}
	return out
}
