package recurrence

import "time"

// DateSeq is a pull-based sequence of dates. Next reports false when the
// sequence is exhausted; infinite sequences simply never do.
type DateSeq interface {
	Next() (time.Time, bool)
}

// Recurrence walks a cursor date through a rule. It is stateful: each Next
// yields the cursor and advances it by the rule's duration. Create one per
// consumer; restarting means creating a new value.
type Recurrence struct {
	rule   Rule
	cursor time.Time
}

// WithStart builds a recurrence whose first occurrence is the given date.
// Occurrence rules fail with ErrOccurrenceUnsupported.
func WithStart(rule Rule, date time.Time) (*Recurrence, error) {
	if rule.kind == RuleOccurrence {
		return nil, ErrOccurrenceUnsupported
	}
	return &Recurrence{rule: rule, cursor: date}, nil
}

// Rule returns the rule driving the recurrence.
func (r *Recurrence) Rule() Rule { return r.rule }

// Next yields the current cursor and advances it by the rule's duration.
// The sequence is infinite; ok is always true.
func (r *Recurrence) Next() (time.Time, bool) {
	date := r.cursor
	r.cursor = r.rule.dur.AddTo(date)
	return date, true
}

// Until bounds the recurrence with an exclusive end date.
func (r *Recurrence) Until(date time.Time) *Until {
	return UntilExclusive(date, r)
}

// UntilAndIncluding bounds the recurrence with an inclusive end date.
func (r *Recurrence) UntilAndIncluding(date time.Time) *Until {
	return UntilInclusive(date, r)
}
