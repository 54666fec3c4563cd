// Package recurrence generates repeating date sequences. A Rule says how an
// occurrence advances (a RelativeDuration step for offset rules) and a
// Recurrence walks a cursor date through the rule:
//
//	rec, _ := recurrence.WithStart(recurrence.Monthly(), start)
//	until := rec.UntilAndIncluding(last)
//	for d, ok := until.Next(); ok; d, ok = until.Next() { ... }
//
// Sequences are infinite unless wrapped in Until or materialized through
// Expand; unbounded consumption never terminates.
package recurrence

import (
	"errors"
	"time"

	"github.com/perioda/calends/duration"
)

// ErrOccurrenceUnsupported is returned when building a Recurrence from an
// Occurrence rule. Nth-weekday recurrence is declared but its stepping
// semantics are not implemented.
var ErrOccurrenceUnsupported = errors.New("recurrence: occurrence rules are not implemented")

// RuleKind discriminates the rule variants.
type RuleKind int

const (
	// RuleOffset steps by a duration; the offset field positions the
	// occurrence within each period, positive from the period start,
	// negative from its end.
	RuleOffset RuleKind = iota
	// RuleOccurrence names the nth weekday of each period, e.g. the third
	// Wednesday of the month. Declared but unsupported.
	RuleOccurrence
)

// Rule specifies how occurrences repeat.
type Rule struct {
	kind    RuleKind
	dur     duration.RelativeDuration
	offset  int
	nth     int
	weekday time.Weekday
}

// Offset builds a rule stepping by dur, with an intra-period day offset.
// The offset is carried on the rule for rule descriptions; stepping itself
// advances by dur alone.
func Offset(dur duration.RelativeDuration, offset int) Rule {
	return Rule{kind: RuleOffset, dur: dur, offset: offset}
}

// Occurrence builds a rule naming the nth weekday of each period spanned by
// dur. Building a Recurrence from it fails with ErrOccurrenceUnsupported.
func Occurrence(dur duration.RelativeDuration, nth int, weekday time.Weekday) Rule {
	return Rule{kind: RuleOccurrence, dur: dur, nth: nth, weekday: weekday}
}

// Yearly repeats every year.
func Yearly() Rule { return Offset(duration.Months(12), 0) }

// Quarterly repeats every quarter.
func Quarterly() Rule { return Offset(duration.Months(3), 0) }

// Monthly repeats every month.
func Monthly() Rule { return Offset(duration.Months(1), 0) }

// Biweekly repeats every two weeks.
func Biweekly() Rule { return Offset(duration.Weeks(2), 0) }

// Weekly repeats every week.
func Weekly() Rule { return Offset(duration.Weeks(1), 0) }

// Daily repeats every day.
func Daily() Rule { return Offset(duration.Days(1), 0) }

// Kind returns the rule's variant.
func (r Rule) Kind() RuleKind { return r.kind }

// Duration returns the rule's step duration.
func (r Rule) Duration() duration.RelativeDuration { return r.dur }

// OffsetDays returns the intra-period offset of an Offset rule.
func (r Rule) OffsetDays() int { return r.offset }

// Nth returns the occurrence ordinal of an Occurrence rule.
func (r Rule) Nth() int { return r.nth }

// Weekday returns the weekday of an Occurrence rule.
func (r Rule) Weekday() time.Weekday { return r.weekday }
