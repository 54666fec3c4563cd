// Package ics adapts the core types to calendar interchange formats: Offset
// rules to and from RRULE strings, recurring date series to iCalendar
// documents, and iCalendar documents to an xCal (RFC 6321) XML rendering.
// It is a boundary codec only; the arithmetic lives in the core packages.
package ics

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/perioda/calends/duration"
	"github.com/perioda/calends/recurrence"
)

// ErrNotRepresentable is returned when a rule's duration mixes units or
// runs backwards; RRULE has a single FREQ/INTERVAL pair and cannot express
// such steps.
var ErrNotRepresentable = errors.New("ics: rule duration is not representable as an RRULE")

// RRuleOption maps an Offset rule onto an rrule-go option set anchored at
// start. Pure month, week or day durations map onto YEARLY, MONTHLY, WEEKLY
// or DAILY frequencies; anything else fails with ErrNotRepresentable.
func RRuleOption(rule recurrence.Rule, start time.Time) (rrule.ROption, error) {
	if rule.Kind() != recurrence.RuleOffset {
		return rrule.ROption{}, fmt.Errorf("ics: only offset rules map to RRULE: %w", ErrNotRepresentable)
	}

	dur := rule.Duration()
	m, w, d := dur.NumMonths(), dur.NumWeeks(), dur.NumDays()

	opt := rrule.ROption{Dtstart: start.UTC()}
	switch {
	case m > 0 && w == 0 && d == 0 && m%12 == 0:
		opt.Freq = rrule.YEARLY
		opt.Interval = m / 12
	case m > 0 && w == 0 && d == 0:
		opt.Freq = rrule.MONTHLY
		opt.Interval = m
	case m == 0 && w > 0 && d == 0:
		opt.Freq = rrule.WEEKLY
		opt.Interval = w
	case m == 0 && w == 0 && d > 0 && d%7 == 0:
		opt.Freq = rrule.WEEKLY
		opt.Interval = d / 7
	case m == 0 && w == 0 && d > 0:
		opt.Freq = rrule.DAILY
		opt.Interval = d
	default:
		return rrule.ROption{}, ErrNotRepresentable
	}
	return opt, nil
}

// RRuleString renders an Offset rule as the RRULE property value (without
// the "RRULE:" prefix).
func RRuleString(rule recurrence.Rule, start time.Time) (string, error) {
	opt, err := RRuleOption(rule, start)
	if err != nil {
		return "", err
	}
	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("ics: build rrule: %w", err)
	}
	return r.String(), nil
}

// FromRRule parses an RRULE property value back into an Offset rule.
// Frequencies carrying clock granularity (HOURLY and below) or BY* parts
// other than the defaults are rejected.
func FromRRule(s string) (recurrence.Rule, error) {
	r, err := rrule.StrToRRule(strings.TrimPrefix(s, "RRULE:"))
	if err != nil {
		return recurrence.Rule{}, fmt.Errorf("ics: parse rrule %q: %w", s, err)
	}

	opt := r.OrigOptions
	if hasByParts(opt) {
		return recurrence.Rule{}, fmt.Errorf("ics: rrule %q has BY parts: %w", s, ErrNotRepresentable)
	}
	interval := opt.Interval
	if interval == 0 {
		interval = 1
	}

	var dur duration.RelativeDuration
	switch opt.Freq {
	case rrule.YEARLY:
		dur = duration.Months(12 * interval)
	case rrule.MONTHLY:
		dur = duration.Months(interval)
	case rrule.WEEKLY:
		dur = duration.Weeks(interval)
	case rrule.DAILY:
		dur = duration.Days(interval)
	default:
		return recurrence.Rule{}, fmt.Errorf("ics: frequency %v: %w", opt.Freq, ErrNotRepresentable)
	}
	return recurrence.Offset(dur, 0), nil
}

// hasByParts reports whether the parsed options carry any BY rule part. A
// rule like "FREQ=MONTHLY;BYDAY=2WE" does not step by a plain duration, so
// flattening it to its frequency would silently change its occurrences.
func hasByParts(opt rrule.ROption) bool {
	return len(opt.Bysetpos) > 0 ||
		len(opt.Bymonth) > 0 ||
		len(opt.Bymonthday) > 0 ||
		len(opt.Byyearday) > 0 ||
		len(opt.Byweekno) > 0 ||
		len(opt.Byweekday) > 0 ||
		len(opt.Byhour) > 0 ||
		len(opt.Byminute) > 0 ||
		len(opt.Bysecond) > 0 ||
		len(opt.Byeaster) > 0
}
