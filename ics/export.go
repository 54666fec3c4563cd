package ics

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/teambition/rrule-go"

	"github.com/perioda/calends/recurrence"
)

// ErrUnboundedSeries is returned when a series needs explicit materialized
// dates (its rule has no RRULE form) but carries no end bound to stop at.
var ErrUnboundedSeries = errors.New("ics: series with non-RRULE rule needs an until date")

const defaultProdID = "-//calends//calendar arithmetic//EN"

// Series describes one recurring date sequence to export: a rule, the first
// occurrence, and an optional inclusive end date.
type Series struct {
	Summary string
	Rule    recurrence.Rule
	Start   time.Time
	Until   mo.Option[time.Time]
}

// Exporter renders Series values as iCalendar documents.
type Exporter struct {
	logger *slog.Logger
	prodID string
	newUID func() string
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger for the exporter.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) { e.logger = logger }
}

// WithProdID overrides the PRODID written to exported calendars.
func WithProdID(prodID string) Option {
	return func(e *Exporter) { e.prodID = prodID }
}

// NewExporter creates an exporter. Without options it logs nowhere and
// stamps a library PRODID.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		prodID: defaultProdID,
		newUID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Calendar renders the series as one iCalendar document with a VEVENT per
// series. Rules with an RRULE form are written as RRULE (bounded by UNTIL
// when the series has one); other offset rules are materialized into RDATE
// entries, which requires an end bound.
func (e *Exporter) Calendar(series ...Series) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, e.prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, s := range series {
		event, err := e.event(s)
		if err != nil {
			return nil, err
		}
		cal.Children = append(cal.Children, event)
	}
	return cal, nil
}

func (e *Exporter) event(s Series) (*ical.Component, error) {
	event := ical.NewComponent(ical.CompEvent)
	uid := e.newUID()
	event.Props.SetText(ical.PropUID, uid)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	setDateProp(event, ical.PropDateTimeStart, s.Start)
	if s.Summary != "" {
		event.Props.SetText(ical.PropSummary, s.Summary)
	}

	opt, err := RRuleOption(s.Rule, s.Start)
	switch {
	case err == nil:
		if until, ok := s.Until.Get(); ok {
			opt.Until = until.UTC()
		}
		r, err := rrule.NewRRule(opt)
		if err != nil {
			return nil, fmt.Errorf("ics: build rrule: %w", err)
		}
		rr := r.String()
		event.Props.SetText(ical.PropRecurrenceRule, rr)
		e.logger.Debug("exported series as rrule", "uid", uid, "rrule", rr)

	case errors.Is(err, ErrNotRepresentable):
		until, ok := s.Until.Get()
		if !ok {
			return nil, ErrUnboundedSeries
		}
		rec, err := recurrence.WithStart(s.Rule, s.Start)
		if err != nil {
			return nil, err
		}
		dates := recurrence.Expand(rec.UntilAndIncluding(until), recurrence.DefaultExpandOptions)
		setRDates(event, dates)
		e.logger.Debug("exported series as rdates", "uid", uid, "count", len(dates))

	default:
		return nil, err
	}
	return event, nil
}

// setDateProp writes a DATE-valued (not DATE-TIME) property. DTSTART is
// written this way so RDATE's VALUE=DATE matches the DTSTART type, as RFC
// 5545 expects within one component.
func setDateProp(event *ical.Component, name string, date time.Time) {
	event.Props.SetText(name, date.Format("20060102"))
	if prop := event.Props.Get(name); prop != nil {
		prop.Params.Set(ical.ParamValue, "DATE")
	}
}

// setRDates writes dates after the first occurrence as a date-valued RDATE
// property; DTSTART already carries the first occurrence.
func setRDates(event *ical.Component, dates []time.Time) {
	if len(dates) < 2 {
		return
	}
	formatted := make([]string, 0, len(dates)-1)
	for _, d := range dates[1:] {
		formatted = append(formatted, d.Format("20060102"))
	}
	event.Props.SetText(ical.PropRecurrenceDates, strings.Join(formatted, ","))
	if prop := event.Props.Get(ical.PropRecurrenceDates); prop != nil {
		prop.Params.Set(ical.ParamValue, "DATE")
	}
}
