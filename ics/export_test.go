package ics

import (
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perioda/calends/duration"
	"github.com/perioda/calends/recurrence"
)

func testExporter() *Exporter {
	e := NewExporter()
	e.newUID = func() string { return "fixed-uid" }
	return e
}

func TestCalendarProps(t *testing.T) {
	cal, err := testExporter().Calendar()
	require.NoError(t, err)

	prodID, err := cal.Props.Text(ical.PropProductID)
	require.NoError(t, err)
	assert.Equal(t, defaultProdID, prodID)

	version, err := cal.Props.Text(ical.PropVersion)
	require.NoError(t, err)
	assert.Equal(t, "2.0", version)
	assert.Empty(t, cal.Children)
}

func TestCalendarWithProdIDOption(t *testing.T) {
	e := NewExporter(WithProdID("-//acme//planner//EN"))
	cal, err := e.Calendar()
	require.NoError(t, err)

	prodID, err := cal.Props.Text(ical.PropProductID)
	require.NoError(t, err)
	assert.Equal(t, "-//acme//planner//EN", prodID)
}

func TestEventWithRRule(t *testing.T) {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	cal, err := testExporter().Calendar(Series{
		Summary: "monthly review",
		Rule:    recurrence.Monthly(),
		Start:   start,
		Until:   mo.Some(time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	require.Len(t, cal.Children, 1)

	event := cal.Children[0]
	assert.Equal(t, ical.CompEvent, event.Name)

	uid, err := event.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "fixed-uid", uid)

	summary, err := event.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "monthly review", summary)

	// DTSTART is date-valued so RDATE fallbacks share its value type
	dtstart := event.Props.Get(ical.PropDateTimeStart)
	require.NotNil(t, dtstart)
	assert.Equal(t, "20220101", dtstart.Value)
	assert.Equal(t, "DATE", dtstart.Params.Get(ical.ParamValue))

	rr := event.Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rr)
	assert.Contains(t, rr.Value, "FREQ=MONTHLY")
	assert.Contains(t, rr.Value, "UNTIL=20221201T000000Z")
	assert.Nil(t, event.Props.Get(ical.PropRecurrenceDates))
}

func TestEventUnboundedRRule(t *testing.T) {
	cal, err := testExporter().Calendar(Series{
		Rule:  recurrence.Weekly(),
		Start: time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	rr := cal.Children[0].Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rr)
	assert.Contains(t, rr.Value, "FREQ=WEEKLY")
	assert.NotContains(t, rr.Value, "UNTIL")
}

func TestEventRDateFallback(t *testing.T) {
	// "a month less two days" has no FREQ/INTERVAL form, so occurrences are
	// materialized instead
	rule := recurrence.Offset(duration.Months(1).WithDays(-2), 0)
	cal, err := testExporter().Calendar(Series{
		Rule:  rule,
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Until: mo.Some(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	event := cal.Children[0]
	assert.Nil(t, event.Props.Get(ical.PropRecurrenceRule))

	rdate := event.Props.Get(ical.PropRecurrenceDates)
	require.NotNil(t, rdate)
	// occurrences: Jan 1, Jan 30, Feb 26; DTSTART carries the first
	assert.Equal(t, "20220130,20220226", rdate.Value)
	assert.Equal(t, "DATE", rdate.Params.Get(ical.ParamValue))
}

func TestEventRDateNeedsUntil(t *testing.T) {
	rule := recurrence.Offset(duration.Months(1).WithDays(-2), 0)
	_, err := testExporter().Calendar(Series{
		Rule:  rule,
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrUnboundedSeries)
}

func TestEventOccurrenceRuleFails(t *testing.T) {
	_, err := testExporter().Calendar(Series{
		Rule:  recurrence.Occurrence(duration.Months(1), 3, time.Wednesday),
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Until: mo.Some(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)),
	})
	assert.ErrorIs(t, err, recurrence.ErrOccurrenceUnsupported)
}
