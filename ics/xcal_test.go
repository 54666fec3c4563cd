package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perioda/calends/duration"
	"github.com/perioda/calends/recurrence"
	"github.com/samber/mo"
)

func TestEncodeXCalStructure(t *testing.T) {
	cal, err := testExporter().Calendar(Series{
		Summary: "quarterly planning",
		Rule:    recurrence.Quarterly(),
		Start:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doc := EncodeXCal(cal)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "icalendar", root.Tag)
	assert.Equal(t, xcalNamespace, root.SelectAttrValue("xmlns", ""))

	prodID := doc.FindElement("/icalendar/vcalendar/properties/prodid/text")
	require.NotNil(t, prodID)
	assert.Equal(t, defaultProdID, prodID.Text())

	summary := doc.FindElement("/icalendar/vcalendar/components/vevent/properties/summary/text")
	require.NotNil(t, summary)
	assert.Equal(t, "quarterly planning", summary.Text())
}

func TestEncodeXCalRecur(t *testing.T) {
	cal, err := testExporter().Calendar(Series{
		Rule:  recurrence.Quarterly(),
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	doc := EncodeXCal(cal)

	// RRULE values are split into structured recur children
	freq := doc.FindElement("/icalendar/vcalendar/components/vevent/properties/rrule/recur/freq")
	require.NotNil(t, freq)
	assert.Equal(t, "MONTHLY", freq.Text())

	interval := doc.FindElement("/icalendar/vcalendar/components/vevent/properties/rrule/recur/interval")
	require.NotNil(t, interval)
	assert.Equal(t, "3", interval.Text())
}

func TestEncodeXCalDates(t *testing.T) {
	rule := recurrence.Offset(duration.Months(1).WithDays(-2), 0)
	cal, err := testExporter().Calendar(Series{
		Rule:  rule,
		Start: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Until: mo.Some(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	doc := EncodeXCal(cal)

	// date-valued DTSTART renders as a date element in extended form
	dtstart := doc.FindElement("/icalendar/vcalendar/components/vevent/properties/dtstart/date")
	require.NotNil(t, dtstart)
	assert.Equal(t, "2022-01-01", dtstart.Text())

	// DTSTAMP keeps its date-time rendering
	dtstamp := doc.FindElement("/icalendar/vcalendar/components/vevent/properties/dtstamp/date-time")
	require.NotNil(t, dtstamp)

	// RDATE splits into one date element per occurrence
	dates := doc.FindElements("/icalendar/vcalendar/components/vevent/properties/rdate/date")
	require.Len(t, dates, 2)
	assert.Equal(t, "2022-01-30", dates[0].Text())
	assert.Equal(t, "2022-02-26", dates[1].Text())
}
