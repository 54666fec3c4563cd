package ics

import (
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/emersion/go-ical"
)

const xcalNamespace = "urn:ietf:params:xml:ns:icalendar-2.0"

// EncodeXCal renders an iCalendar document as its xCal (RFC 6321) XML
// equivalent, covering the property vocabulary the Exporter emits: text
// properties, date and date-time values, and RRULE recur values.
func EncodeXCal(cal *ical.Calendar) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("icalendar")
	root.CreateAttr("xmlns", xcalNamespace)

	vcal := root.CreateElement("vcalendar")
	encodeProps(vcal, cal.Props)

	components := vcal.CreateElement("components")
	for _, child := range cal.Children {
		comp := components.CreateElement(strings.ToLower(child.Name))
		encodeProps(comp, child.Props)
	}
	return doc
}

func encodeProps(parent *etree.Element, props ical.Props) {
	elem := parent.CreateElement("properties")
	for _, list := range props {
		for _, prop := range list {
			encodeProp(elem, prop)
		}
	}
}

func encodeProp(parent *etree.Element, prop ical.Prop) {
	elem := parent.CreateElement(strings.ToLower(prop.Name))

	switch prop.Name {
	case ical.PropRecurrenceRule:
		recur := elem.CreateElement("recur")
		for _, part := range strings.Split(prop.Value, ";") {
			if key, value, ok := strings.Cut(part, "="); ok {
				recur.CreateElement(strings.ToLower(key)).SetText(value)
			}
		}
	case ical.PropRecurrenceDates, ical.PropExceptionDates:
		for _, v := range strings.Split(prop.Value, ",") {
			elem.CreateElement("date").SetText(xcalDate(v))
		}
	case ical.PropDateTimeStart, ical.PropDateTimeEnd, ical.PropDateTimeStamp:
		if prop.Params.Get(ical.ParamValue) == "DATE" {
			elem.CreateElement("date").SetText(xcalDate(prop.Value))
		} else {
			elem.CreateElement("date-time").SetText(xcalDateTime(prop.Value))
		}
	default:
		elem.CreateElement("text").SetText(prop.Value)
	}
}

// xcalDate rewrites a basic-format iCalendar date into the extended form
// xCal uses, passing through values it does not recognize.
func xcalDate(v string) string {
	if t, err := time.Parse("20060102", v); err == nil {
		return t.Format(time.DateOnly)
	}
	return v
}

// xcalDateTime does the same for date-time values.
func xcalDateTime(v string) string {
	if t, err := time.Parse("20060102T150405Z", v); err == nil {
		return t.Format("2006-01-02T15:04:05Z")
	}
	return v
}
