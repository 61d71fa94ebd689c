// Package ical renders the event set as an iCalendar document so other
// calendar tools can import it.
package ical

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"eventman/internal/event"
)

// eventDuration is the fixed occupancy block every event gets.
const eventDuration = time.Hour

// Calendar builds a VCALENDAR holding every event as a one-hour VEVENT.
// Times are emitted in the local zone since the model carries none.
func Calendar(events []event.Event) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventman//event export//EN")

	now := time.Now()
	for _, e := range events {
		start := time.Date(e.Date.Year, e.Date.Month, e.Date.Day,
			e.Time.Hour(), e.Time.Minute(), 0, 0, time.Local)

		// The numeric id is stable but only unique per store, so the
		// UID gets a random component for cross-calendar safety.
		ve := cal.AddEvent(fmt.Sprintf("%d-%s@eventman", e.ID, uuid.New().String()))
		ve.SetCreatedTime(now)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(start.Add(eventDuration))
		ve.SetSummary(e.Name)
		if e.Location != "" {
			ve.SetLocation(e.Location)
		}
		if e.Type != "" {
			ve.SetDescription("Type: " + e.Type)
		}
	}
	return cal
}

// Write serializes the events to w as an iCalendar document.
func Write(w io.Writer, events []event.Event) error {
	return Calendar(events).SerializeTo(w)
}
