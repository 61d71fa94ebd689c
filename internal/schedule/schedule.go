// Package schedule implements conflict detection and free-slot
// suggestion over a day's bookings.
//
// Every event occupies a fixed one-hour block; the duration is policy,
// not stored data. A booking at time t blocks any new start strictly
// inside the open interval (t-1h, t+1h) - a symmetric two-hour exclusion
// zone around each booked time, deliberately wider than literal block
// overlap. The same predicate drives both conflict checks and slot
// suggestion.
package schedule

import "eventman/internal/event"

const (
	// Working window for slot suggestion: candidates are enumerated
	// hourly from DayStart inclusive to DayEnd exclusive.
	DayStart = event.Clock(8 * 60)
	DayEnd   = event.Clock(17 * 60)

	slotStep        = 60 // minutes between candidate starts
	exclusionWindow = 60 // minutes either side of a booking, open interval
)

// blocked reports whether cand falls strictly inside the exclusion
// window around booked. Equality at the +-1h boundary is allowed.
func blocked(cand, booked event.Clock) bool {
	diff := int(cand) - int(booked)
	if diff < 0 {
		diff = -diff
	}
	return diff < exclusionWindow
}

// Conflicts reports whether scheduling at (date, at) collides with any
// existing event. The event with excludeID is skipped so an edit never
// conflicts with the event's own slot; pass event.NoExclusion when
// checking a brand-new event.
func Conflicts(events []event.Event, date event.Date, at event.Clock, excludeID int) bool {
	for _, e := range events {
		if e.ID == excludeID {
			continue
		}
		if e.Date != date {
			continue
		}
		if blocked(at, e.Time) {
			return true
		}
	}
	return false
}

// SuggestSlots returns the free hourly start times on date within the
// working window, ascending. A candidate survives only if it clears the
// exclusion window of every booking that day. The result is empty (never
// nil) when the day is fully blocked.
func SuggestSlots(events []event.Event, date event.Date) []event.Clock {
	var booked []event.Clock
	for _, e := range events {
		if e.Date == date {
			booked = append(booked, e.Time)
		}
	}

	slots := make([]event.Clock, 0, int(DayEnd-DayStart)/slotStep)
	for cand := DayStart; cand < DayEnd; cand += slotStep {
		free := true
		for _, b := range booked {
			if blocked(cand, b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, cand)
		}
	}
	return slots
}
