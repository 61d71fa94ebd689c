// Package query provides read-only listing, filtering and aggregation
// over the repository. It holds no state of its own; everything is
// computed from a fresh snapshot of the live event set.
package query

import (
	"sort"
	"strings"

	"eventman/internal/event"
)

// Source supplies a snapshot of the live events, normally the
// repository.
type Source interface {
	Events() []event.Event
}

// ListAll returns every live event sorted ascending by (date, time),
// the canonical display order.
func ListAll(src Source) []event.Event {
	events := src.Events()
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if a.Date != b.Date {
			return a.Date.Before(b.Date)
		}
		return a.Time < b.Time
	})
	return events
}

// ListForDate returns the events on date in display order.
func ListForDate(src Source, date event.Date) []event.Event {
	var out []event.Event
	for _, e := range ListAll(src) {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out
}

// Search returns the events whose name or type contains keyword,
// case-insensitively, in display order.
func Search(src Source, keyword string) []event.Event {
	kw := strings.ToLower(keyword)
	var out []event.Event
	for _, e := range ListAll(src) {
		if strings.Contains(strings.ToLower(e.Name), kw) ||
			strings.Contains(strings.ToLower(e.Type), kw) {
			out = append(out, e)
		}
	}
	return out
}

// Statistics summarizes the live event set.
type Statistics struct {
	Total  int
	ByType map[string]int
}

// Stats counts the live events overall and per exact type string. Type
// keys are case-sensitive: "Meeting" and "meeting" are distinct.
func Stats(src Source) Statistics {
	events := src.Events()
	stats := Statistics{
		Total:  len(events),
		ByType: make(map[string]int),
	}
	for _, e := range events {
		stats.ByType[e.Type]++
	}
	return stats
}
