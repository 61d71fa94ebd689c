package event_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"eventman/internal/event"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid date", input: "24-12-2026", want: "24-12-2026"},
		{name: "single digit padding preserved", input: "01-01-2025", want: "01-01-2025"},
		{name: "wrong separator", input: "24/12/2026", wantErr: true},
		{name: "ISO order rejected", input: "2026-12-24", wantErr: true},
		{name: "nonsense", input: "tomorrow", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := event.ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseDate(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    event.Clock
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: event.NewClock(8, 0)},
		{name: "midnight", input: "00:00", want: event.NewClock(0, 0)},
		{name: "late evening", input: "23:59", want: event.NewClock(23, 59)},
		{name: "12-hour format rejected", input: "8:00 PM", wantErr: true},
		{name: "out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := event.ParseClock(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseClock(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateBefore(t *testing.T) {
	earlier := event.Date{Year: 2025, Month: 1, Day: 1}
	later := event.Date{Year: 2025, Month: 1, Day: 2}
	otherMonth := event.Date{Year: 2025, Month: 2, Day: 1}
	otherYear := event.Date{Year: 2026, Month: 1, Day: 1}

	if !earlier.Before(later) || later.Before(earlier) {
		t.Error("day comparison wrong")
	}
	if !earlier.Before(otherMonth) {
		t.Error("month comparison wrong")
	}
	if !earlier.Before(otherYear) {
		t.Error("year comparison wrong")
	}
	if earlier.Before(earlier) {
		t.Error("a date is not before itself")
	}
}

func TestEventStringRendersMissingLocation(t *testing.T) {
	e := event.Event{
		ID:   5,
		Name: "Team Meeting",
		Date: event.Date{Year: 2026, Month: 6, Day: 15},
		Time: event.NewClock(9, 30),
		Type: "Meeting",
	}
	s := e.String()
	for _, want := range []string{"ID: 5", "Team Meeting", "15-06-2026", "09:30", "N/A"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	e := event.Event{
		ID:       2,
		Name:     "Conference",
		Date:     event.Date{Year: 2026, Month: 11, Day: 3},
		Time:     event.NewClock(14, 15),
		Type:     "Conference",
		Location: "Main Hall",
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Date and time persist in their operator-facing forms.
	if !strings.Contains(string(data), `"03-11-2026"`) || !strings.Contains(string(data), `"14:15"`) {
		t.Fatalf("unexpected wire form: %s", data)
	}

	var got event.Event
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != e {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, e)
	}
}

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := error(&event.NotFoundError{ID: 9})
	if !errors.Is(err, event.ErrNotFound) {
		t.Error("NotFoundError should match event.ErrNotFound")
	}
	if !strings.Contains(err.Error(), "9") {
		t.Errorf("NotFoundError should carry the offending id: %v", err)
	}
}
