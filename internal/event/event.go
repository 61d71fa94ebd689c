// Package event defines the calendar event model and the repository
// that owns the live event set.
package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Operator-facing input formats.
const (
	DateLayout  = "02-01-2006"
	ClockLayout = "15:04"
)

// Date is a calendar day. Events carry no time zone; a date is just the
// triple the operator typed.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a DD-MM-YYYY date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (use DD-MM-YYYY): %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf extracts the calendar day from t.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%04d", d.Day, int(d.Month), d.Year)
}

// Before reports whether d is an earlier day than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// MarshalJSON stores the date in its operator-facing form so the
// persisted document stays readable.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock is a time of day at minute resolution, counted as minutes since
// midnight. Integer arithmetic keeps the conflict window math exact.
type Clock int

// ParseClock parses a 24-hour HH:MM time.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q (use HH:MM): %w", s, err)
	}
	return Clock(t.Hour()*60 + t.Minute()), nil
}

// NewClock builds a Clock from an hour and minute.
func NewClock(hour, min int) Clock {
	return Clock(hour*60 + min)
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Event is the sole entity the system manages. The ID is assigned by the
// repository on creation and never changes afterwards.
type Event struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Date     Date   `json:"date"`
	Time     Clock  `json:"time"`
	Type     string `json:"type"`
	Location string `json:"location,omitempty"`
}

// String renders the event as a single padded display row.
func (e Event) String() string {
	location := e.Location
	if location == "" {
		location = "N/A"
	}
	return fmt.Sprintf("ID: %-3d | Name: %-20s | Date: %-12s | Time: %-7s | Type: %-15s | Location: %s",
		e.ID, e.Name, e.Date, e.Time, e.Type, location)
}

// Update describes an edit to an existing event. A nil field keeps the
// current value.
type Update struct {
	Name     *string
	Date     *Date
	Time     *Clock
	Type     *string
	Location *string
}
