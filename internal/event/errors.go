package event

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any NotFoundError via errors.Is.
var ErrNotFound = errors.New("event not found")

// NotFoundError reports an id that references no live event.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("event with ID %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports a blocked slot. It carries the candidate date so
// the caller can ask the scheduling engine for free slots on that day.
type ConflictError struct {
	Date Date
	Time Clock
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("an event already occupies %s around %s", e.Date, e.Time)
}
