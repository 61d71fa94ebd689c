package event

import (
	"fmt"
	"log"
)

// NoExclusion is the sentinel excludeID for conflict checks on brand-new
// events. Ids start at 1, so 0 never matches a live event.
const NoExclusion = 0

// Store persists the whole event collection. Every mutation rewrites the
// full set; there are no incremental diffs.
type Store interface {
	Load() ([]Event, error)
	Save([]Event) error
}

// ConflictFunc decides whether scheduling at (date, at) collides with an
// existing event, ignoring the event with excludeID.
type ConflictFunc func(events []Event, date Date, at Clock, excludeID int) bool

// Repository owns the canonical live event set. It assigns ids, enforces
// the no-overlap rule through the scheduling engine, and re-syncs the
// whole collection to the store after every successful mutation.
type Repository struct {
	store     Store
	conflicts ConflictFunc
	events    []Event
	nextID    int
}

// NewRepository loads the persisted set from store. A read failure is not
// fatal: the repository starts empty and the error is returned so the
// caller can report it to the operator.
//
// nextID is re-derived as max(existing ids)+1 on every load. If the
// highest-numbered event was deleted before the last save, its id can be
// handed out again in a later session. That reuse is a known consequence
// of not persisting the counter and is kept as-is.
func NewRepository(store Store, conflicts ConflictFunc) (*Repository, error) {
	r := &Repository{store: store, conflicts: conflicts, nextID: 1}
	events, err := store.Load()
	if err != nil {
		return r, fmt.Errorf("load events: %w", err)
	}
	r.events = events
	for _, e := range events {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
	}
	return r, nil
}

// Events returns a copy of the live set in insertion order. Callers that
// want display order go through the query package.
func (r *Repository) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of live events.
func (r *Repository) Len() int {
	return len(r.events)
}

// FindByID returns the live event with the given id.
func (r *Repository) FindByID(id int) (Event, bool) {
	if i := r.indexOf(id); i >= 0 {
		return r.events[i], true
	}
	return Event{}, false
}

// Add creates a new event. The slot is checked against every live event
// first; on conflict nothing is mutated and the returned error carries
// the candidate date for slot suggestion.
func (r *Repository) Add(name string, date Date, at Clock, typ, location string) (*Event, error) {
	if r.conflicts(r.events, date, at, NoExclusion) {
		return nil, &ConflictError{Date: date, Time: at}
	}
	e := Event{ID: r.nextID, Name: name, Date: date, Time: at, Type: typ, Location: location}
	r.events = append(r.events, e)
	r.nextID++
	r.persist()
	return &e, nil
}

// Edit applies u to the event with the given id, all-or-nothing. The
// would-be date/time (updated or current) is checked for conflicts with
// the event itself excluded, so an event never collides with its own
// slot. On conflict no field is touched, not even non-scheduling ones.
func (r *Repository) Edit(id int, u Update) (*Event, error) {
	idx := r.indexOf(id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}
	e := r.events[idx]

	newDate, newTime := e.Date, e.Time
	if u.Date != nil {
		newDate = *u.Date
	}
	if u.Time != nil {
		newTime = *u.Time
	}
	if r.conflicts(r.events, newDate, newTime, id) {
		return nil, &ConflictError{Date: newDate, Time: newTime}
	}

	if u.Name != nil {
		e.Name = *u.Name
	}
	e.Date = newDate
	e.Time = newTime
	if u.Type != nil {
		e.Type = *u.Type
	}
	if u.Location != nil {
		e.Location = *u.Location
	}
	r.events[idx] = e
	r.persist()
	return &e, nil
}

// Delete removes the event with the given id. The id is never handed out
// again within this session.
func (r *Repository) Delete(id int) error {
	idx := r.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	r.events = append(r.events[:idx], r.events[idx+1:]...)
	r.persist()
	return nil
}

func (r *Repository) indexOf(id int) int {
	for i, e := range r.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// persist re-syncs the whole collection to the store. A write failure is
// reported but the in-memory mutation stands; memory and disk stay
// divergent until the next successful save.
func (r *Repository) persist() {
	if err := r.store.Save(r.events); err != nil {
		log.Printf("[store] save failed, in-memory changes kept: %v", err)
	}
}
