// Package shell implements the interactive admin console: the password
// gate, the menu loop, prompting and rendering. It is thin glue over
// the repository, scheduling engine and query layer; all reads and
// writes go through the injected dependencies so a test can drive a
// whole session through a buffer.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"eventman/internal/auth"
	"eventman/internal/event"
	"eventman/internal/query"
	"eventman/internal/reminder"
	"eventman/internal/schedule"
)

// now is replaced in tests to pin the "today" view.
var now = time.Now

// Shell is one interactive operator session.
type Shell struct {
	in           *bufio.Reader
	out          io.Writer
	repo         *event.Repository
	verifier     auth.Verifier
	contactsPath string
}

// New builds a shell reading operator input from in and writing
// everything operator-facing to out.
func New(in io.Reader, out io.Writer, repo *event.Repository, verifier auth.Verifier, contactsPath string) *Shell {
	return &Shell{
		in:           bufio.NewReader(in),
		out:          out,
		repo:         repo,
		verifier:     verifier,
		contactsPath: contactsPath,
	}
}

// Run is the outer credential gate. It loops until the operator types
// "exit" or input ends. A correct secret opens the admin menu; anything
// else is denied and re-prompted.
func (s *Shell) Run() error {
	fmt.Fprintln(s.out, "Welcome to eventman.")
	for {
		input, err := s.prompt("Enter admin secret to manage events (or type 'exit' to close): ")
		if err != nil {
			break
		}
		if strings.EqualFold(input, "exit") {
			break
		}
		if s.verifier.Verify(input) {
			if err := s.adminMenu(); err != nil {
				break
			}
		} else {
			fmt.Fprintln(s.out, "Incorrect secret. Access denied.")
		}
	}
	fmt.Fprintln(s.out, "Goodbye.")
	return nil
}

// adminMenu runs the main menu until logout. Every action handles its
// own errors; nothing here terminates the session except end of input.
func (s *Shell) adminMenu() error {
	for {
		fmt.Fprint(s.out, `
--- Admin Menu ---
1. Add Event
2. Edit Event
3. Delete Event
4. View Events
5. Search Events
6. Send Event Reminders
7. View Statistics
8. Logout
`)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			s.addEvent()
		case "2":
			s.editEvent()
		case "3":
			s.deleteEvent()
		case "4":
			s.viewMenu()
		case "5":
			s.searchEvents()
		case "6":
			s.sendReminders()
		case "7":
			s.showStatistics()
		case "8":
			fmt.Fprintln(s.out, "Logging out...")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please try again.")
		}
	}
}

func (s *Shell) addEvent() {
	fmt.Fprintln(s.out, "\n--- Add New Event ---")
	name, err := s.prompt("Enter Event Name: ")
	if err != nil {
		return
	}
	date, ok := s.promptDate("Enter Date (DD-MM-YYYY): ")
	if !ok {
		return
	}
	at, ok := s.promptClock("Enter Time (HH:MM): ")
	if !ok {
		return
	}

	// Check the slot before asking for the remaining fields so a
	// blocked time fails fast with suggestions.
	if schedule.Conflicts(s.repo.Events(), date, at, event.NoExclusion) {
		fmt.Fprintln(s.out, "!! Conflict detected: an event already occupies this date and time.")
		s.renderSlots(date)
		return
	}

	typ, err := s.prompt("Enter Event Type (e.g. Meeting, Conference, Personal): ")
	if err != nil {
		return
	}
	location, err := s.prompt("Enter Location (optional): ")
	if err != nil {
		return
	}

	created, err := s.repo.Add(name, date, at, typ, location)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Event added successfully (ID %d).\n", created.ID)
}

func (s *Shell) editEvent() {
	fmt.Fprintln(s.out, "\n--- Edit Event ---")
	id, ok := s.promptID("Enter the ID of the event to edit: ")
	if !ok {
		return
	}
	current, found := s.repo.FindByID(id)
	if !found {
		fmt.Fprintf(s.out, "Event with ID %d not found.\n", id)
		return
	}
	fmt.Fprintln(s.out, "Editing event:", current)

	var u event.Update

	name, err := s.prompt(fmt.Sprintf("Enter new Name (or press Enter to keep %q): ", current.Name))
	if err != nil {
		return
	}
	if name != "" {
		u.Name = &name
	}

	dateStr, err := s.prompt(fmt.Sprintf("Enter new Date (DD-MM-YYYY) (or press Enter to keep '%s'): ", current.Date))
	if err != nil {
		return
	}
	if dateStr != "" {
		date, perr := event.ParseDate(dateStr)
		if perr != nil {
			s.reportError(perr)
			return
		}
		u.Date = &date
	}

	timeStr, err := s.prompt(fmt.Sprintf("Enter new Time (HH:MM) (or press Enter to keep '%s'): ", current.Time))
	if err != nil {
		return
	}
	if timeStr != "" {
		at, perr := event.ParseClock(timeStr)
		if perr != nil {
			s.reportError(perr)
			return
		}
		u.Time = &at
	}

	typ, err := s.prompt(fmt.Sprintf("Enter new Type (or press Enter to keep %q): ", current.Type))
	if err != nil {
		return
	}
	if typ != "" {
		u.Type = &typ
	}

	location, err := s.prompt(fmt.Sprintf("Enter new Location (or press Enter to keep %q): ", current.Location))
	if err != nil {
		return
	}
	if location != "" {
		u.Location = &location
	}

	// The repository applies the update all-or-nothing: a conflicting
	// date/time leaves every field, name included, untouched.
	updated, err := s.repo.Edit(id, u)
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "Event updated successfully:", *updated)
}

func (s *Shell) deleteEvent() {
	fmt.Fprintln(s.out, "\n--- Delete Event ---")
	id, ok := s.promptID("Enter the ID of the event to delete: ")
	if !ok {
		return
	}
	if err := s.repo.Delete(id); err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintln(s.out, "Event deleted successfully.")
}

func (s *Shell) viewMenu() {
	fmt.Fprint(s.out, `
--- View Events ---
1. View Today's Events
2. View Events for a Specific Day
3. View All Events
`)
	choice, err := s.prompt("Choose an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		s.viewForDate(event.DateOf(now()))
	case "2":
		date, ok := s.promptDate("Enter Date (DD-MM-YYYY): ")
		if !ok {
			return
		}
		s.viewForDate(date)
	case "3":
		s.renderEvents(query.ListAll(s.repo))
	default:
		fmt.Fprintln(s.out, "Invalid option.")
	}
}

func (s *Shell) viewForDate(date event.Date) {
	fmt.Fprintf(s.out, "\n--- Events for %s ---\n", date)
	s.renderEvents(query.ListForDate(s.repo, date))
}

func (s *Shell) searchEvents() {
	fmt.Fprintln(s.out, "\n--- Search Events ---")
	keyword, err := s.prompt("Enter search keyword (matches name or type): ")
	if err != nil {
		return
	}
	found := query.Search(s.repo, keyword)
	fmt.Fprintf(s.out, "Found %d matching event(s):\n", len(found))
	s.renderEvents(found)
}

func (s *Shell) sendReminders() {
	fmt.Fprintln(s.out, "\n--- Send Event Reminders ---")
	id, ok := s.promptID("Enter the ID of the event to send reminders for: ")
	if !ok {
		return
	}
	e, found := s.repo.FindByID(id)
	if !found {
		fmt.Fprintf(s.out, "Event with ID %d not found.\n", id)
		return
	}

	path := s.contactsPath
	input, err := s.prompt(fmt.Sprintf("Enter contacts file path (or press Enter for '%s'): ", path))
	if err != nil {
		return
	}
	if input != "" {
		path = input
	}

	contacts, err := reminder.LoadContacts(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: could not read the contacts file: %v\n", err)
		return
	}
	if len(contacts) == 0 {
		fmt.Fprintln(s.out, "No contacts found in the file.")
		return
	}
	reminder.Notify(s.out, e, contacts)
}

func (s *Shell) showStatistics() {
	fmt.Fprintln(s.out, "\n--- Event Statistics ---")
	stats := query.Stats(s.repo)
	if stats.Total == 0 {
		fmt.Fprintln(s.out, "No events to show statistics for.")
		return
	}
	fmt.Fprintf(s.out, "Total number of events: %d\n", stats.Total)
	fmt.Fprintln(s.out, "Events by type:")
	for _, typ := range sortedKeys(stats.ByType) {
		fmt.Fprintf(s.out, "  - %s: %d\n", typ, stats.ByType[typ])
	}
}

// renderEvents prints events between separator rules, or a placeholder
// when there is nothing to show. Callers pass display-ordered slices.
func (s *Shell) renderEvents(events []event.Event) {
	if len(events) == 0 {
		fmt.Fprintln(s.out, "No events to display.")
		return
	}
	rule := strings.Repeat("-", 101)
	fmt.Fprintln(s.out, rule)
	for _, e := range events {
		fmt.Fprintln(s.out, e)
	}
	fmt.Fprintln(s.out, rule)
}

// renderSlots prints the free slots on date, shown whenever a conflict
// blocks a mutation.
func (s *Shell) renderSlots(date event.Date) {
	fmt.Fprintf(s.out, "--- Suggested available slots for %s ---\n", date)
	slots := schedule.SuggestSlots(s.repo.Events(), date)
	if len(slots) == 0 {
		fmt.Fprintf(s.out, "No available 1-hour slots between %s and %s.\n", schedule.DayStart, schedule.DayEnd)
		return
	}
	parts := make([]string, len(slots))
	for i, c := range slots {
		parts[i] = c.String()
	}
	fmt.Fprintln(s.out, "Available slots: "+strings.Join(parts, ", "))
}

// reportError renders a repository error. Conflicts additionally
// trigger slot suggestion for the blocked date.
func (s *Shell) reportError(err error) {
	var conflict *event.ConflictError
	if errors.As(err, &conflict) {
		fmt.Fprintln(s.out, "!! Conflict detected: cannot use this time slot, it is already occupied.")
		s.renderSlots(conflict.Date)
		return
	}
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

// prompt writes msg and reads one trimmed line. It returns an error
// only when input is exhausted.
func (s *Shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) promptDate(msg string) (event.Date, bool) {
	input, err := s.prompt(msg)
	if err != nil {
		return event.Date{}, false
	}
	date, err := event.ParseDate(input)
	if err != nil {
		s.reportError(err)
		return event.Date{}, false
	}
	return date, true
}

func (s *Shell) promptClock(msg string) (event.Clock, bool) {
	input, err := s.prompt(msg)
	if err != nil {
		return 0, false
	}
	at, err := event.ParseClock(input)
	if err != nil {
		s.reportError(err)
		return 0, false
	}
	return at, true
}

func (s *Shell) promptID(msg string) (int, bool) {
	input, err := s.prompt(msg)
	if err != nil {
		return 0, false
	}
	id, err := strconv.Atoi(input)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid ID %q. Please enter a number.\n", input)
		return 0, false
	}
	return id, true
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
