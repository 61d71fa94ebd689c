// Package reminder resolves contact addresses and reports simulated
// reminder delivery. Actual notification is out of scope; the addresses
// are only written to the given writer.
package reminder

import (
	"fmt"
	"io"
	"os"
	"strings"

	"eventman/internal/event"
)

// LoadContacts reads a plain-text contacts file, one address per line.
// Blank lines and surrounding whitespace are skipped.
func LoadContacts(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contacts file: %w", err)
	}
	var contacts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		contacts = append(contacts, line)
	}
	return contacts, nil
}

// Notify reports each contact as notified for the event.
func Notify(out io.Writer, e event.Event, contacts []string) {
	fmt.Fprintf(out, "Sending reminders for event: %s (%s %s)\n", e.Name, e.Date, e.Time)
	for _, c := range contacts {
		fmt.Fprintf(out, "  -> Sending reminder to %s\n", c)
	}
	fmt.Fprintln(out, "All reminders sent.")
}
