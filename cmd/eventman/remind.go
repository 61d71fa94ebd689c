package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"eventman/internal/config"
	"eventman/internal/event"
	"eventman/internal/query"
	"eventman/internal/reminder"
)

var (
	remindContacts string
	remindEvery    string
)

var remindCmd = &cobra.Command{
	Use:   "remind [event-id]",
	Short: "Send (simulated) reminders for an event",
	Long: `Send reminders for one event to every address in the contacts
file (one address per line). Delivery is simulated: each address is
reported as notified.

With --every, run as a watcher instead: on the given cron schedule,
sweep the day's events and fan reminders out for each of them.

Examples:
  eventman remind 3
  eventman remind 3 --contacts team.txt
  eventman remind --every "0 8 * * *"`,
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().StringVar(&remindContacts, "contacts", "", "Contacts file (default from config)")
	remindCmd.Flags().StringVar(&remindEvery, "every", "", "Cron schedule for periodic reminder sweeps")
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, args []string) error {
	contactsPath := remindContacts
	if contactsPath == "" {
		contactsPath = config.ContactsPath()
	}

	if remindEvery != "" {
		return runRemindWatcher(contactsPath)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected exactly one event id (or --every for watcher mode)")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid event id %q", args[0])
	}

	repo := openRepository()
	e, found := repo.FindByID(id)
	if !found {
		return &event.NotFoundError{ID: id}
	}

	contacts, err := reminder.LoadContacts(contactsPath)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println("No contacts found in the file.")
		return nil
	}
	reminder.Notify(os.Stdout, e, contacts)
	return nil
}

// runRemindWatcher sweeps today's events on the given cron schedule and
// sends reminders for each. The store is re-read on every sweep so edits
// made between sweeps are picked up.
func runRemindWatcher(contactsPath string) error {
	c := cron.New()
	_, err := c.AddFunc(remindEvery, func() {
		sweepReminders(contactsPath)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", remindEvery, err)
	}

	log.Printf("[remind] watcher running (schedule %q), Ctrl-C to stop", remindEvery)
	c.Run()
	return nil
}

func sweepReminders(contactsPath string) {
	repo := openRepository()
	today := event.DateOf(time.Now())
	events := query.ListForDate(repo, today)
	if len(events) == 0 {
		log.Printf("[remind] no events today (%s), nothing to send", today)
		return
	}

	contacts, err := reminder.LoadContacts(contactsPath)
	if err != nil {
		log.Printf("[remind] sweep skipped: %v", err)
		return
	}
	log.Printf("[remind] sweeping %d event(s) for %s", len(events), today)
	for _, e := range events {
		reminder.Notify(os.Stdout, e, contacts)
	}
}
