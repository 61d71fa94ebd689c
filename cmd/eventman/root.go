package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "eventman",
	Short: "Single-operator event scheduling console",
	Long: `eventman manages a personal set of calendar events with conflict
detection and free-slot suggestion. Every event occupies a fixed
one-hour block; a booking excludes new starts within an hour either
side of it.

Run without arguments to start the interactive admin shell, or use:

  shell     Start the interactive admin shell
  list      List events without entering the shell
  export    Export all events as an iCalendar file
  remind    Send (simulated) reminders for an event
  version   Display version information`,
	RunE: runShell,
}
