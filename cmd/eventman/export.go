package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventman/internal/ical"
	"eventman/internal/query"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all events as an iCalendar file",
	Long: `Export every event as a one-hour VEVENT in an iCalendar (.ics)
document, ready for import into other calendar tools.

Examples:
  eventman export
  eventman export --out my-events.ics`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "events.ics", "Output file path")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	repo := openRepository()
	events := query.ListAll(repo)

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("create %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := ical.Write(f, events); err != nil {
		return fmt.Errorf("serialize calendar: %w", err)
	}
	fmt.Printf("Exported %d event(s) to %s\n", len(events), exportOut)
	return nil
}
