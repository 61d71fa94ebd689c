package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"eventman/internal/event"
	"eventman/internal/query"
)

var (
	listDate string
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events without entering the shell",
	Long: `List events sorted by date and time.

Examples:
  eventman list
  eventman list --date 24-12-2026
  eventman list --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "Only events on this date (DD-MM-YYYY)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	repo := openRepository()

	var events []event.Event
	if listDate != "" {
		date, err := event.ParseDate(listDate)
		if err != nil {
			return err
		}
		events = query.ListForDate(repo, date)
	} else {
		events = query.ListAll(repo)
	}

	if listJSON {
		data, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(events) == 0 {
		fmt.Println("No events to display.")
		return nil
	}
	for _, e := range events {
		fmt.Println(e)
	}
	fmt.Fprintf(os.Stderr, "%d event(s)\n", len(events))
	return nil
}
