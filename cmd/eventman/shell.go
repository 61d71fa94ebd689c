package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"eventman/internal/auth"
	"eventman/internal/config"
	"eventman/internal/event"
	"eventman/internal/schedule"
	"eventman/internal/shell"
	"eventman/internal/store"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive admin shell",
	Long: `Start the interactive admin shell: a password-gated menu for
adding, editing, deleting, viewing and searching events, sending
reminders and viewing statistics.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	PrintBanner()

	repo := openRepository()
	verifier := auth.NewSecretVerifier(config.AdminSecret())
	s := shell.New(os.Stdin, os.Stdout, repo, verifier, config.ContactsPath())
	return s.Run()
}

// openRepository loads the event set from the configured store. A read
// failure degrades to an empty collection; the shell still starts.
func openRepository() *event.Repository {
	st := store.New(config.StorePath())
	repo, err := event.NewRepository(st, schedule.Conflicts)
	if err != nil {
		log.Printf("[store] starting with an empty collection: %v", err)
	}
	return repo
}
