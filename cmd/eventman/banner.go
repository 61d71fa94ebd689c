package main

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const banner = `==============================================
  eventman  --  smart event scheduling
==============================================`

// PrintBanner displays the startup banner when stdout is a terminal.
// Piped output stays clean for scripting.
func PrintBanner() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	fmt.Println(banner)
}
