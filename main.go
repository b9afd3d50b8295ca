package main

import (
	"errors"
	"fmt"
	"os"

	"tedi/editor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tedi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ed := editor.New()

	err := ed.EnableRawMode()
	if err != nil {
		return err
	}
	// Registered before anything fallible runs so every exit path, normal
	// or not, leaves the terminal usable.
	defer ed.RestoreTerminal()

	if err := ed.Init(); err != nil {
		return err
	}
	if len(os.Args) > 1 {
		if err := ed.Open(os.Args[1]); err != nil {
			return err
		}
	}

	ed.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		ed.RefreshScreen()
		if err := ed.ProcessKeypress(); err != nil {
			ed.ClearScreen()
			if errors.Is(err, editor.ErrQuit) {
				return nil
			}
			return err
		}
	}
}
