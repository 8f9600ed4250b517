package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rosterpick/internal/core"
	"github.com/vovakirdan/rosterpick/internal/platform/tui"
	"github.com/vovakirdan/rosterpick/internal/roster"
	"github.com/vovakirdan/rosterpick/internal/selection"
	"github.com/vovakirdan/rosterpick/internal/storage"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Choose a character interactively",
	Long: `Open the selection screen. The confirmed character is used by the
gameplay scene until you change it or quit.

Controls:
  Up/Down, W/S, J/K  - Highlight previous/next (wraps around)
  Mouse hover        - Highlight a row
  Enter/Space/Click  - Confirm
  Esc/B              - Back without changing the choice
  Q/Ctrl+C           - Quit

Examples:
  rosterpick select
  rosterpick select --config ./my-roster.yaml
  rosterpick select --atlas 'assets/{char}-atlas.json'`,
	Run: runSelect,
}

func runSelect(_ *cobra.Command, _ []string) {
	logger := newLogger("rosterpick")

	setup, err := loadSetup(logger)
	if err != nil {
		if errors.Is(err, roster.ErrEmptyRoster) {
			fmt.Fprintln(os.Stderr, "Error: the roster has no characters. Add some under 'characters:' in the config.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open pick history (optional)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open pick history", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	state, err := tui.Run(setup, store, logger, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if name, ok := selection.NewBridge(state).Load(); ok {
		fmt.Printf("Selected: %s\n", name)
	}
}
