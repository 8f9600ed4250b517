package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rosterpick/internal/preview"
	"github.com/vovakirdan/rosterpick/internal/roster"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the roster",
	Long:  `Shows every character in roster order with how its preview is drawn.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
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

	renderer := setup.NewRenderer()
	entities := setup.Catalog.List()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, e := range entities {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Println("Roster:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "Name", "Preview", "Detail")
	fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, "----", "-------", "------")

	for _, e := range entities {
		s := renderer.Render(e)
		fmt.Printf("  %-*s  %-7s  %s\n", maxNameLen, e.Name, s.Mode, detail(s))
	}

	fmt.Println()
	fmt.Println("Run 'rosterpick select' to choose a character.")
}

// detail describes a preview state in one line.
func detail(s preview.State) string {
	switch s.Mode {
	case preview.ModeSprite:
		return fmt.Sprintf("%s %dx%d -> %dx%d", s.SpriteKey, s.Source.W, s.Source.H, s.Fitted.W, s.Fitted.H)
	case preview.ModeSwatch:
		return s.Color.Hex()
	}
	return ""
}
