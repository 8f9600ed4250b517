package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rosterpick/internal/platform/tui"
	"github.com/vovakirdan/rosterpick/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var picksCmd = &cobra.Command{
	Use:   "picks",
	Short: "Show pick history",
	Long: `Display how often each character was confirmed and the latest picks.
History is for reporting only; it never decides the starting highlight.

Examples:
  rosterpick picks
  rosterpick picks --plain --limit 5
  rosterpick picks --clear`,
	Run: runPicks,
}

func init() {
	picksCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of the interactive view")
	picksCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent picks to print")
	picksCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all pick history")
}

func runPicks(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pick history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearPicks(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Pick history cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunPicks(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printPicks(store, flagLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printPicks writes the history as plain text.
func printPicks(store *storage.Store, limit int) error {
	counts, err := store.PickCounts()
	if err != nil {
		return err
	}

	fmt.Println("Pick History")
	fmt.Println()

	if len(counts) == 0 {
		fmt.Println("No picks recorded yet.")
		fmt.Println()
		fmt.Println("Run 'rosterpick select' to choose a character!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Character", "Picks")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "---------", "-----")
	for i, c := range counts {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, c.Character, c.Count)
	}

	recent, err := store.RecentPicks(limit)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Recent:")
	for _, p := range recent {
		fmt.Printf("  %s  %-16s  %s\n", p.CreatedAt.Format("2006-01-02 15:04"), p.Character, p.SessionID)
	}
	return nil
}
