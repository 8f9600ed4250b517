// rosterpick is a terminal character-selection screen with sprite previews.
//
// Usage:
//
//	rosterpick list              - List the roster and how each entry previews
//	rosterpick select            - Pick a character interactively
//	rosterpick serve             - Start SSH server for remote selection
//	rosterpick picks             - Show pick history
//	rosterpick atlas extract     - Split an atlas image into sprites
//	rosterpick atlas apply       - Rebuild an atlas image from sprites
//
// Global flags:
//
//	--config <path>     - Roster config YAML (default: search order)
//	--db <path>         - Pick history database (default: ~/.rosterpick/picks.db)
//	--atlas <path>      - Atlas metadata JSON, may contain {char}
//	--log-level <lvl>   - debug, info, warn, error (default: info)
//
// Environment: ROSTERPICK_CONFIG, ROSTERPICK_DB, ROSTERPICK_ATLAS and
// ROSTERPICK_LOG_LEVEL apply when the matching flag is not set.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rosterpick/internal/atlas"
	"github.com/vovakirdan/rosterpick/internal/config"
	"github.com/vovakirdan/rosterpick/internal/preview"
	"github.com/vovakirdan/rosterpick/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagAtlas    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rosterpick",
	Short: "rosterpick - choose your character in the terminal",
	Long: `rosterpick shows a roster of playable characters with a live preview
of the highlighted one. The confirmed choice is handed to the gameplay scene
for the rest of the session.

Available commands:
  list     - Show the roster
  select   - Interactive character selection
  serve    - Start SSH server for remote play
  picks    - View pick history
  atlas    - Sprite atlas tools

Examples:
  rosterpick list
  rosterpick select
  rosterpick select --config ./my-roster.yaml
  rosterpick serve --ssh :2222
  rosterpick atlas extract --image atlas.png --data atlas.json --out sprites/`,
	PersistentPreRunE: applyEnv,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to roster config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rosterpick/picks.db", "Path to pick history database")
	rootCmd.PersistentFlags().StringVar(&flagAtlas, "atlas", "", "Atlas metadata JSON (overrides config atlas.data)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(picksCmd)
	rootCmd.AddCommand(atlasCmd)
}

// applyEnv fills global flags the user did not set from the environment.
func applyEnv(cmd *cobra.Command, _ []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	override := func(name, value string, dst *string) {
		if value != "" && !flags.Changed(name) {
			*dst = value
		}
	}
	override("config", env.ConfigPath, &flagConfig)
	override("db", env.DBPath, &flagDBPath)
	override("atlas", env.AtlasData, &flagAtlas)
	override("log-level", env.LogLevel, &flagLogLevel)
	return nil
}

// newLogger creates the host logger at the configured level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadSetup loads the roster config and builds everything a selection
// screen needs. An empty roster is reported here, before any UI starts.
func loadSetup(logger *log.Logger) (tui.Setup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return tui.Setup{}, err
	}

	catalog, err := cfg.Catalog()
	if err != nil {
		return tui.Setup{}, err
	}

	opts := []preview.Option{preview.WithDefaultColor(cfg.DefaultSwatch())}
	sheet, err := loadSheet(cfg)
	if err != nil {
		// Without sprites every entry previews as a swatch.
		logger.Warn("could not load atlas, using swatches", "error", err)
	} else {
		opts = append(opts, preview.WithSprites(sheet))
		logger.Debug("atlas loaded", "frames", sheet.Len())
	}

	return tui.Setup{
		Catalog: catalog,
		Bounds:  cfg.PreviewBounds(),
		Options: opts,
		Theme:   tui.ThemeByName(cfg.UI.Theme),
	}, nil
}

// loadSheet resolves atlas metadata: --atlas, then config, then the
// embedded atlas.
func loadSheet(cfg config.Config) (*atlas.Sheet, error) {
	data := cfg.Atlas.Data
	if flagAtlas != "" {
		data = flagAtlas
	}
	if data == "" {
		a, err := atlas.Parse(config.DefaultAtlasJSON())
		if err != nil {
			return nil, err
		}
		return atlas.NewSheet(a), nil
	}
	return atlas.LoadSheet(data, cfg.Atlas.Characters)
}
