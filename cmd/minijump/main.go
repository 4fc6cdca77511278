// minijump is a side-scrolling platformer built on a deterministic,
// frame-stepped simulation.
//
// Usage:
//
//	minijump play               - Play a level in a window
//	minijump replay <file>      - Re-run a recorded input file headlessly
//	minijump validate <file>... - Check level YAML files
//	minijump best               - Show best clear times
//
// Global flags:
//
//	--config <dir>     - Level directory (default: built-in levels)
//	--db <path>        - Best-time database (default: ~/.minijump/best.db)
//	--log-level <lvl>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/minijump/internal/infrastructure/config"
	"github.com/younwookim/minijump/internal/infrastructure/storage"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagLogLevel  string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minijump",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minijump",
	Short: "Mini Jump - a small side-scrolling platformer",
	Long: `Mini Jump is a side-scrolling platformer: run right, jump the holes,
stomp the patrols and the boss, and reach the goal.

Examples:
  minijump play
  minijump play --level default --record run.json
  minijump play --config ./configs --watch
  minijump replay run.json
  minijump validate ./configs/levels/*.yaml
  minijump best`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory holding levels/<name>.yaml (empty = built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to best-time database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(bestCmd)
}

func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	logger.SetOutput(cmd.ErrOrStderr())
	return nil
}

// newLoader returns a loader over --config, or over the built-in levels
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openStore opens the best-time database. Failure is logged, not fatal.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open best-time database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func levelName(name string) string {
	if name == "" {
		return config.DefaultLevel
	}
	return name
}
