// splitter is a terminal ball-splitter game: wall off bouncing balls to
// capture the playfield.
//
// Usage:
//
//	splitter play            - Play a run directly
//	splitter menu            - Pick difficulty and name interactively
//	splitter scores          - Show the high-score table
//	splitter difficulties    - List difficulty profiles
//	splitter serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.splitter/scores.db)
//	--log <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/core"
	"github.com/vovakirdan/tui-splitter/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "splitter",
	Short: "Splitter - wall off bouncing balls in your terminal",
	Long: `Splitter is a terminal game about building walls. Aim a cut, start it,
and let the wall close before a ball touches it. Rooms without balls are
captured; capture enough of the field to clear the level.

Available commands:
  play          - Play a run directly
  menu          - Interactive difficulty and name picker
  scores        - View high scores
  difficulties  - List difficulty profiles
  serve         - Start SSH server for remote play

Examples:
  splitter play --difficulty hard
  splitter menu
  splitter serve --ssh :2222
  splitter scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.splitter/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger. The alt screen owns the terminal during
// play, so logs only go to a file when --log is set.
func newLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           log.DebugLevel,
		ReportTimestamp: true,
		Prefix:          "splitter",
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// loadConfig loads the splitter config. Only an explicit --config path can
// fail; broken files on the search path are reported on stderr before the
// alt screen starts, and the embedded defaults are used.
func loadConfig(path string, logger *log.Logger) (config.SplitterConfig, error) {
	warn := log.NewWithOptions(os.Stderr, log.Options{Prefix: "config", Level: log.WarnLevel})
	cfg, err := config.Load(path, warn)
	if err != nil {
		return config.SplitterConfig{}, err
	}
	logger.Debug("config loaded", "path", path, "difficulties", len(cfg.Difficulties))
	return cfg, nil
}

// openStore opens the score database. Failures are reported and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.WithPrefix("storage").Warn("open failed", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
