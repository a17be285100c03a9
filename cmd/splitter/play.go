package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-splitter/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
	flagName       string
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run on the chosen difficulty.

Controls:
  Mouse drag       - Aim a cut, release to start it
  Arrows/hjkl      - Move the crosshair
  Space/Tab        - Flip cut orientation
  Enter/C          - Start a cut (next level after a clear)
  N                - Next level
  D                - Cycle difficulty and start a new run
  R                - New run
  Q/Ctrl+C         - Quit

Difficulty options:
  easy, normal, hard, elite (or any profile from --config)

Examples:
  splitter play
  splitter play --difficulty hard --name Ada
  splitter play --config ./my-splitter.yaml
  splitter play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom splitter config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty profile (default from config)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name stored with the score")
	playCmd.Flags().BoolVar(&flagBell, "bell", true, "Ring the terminal bell on level clear and game over")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagConfig, logger)
	if err != nil {
		return err
	}
	difficulty, err := cfg.ResolveDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	var bell io.Writer
	if flagBell {
		bell = os.Stderr
	}

	if err := tui.Run(tui.ModelOptions{
		Config:     cfg,
		Runtime:    runtimeConfig(),
		Difficulty: difficulty,
		PlayerName: flagName,
		Store:      store,
		Logger:     logger,
		Bell:       bell,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
