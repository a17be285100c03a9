package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-splitter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty and name picker",
	Long: `Start the splitter in interactive menu mode.

Pick a difficulty with the arrow keys, type your name and press Enter.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down      - Navigate difficulties
  Letters      - Edit player name
  Enter        - Start a run
  Tab          - High scores
  Esc/Ctrl+C   - Quit

Examples:
  splitter menu
  splitter menu --fps 30
  splitter menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom splitter config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(flagConfig, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	difficulty := cfg.DefaultDifficulty
	name := ""

	for {
		result, err := tui.RunMenu(cfg, store, rt, difficulty, name)
		if err != nil {
			return err
		}
		rt = result.Config
		name = result.PlayerName

		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}
		if result.Quit {
			return nil
		}

		difficulty = result.Difficulty
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}
		logger.Info("starting run", "difficulty", difficulty, "player", name, "seed", rt.Seed)

		if err := tui.Run(tui.ModelOptions{
			Config:     cfg,
			Runtime:    rt,
			Difficulty: difficulty,
			PlayerName: name,
			Store:      store,
			Logger:     logger,
			Bell:       os.Stderr,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
