package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty profiles",
	Long: `Shows every difficulty profile with its level 1 parameters.

Examples:
  splitter difficulties
  splitter difficulties --config ./my-splitter.yaml`,
	Args: cobra.NoArgs,
	RunE: runDifficulties,
}

func init() {
	difficultiesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom splitter config YAML")
}

func runDifficulties(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig, log.Default())
	if err != nil {
		return err
	}

	keys := cfg.ProfileKeys()
	maxKeyLen := len("Key")
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, len(k))
	}

	fmt.Println("Difficulties (level 1):")
	fmt.Println()
	fmt.Printf("  %-*s  %-8s  %5s  %-9s  %5s  %6s  %5s\n", maxKeyLen, "Key", "Label", "Balls", "Speed", "Wall", "Target", "Mult")
	fmt.Printf("  %-*s  %-8s  %5s  %-9s  %5s  %6s  %5s\n", maxKeyLen, "---", "-----", "-----", "-----", "----", "------", "----")

	for _, k := range keys {
		p := cfg.Difficulties[k]
		lc := cfg.LevelConfig(p, 1)
		marker := " "
		if k == cfg.DefaultDifficulty {
			marker = "*"
		}
		fmt.Printf("%s %-*s  %-8s  %5d  %4.0f-%-4.0f  %5.0f  %5.0f%%  %5.2f\n",
			marker, maxKeyLen, k, p.Label, lc.BallCount, lc.SpeedMin, lc.SpeedMax,
			lc.WallSpeed, lc.TargetCapture*100, p.ScoreMult)
	}

	fmt.Println()
	fmt.Println("* default. Run 'splitter play --difficulty <key>' to play one.")
	return nil
}
