package config

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Built-in difficulty keys.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
	DifficultyElite  = "elite"
)

// builtinOrder is the display order of the built-in profiles.
var builtinOrder = []string{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyElite}

// LevelConfig holds the parameters of a single level, derived from a profile.
// It is immutable once a level starts.
type LevelConfig struct {
	BallCount              int
	SpeedMin               float64
	SpeedMax               float64
	SpeedUpPerCut          float64
	WallSpeed              float64
	TargetCapture          float64
	PassiveSpeedRampPerSec float64
}

// LevelConfig derives the parameters for the given level (1-based).
func (c SplitterConfig) LevelConfig(p Profile, level int) LevelConfig {
	if level < 1 {
		level = 1
	}
	prog := c.Progression

	growth := p.BallGrowthInterval
	if growth <= 0 {
		growth = 2
	}

	lv := float64(level)
	return LevelConfig{
		BallCount:              p.BaseBalls + (level-1)/growth,
		SpeedMin:               p.SpeedMin + lv*prog.SpeedMinPerLevel,
		SpeedMax:               p.SpeedMax + lv*prog.SpeedMaxPerLevel,
		SpeedUpPerCut:          p.SpeedUpPerCut,
		WallSpeed:              math.Max(prog.MinWallSpeed, p.BaseWallSpeed-lv*prog.WallSpeedPerLevel),
		TargetCapture:          math.Min(prog.MaxTarget, p.TargetCapture+lv*prog.TargetPerLevel),
		PassiveSpeedRampPerSec: p.PassiveSpeedRampPerSec * (1 + (lv-1)*prog.RampPerLevel),
	}
}

// ProfileKeys returns the difficulty keys in display order: built-ins first,
// then any custom profiles sorted by key.
func (c SplitterConfig) ProfileKeys() []string {
	keys := make([]string, 0, len(c.Difficulties))
	seen := make(map[string]bool, len(c.Difficulties))
	for _, k := range builtinOrder {
		if _, ok := c.Difficulties[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	var custom []string
	for k := range c.Difficulties {
		if !seen[k] {
			custom = append(custom, k)
		}
	}
	sort.Strings(custom)
	return append(keys, custom...)
}

// ResolveDifficulty normalizes a difficulty flag value.
// An empty value selects the configured default.
func (c SplitterConfig) ResolveDifficulty(value string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	if key == "" {
		key = c.DefaultDifficulty
	}
	if _, ok := c.Difficulties[key]; !ok {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownDifficulty, value, strings.Join(c.ProfileKeys(), ", "))
	}
	return key, nil
}
