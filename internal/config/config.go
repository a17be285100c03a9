// Package config provides YAML-based game configuration loading and
// difficulty profiles for the splitter.
package config

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned when a difficulty key has no profile.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// SplitterConfig contains all configuration for the Ball Splitter game.
type SplitterConfig struct {
	DefaultDifficulty string             `yaml:"default_difficulty"`
	Base              BaseConfig         `yaml:"base"`
	Surface           SurfaceConfig      `yaml:"surface"`
	Progression       ProgressionConfig  `yaml:"progression"`
	Scoring           ScoringConfig      `yaml:"scoring"`
	Difficulties      map[string]Profile `yaml:"difficulties"`
}

// BaseConfig defines constants shared by every difficulty.
type BaseConfig struct {
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	WallThickness float64 `yaml:"wall_thickness"`
	MinCutPadding float64 `yaml:"min_cut_padding"`
}

// SurfaceConfig maps terminal cells onto surface units.
type SurfaceConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	HUDRows    int     `yaml:"hud_rows"`
}

// ProgressionConfig defines how level parameters scale with the level number.
type ProgressionConfig struct {
	SpeedMinPerLevel  float64 `yaml:"speed_min_per_level"`
	SpeedMaxPerLevel  float64 `yaml:"speed_max_per_level"`
	WallSpeedPerLevel float64 `yaml:"wall_speed_per_level"`
	MinWallSpeed      float64 `yaml:"min_wall_speed"`
	TargetPerLevel    float64 `yaml:"target_per_level"`
	MaxTarget         float64 `yaml:"max_target"`
	RampPerLevel      float64 `yaml:"ramp_per_level"`
}

// ScoringConfig defines the score formula constants.
type ScoringConfig struct {
	CaptureScale    float64 `yaml:"capture_scale"`     // Points per full surface captured
	LevelFactor     float64 `yaml:"level_factor"`      // Per-level multiplier increment
	LevelClearBonus float64 `yaml:"level_clear_bonus"` // Bonus per level on reaching the target
}

// Profile is a named difficulty profile.
type Profile struct {
	Label                  string  `yaml:"label"`
	BaseBalls              int     `yaml:"base_balls"`
	SpeedMin               float64 `yaml:"speed_min"`
	SpeedMax               float64 `yaml:"speed_max"`
	SpeedUpPerCut          float64 `yaml:"speed_up_per_cut"`
	BaseWallSpeed          float64 `yaml:"base_wall_speed"`
	TargetCapture          float64 `yaml:"target_capture"`
	ScoreMult              float64 `yaml:"score_mult"`
	BallGrowthInterval     int     `yaml:"ball_growth_interval"`
	PassiveSpeedRampPerSec float64 `yaml:"passive_speed_ramp_per_sec"`
}

// Profile returns the profile for the given difficulty key.
func (c SplitterConfig) Profile(key string) (Profile, error) {
	p, ok := c.Difficulties[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, key)
	}
	return p, nil
}

// Validate checks the configuration for values the simulation cannot run with.
func (c SplitterConfig) Validate() error {
	if len(c.Difficulties) == 0 {
		return errors.New("config: no difficulties defined")
	}
	if _, ok := c.Difficulties[c.DefaultDifficulty]; !ok {
		return fmt.Errorf("%w: default %q", ErrUnknownDifficulty, c.DefaultDifficulty)
	}
	if c.Base.MinRadius <= 0 || c.Base.MaxRadius < c.Base.MinRadius {
		return fmt.Errorf("config: invalid radius range [%v, %v]", c.Base.MinRadius, c.Base.MaxRadius)
	}
	if c.Base.WallThickness < 0 || c.Base.MinCutPadding <= 0 {
		return errors.New("config: wall thickness and cut padding must be positive")
	}
	if c.Surface.CellWidth <= 0 || c.Surface.CellHeight <= 0 {
		return errors.New("config: surface cell size must be positive")
	}
	for key, p := range c.Difficulties {
		if p.BaseBalls < 1 {
			return fmt.Errorf("config: difficulty %q needs at least one ball", key)
		}
		if p.SpeedMax < p.SpeedMin || p.SpeedMin < 0 {
			return fmt.Errorf("config: difficulty %q has invalid speed range", key)
		}
		if p.BaseWallSpeed <= 0 {
			return fmt.Errorf("config: difficulty %q needs a positive wall speed", key)
		}
		if p.TargetCapture <= 0 || p.TargetCapture >= 1 {
			return fmt.Errorf("config: difficulty %q target capture must be in (0, 1)", key)
		}
	}
	return nil
}
