package config

import (
	_ "embed"
)

//go:embed defaults/splitter.yaml
var defaultSplitterYAML []byte

// DefaultSplitterConfig returns the default Ball Splitter configuration.
func DefaultSplitterConfig() SplitterConfig {
	return SplitterConfig{
		DefaultDifficulty: DifficultyNormal,
		Base: BaseConfig{
			MinRadius:     7,
			MaxRadius:     12,
			WallThickness: 6,
			MinCutPadding: 18,
		},
		Surface: SurfaceConfig{
			CellWidth:  10,
			CellHeight: 20,
			HUDRows:    2,
		},
		Progression: ProgressionConfig{
			SpeedMinPerLevel:  7,
			SpeedMaxPerLevel:  9,
			WallSpeedPerLevel: 9,
			MinWallSpeed:      170,
			TargetPerLevel:    0.01,
			MaxTarget:         0.9,
			RampPerLevel:      0.08,
		},
		Scoring: ScoringConfig{
			CaptureScale:    10000,
			LevelFactor:     0.15,
			LevelClearBonus: 500,
		},
		Difficulties: map[string]Profile{
			DifficultyEasy: {
				Label:              "Easy",
				BaseBalls:          1,
				SpeedMin:           90,
				SpeedMax:           125,
				SpeedUpPerCut:      1.05,
				BaseWallSpeed:      430,
				TargetCapture:      0.72,
				ScoreMult:          0.9,
				BallGrowthInterval: 2,
			},
			DifficultyNormal: {
				Label:              "Normal",
				BaseBalls:          2,
				SpeedMin:           110,
				SpeedMax:           150,
				SpeedUpPerCut:      1.08,
				BaseWallSpeed:      380,
				TargetCapture:      0.75,
				ScoreMult:          1,
				BallGrowthInterval: 2,
			},
			DifficultyHard: {
				Label:              "Hard",
				BaseBalls:          3,
				SpeedMin:           130,
				SpeedMax:           180,
				SpeedUpPerCut:      1.11,
				BaseWallSpeed:      330,
				TargetCapture:      0.8,
				ScoreMult:          1.2,
				BallGrowthInterval: 2,
			},
			DifficultyElite: {
				Label:                  "Elite",
				BaseBalls:              5,
				SpeedMin:               150,
				SpeedMax:               210,
				SpeedUpPerCut:          1.14,
				BaseWallSpeed:          300,
				TargetCapture:          0.84,
				ScoreMult:              1.45,
				BallGrowthInterval:     1,
				PassiveSpeedRampPerSec: 0.012,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSplitterYAML
}
