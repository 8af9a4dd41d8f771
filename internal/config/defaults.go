package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			JumpHeight:   -15,
			JumpDistance: 75,
			JumpFrames:   30,
			BlockSpeed:   2,
		},
		Player: PlayerConfig{
			SpawnX: 50,
			Width:  30,
			Height: 30,
		},
		Spawner: SpawnerConfig{
			IntervalMS:     2000,
			StarMargin:     50,
			FloorOffset:    100,
			FloorClearance: 20,
			Fractions:      []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9},
		},
		Rules: RulesConfig{
			Lives:      3,
			StarPoints: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 1000,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
