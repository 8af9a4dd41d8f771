// Package config provides YAML/TOML-based game configuration loading,
// validation, difficulty management and file watching.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GameConfig contains all tunables for the game.
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen" toml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Spawner    SpawnerConfig    `yaml:"spawner" toml:"spawner"`
	Rules      RulesConfig      `yaml:"rules" toml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ScreenConfig defines the world size in pixels.
type ScreenConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig defines per-tick physics parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity" toml:"gravity"`
	JumpHeight   float64 `yaml:"jump_height" toml:"jump_height"`     // Initial vertical velocity, negative = up
	JumpDistance float64 `yaml:"jump_distance" toml:"jump_distance"` // Horizontal distance spread over JumpFrames
	JumpFrames   float64 `yaml:"jump_frames" toml:"jump_frames"`
	BlockSpeed   float64 `yaml:"block_speed" toml:"block_speed"` // Leftward scroll per tick
}

// JumpVelocityX returns the constant forward drift applied during a jump.
func (p PhysicsConfig) JumpVelocityX() float64 {
	return p.JumpDistance / p.JumpFrames
}

// PlayerConfig defines the player's spawn point and size.
type PlayerConfig struct {
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// SpawnerConfig defines endless-mode platform generation.
type SpawnerConfig struct {
	IntervalMS     int       `yaml:"interval_ms" toml:"interval_ms"`
	StarMargin     float64   `yaml:"star_margin" toml:"star_margin"`         // Highest spawn sits this far below the star
	FloorOffset    float64   `yaml:"floor_offset" toml:"floor_offset"`       // Spawn floor = screen height - offset
	FloorClearance float64   `yaml:"floor_clearance" toml:"floor_clearance"` // Lowest spawn sits this far above the floor
	Fractions      []float64 `yaml:"fractions" toml:"fractions"`             // Candidate height fractions
}

// Interval returns the spawn interval as a duration.
func (s SpawnerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// RulesConfig defines scoring and lives.
type RulesConfig struct {
	Lives      int `yaml:"lives" toml:"lives"`
	StarPoints int `yaml:"star_points" toml:"star_points"`
}

// Validate checks that the configuration can drive a simulation.
func (c GameConfig) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %gx%g", c.Screen.Width, c.Screen.Height))
	}
	if c.Physics.JumpFrames <= 0 {
		errs = append(errs, errors.New("physics.jump_frames must be positive"))
	}
	if c.Physics.BlockSpeed < 0 {
		errs = append(errs, errors.New("physics.block_speed must not be negative"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Player.SpawnX < 0 || c.Player.SpawnX > c.Screen.Width {
		errs = append(errs, fmt.Errorf("player.spawn_x %g is off screen", c.Player.SpawnX))
	}
	if c.Spawner.IntervalMS <= 0 {
		errs = append(errs, errors.New("spawner.interval_ms must be positive"))
	}
	if len(c.Spawner.Fractions) == 0 {
		errs = append(errs, errors.New("spawner.fractions must not be empty"))
	}
	for _, f := range c.Spawner.Fractions {
		if f < 0 || f > 1 {
			errs = append(errs, fmt.Errorf("spawner fraction %g outside [0, 1]", f))
		}
	}
	if c.Rules.Lives <= 0 {
		errs = append(errs, errors.New("rules.lives must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type" toml:"type"`     // "score", "time", or "none"
	MaxAt int    `yaml:"max_at" toml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`     // Added to block speed factor at max difficulty
	IntervalReduction int     `yaml:"interval_reduction" toml:"interval_reduction"` // Spawn interval reduction (ms) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
	case DifficultyHard:
		cfg.Rules.Lives = 2
	}
}
