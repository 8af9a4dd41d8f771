package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Decode(DefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Decode(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded YAML drifted from DefaultGameConfig:\n got %+v\nwant %+v", cfg, DefaultGameConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestDecodePartialYAML(t *testing.T) {
	data := []byte(`
physics:
  gravity: 0.8
rules:
  lives: 7
`)
	cfg, err := Decode(data, FormatYAML)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %f, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Rules.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Rules.Lives)
	}
	// Untouched sections keep defaults
	if cfg.Physics.JumpHeight != -15 {
		t.Errorf("jump_height = %f, expected default -15", cfg.Physics.JumpHeight)
	}
	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("screen = %gx%g, expected 800x600", cfg.Screen.Width, cfg.Screen.Height)
	}
}

func TestLoadFileTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skyhop.toml")
	data := `
[physics]
block_speed = 3.5

[spawner]
interval_ms = 1500
fractions = [0.25, 0.5]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Physics.BlockSpeed != 3.5 {
		t.Errorf("block_speed = %f, expected 3.5", cfg.Physics.BlockSpeed)
	}
	if cfg.Spawner.Interval() != 1500*time.Millisecond {
		t.Errorf("interval = %v, expected 1.5s", cfg.Spawner.Interval())
	}
	if !reflect.DeepEqual(cfg.Spawner.Fractions, []float64{0.25, 0.5}) {
		t.Errorf("fractions = %v", cfg.Spawner.Fractions)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error for missing custom config")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("physics: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("screen:\n  width: 0\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !strings.Contains(err.Error(), "screen size") {
			t.Errorf("error should mention screen size, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero height", func(c *GameConfig) { c.Screen.Height = 0 }},
		{"zero jump frames", func(c *GameConfig) { c.Physics.JumpFrames = 0 }},
		{"negative block speed", func(c *GameConfig) { c.Physics.BlockSpeed = -1 }},
		{"spawn off screen", func(c *GameConfig) { c.Player.SpawnX = 900 }},
		{"no fractions", func(c *GameConfig) { c.Spawner.Fractions = nil }},
		{"fraction above one", func(c *GameConfig) { c.Spawner.Fractions = []float64{1.5} }},
		{"zero interval", func(c *GameConfig) { c.Spawner.IntervalMS = 0 }},
		{"no lives", func(c *GameConfig) { c.Rules.Lives = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		wantEnabled bool
		wantInitial float64
		wantLives   int
	}{
		{"", false, 0.0, 3},
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tc.wantInitial {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tc.wantInitial)
			}
			if cfg.Rules.Lives != tc.wantLives {
				t.Errorf("Lives = %d, expected %d", cfg.Rules.Lives, tc.wantLives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should map to DifficultyHard")
	}
	if ParsePreset("impossible") != "" {
		t.Error("unknown preset should map to empty")
	}
}

func TestJumpVelocityX(t *testing.T) {
	p := DefaultGameConfig().Physics
	if got := p.JumpVelocityX(); got != 2.5 {
		t.Errorf("JumpVelocityX() = %f, expected 2.5", got)
	}
}
