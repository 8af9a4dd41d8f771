package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabledPassesThrough(t *testing.T) {
	d := NewDifficultyManager(DefaultGameConfig().Difficulty)

	if d.IsEnabled() {
		t.Error("default difficulty should be disabled")
	}
	if got := d.Speed(2, 5000, 10000); got != 2 {
		t.Errorf("Speed() = %f, expected base speed 2", got)
	}
	if got := d.Interval(2*time.Second, 5000, 10000); got != 2*time.Second {
		t.Errorf("Interval() = %v, expected 2s", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty
	cfg.Enabled = true
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score     int
		wantLevel float64
		wantSpeed float64
	}{
		{0, 0.0, 2.0},
		{500, 0.5, 3.0},
		{1000, 1.0, 4.0},
		{5000, 1.0, 4.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); got != tc.wantLevel {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.wantLevel)
		}
		if got := d.Speed(2, tc.score, 0); got != tc.wantSpeed {
			t.Errorf("Speed(%d) = %f, expected %f", tc.score, got, tc.wantSpeed)
		}
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty
	cfg.Enabled = true
	cfg.Scaling.IntervalReduction = 5000
	d := NewDifficultyManager(cfg)

	if got := d.Interval(2*time.Second, 1000, 0); got != minSpawnInterval {
		t.Errorf("Interval() = %v, expected floor %v", got, minSpawnInterval)
	}
}

func TestDifficultyInitialLevel(t *testing.T) {
	cfg := DefaultGameConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = InitialLevelForPreset(DifficultyHard)
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.7 {
		t.Errorf("Level at start = %f, expected 0.7", got)
	}
}
