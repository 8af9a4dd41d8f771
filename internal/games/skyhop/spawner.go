package skyhop

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Spawner emits new platforms at the right edge on a wall-clock cadence.
// Spawn heights are drawn from a seeded RNG so runs are reproducible.
type Spawner struct {
	cfg      config.GameConfig
	rng      *rand.Rand
	interval time.Duration
	last     time.Time
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.GameConfig, seed int64) *Spawner {
	s := &Spawner{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		interval: cfg.Spawner.Interval(),
	}
	s.Reset()
	return s
}

// UpdateConfig swaps the configuration without touching the RNG.
func (s *Spawner) UpdateConfig(cfg config.GameConfig) {
	s.cfg = cfg
	s.interval = cfg.Spawner.Interval()
}

// Reset forgets the last spawn, so the next Update spawns immediately.
func (s *Spawner) Reset() {
	s.last = time.Time{}
}

// Interval returns the current spawn interval.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}

// SetInterval changes the spawn interval.
func (s *Spawner) SetInterval(d time.Duration) {
	s.interval = d
}

// Update spawns a platform when more than the interval has elapsed since the
// last spawn. The new platform enters at the right edge of the world.
func (s *Spawner) Update(now time.Time, starY, speed float64) (Platform, bool) {
	if !s.last.IsZero() && now.Sub(s.last) <= s.interval {
		return Platform{}, false
	}

	fractions := s.cfg.Spawner.Fractions
	frac := fractions[s.rng.Intn(len(fractions))]
	s.last = now

	return newBlock(s.cfg.Screen.Width, SpawnY(s.cfg, starY, frac), speed), true
}

// SpawnY returns the top of a platform placed at the given height fraction.
// Fraction 0 sits just above the spawn floor, fraction 1 just below the star.
func SpawnY(cfg config.GameConfig, starY, fraction float64) float64 {
	minY := starY + cfg.Spawner.StarMargin
	maxY := (cfg.Screen.Height - cfg.Spawner.FloorOffset) - cfg.Spawner.FloorClearance
	return maxY - (maxY-minY)*fraction
}
