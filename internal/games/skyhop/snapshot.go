package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// PlatformView is the read-only view of one platform.
type PlatformView struct {
	Rect   core.Rect
	Ground bool
}

// Snapshot captures everything a presenter needs to draw one frame.
// It shares no memory with the game, so it can cross goroutines.
type Snapshot struct {
	Tick      uint64
	Mode      Mode
	Level     int
	Lives     int
	Score     int
	Phase     core.Phase
	World     core.Rect // World bounds, origin at the top-left
	Player    core.Rect
	Pose      Pose
	Platforms []PlatformView
	Star      *core.Rect // nil once collected
}

// Snapshot returns the current render snapshot.
func (g *Game) Snapshot() Snapshot {
	views := make([]PlatformView, len(g.platforms))
	for i, p := range g.platforms {
		views[i] = PlatformView{Rect: p.Rect(), Ground: p.Ground}
	}

	var star *core.Rect
	if g.star != nil {
		r := g.star.Rect()
		star = &r
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      g.mode,
		Level:     g.level,
		Lives:     g.lives,
		Score:     g.score,
		Phase:     g.phase,
		World:     core.NewRect(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height),
		Player:    g.player.Rect(),
		Pose:      g.player.Pose(),
		Platforms: views,
		Star:      star,
	}
}
