package skyhop

import "github.com/vovakirdan/skyhop/internal/core"

// Pose describes how the character should be drawn.
type Pose int

const (
	PoseStanding Pose = iota
	PoseRising
	PoseFalling
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseStanding:
		return "standing"
	case PoseRising:
		return "rising"
	case PoseFalling:
		return "falling"
	default:
		return "unknown"
	}
}

// Player is the controllable character.
// While Jumping is false both velocities are zero and the player rests on a surface.
type Player struct {
	X, Y    float64
	VX, VY  float64
	W, H    float64
	Jumping bool

	// LivesRemaining mirrors the global lives count when the player is built.
	// Gameplay never reads it.
	LivesRemaining int
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Pose derives the draw pose from the vertical velocity.
func (p Player) Pose() Pose {
	switch {
	case !p.Jumping:
		return PoseStanding
	case p.VY < 0:
		return PoseRising
	default:
		return PoseFalling
	}
}

// Platform is a surface the player can land on.
// The ground spans the world width, never moves and is never removed.
type Platform struct {
	X, Y   float64
	W, H   float64
	Ground bool
	Speed  float64 // Leftward scroll per tick
}

// Rect returns the platform's bounding box.
func (p Platform) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Gone reports whether the platform has fully left the screen on the left.
func (p Platform) Gone() bool {
	return !p.Ground && p.X+p.W < 0
}

// Star is the level goal.
type Star struct {
	X, Y float64
	W, H float64
}

// Rect returns the star's bounding box.
func (s Star) Rect() core.Rect {
	return core.NewRect(s.X, s.Y, s.W, s.H)
}
