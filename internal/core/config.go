package core

import (
	"errors"
	"fmt"
)

// RuntimeConfig contains configuration passed to games at initialization.
// ScreenW/ScreenH describe the presentation surface (terminal cells or window
// pixels); world dimensions live in the game config.
type RuntimeConfig struct {
	ScreenW  int   // Presentation width
	ScreenH  int   // Presentation height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for platform spawn heights
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Validate rejects configurations the loop cannot start with.
func (c RuntimeConfig) Validate() error {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return fmt.Errorf("core: invalid screen size %dx%d", c.ScreenW, c.ScreenH)
	}
	if c.TickRate <= 0 {
		return errors.New("core: tick rate must be positive")
	}
	return nil
}

// Phase is the state-machine mode gating which transitions are legal.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseGameOver
	PhaseLevelComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Level int   // Current level, 1-based
	Lives int   // Lives remaining, never negative
	Score int   // Current score
	Phase Phase // Running, GameOver or LevelComplete
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Paused reports whether the simulation is halted waiting for a command.
func (s GameState) Paused() bool {
	return s.Phase != PhaseRunning
}

// EventKind identifies something that happened during a tick or command.
type EventKind int

const (
	EventLevelLoaded EventKind = iota
	EventSpawned
	EventDespawned
	EventFellOff
	EventLanded
	EventStarCollected
	EventLifeLost
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLevelLoaded:
		return "level_loaded"
	case EventSpawned:
		return "spawned"
	case EventDespawned:
		return "despawned"
	case EventFellOff:
		return "fell_off"
	case EventLanded:
		return "landed"
	case EventStarCollected:
		return "star_collected"
	case EventLifeLost:
		return "life_lost"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records a notable state change, with the game state right after it.
type Event struct {
	Kind  EventKind
	Tick  uint64
	State GameState
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
