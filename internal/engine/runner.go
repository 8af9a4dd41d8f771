// Package engine runs a game on a dedicated goroutine: one owner applies
// commands and steps the simulation at a fixed tick rate.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// commandBuffer is how many commands may queue between ticks.
const commandBuffer = 16

// ErrQuit is returned by Run when an ActionQuit command stops the loop.
var ErrQuit = errors.New("engine: quit requested")

// Observer is called after every tick on the runner goroutine.
// It may read the game, which is not mutated while the observer runs.
type Observer func(res core.StepResult)

// Runner owns a game and drives it from a single goroutine.
type Runner struct {
	game     registry.Game
	tickRate int
	cmds     chan core.Action
	observer Observer
	logger   *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithObserver registers the per-tick observer.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a runner for an already reset game.
func NewRunner(game registry.Game, tickRate int, opts ...Option) *Runner {
	if tickRate <= 0 {
		tickRate = 60
	}
	r := &Runner{
		game:     game,
		tickRate: tickRate,
		cmds:     make(chan core.Action, commandBuffer),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Send queues a command for the owning goroutine. It never blocks and
// reports false when the queue is full.
func (r *Runner) Send(a core.Action) bool {
	select {
	case r.cmds <- a:
		return true
	default:
		return false
	}
}

// Run steps the game until ctx is cancelled, a quit command arrives or
// maxTicks ticks have run (0 means no limit). It returns the final state.
func (r *Runner) Run(ctx context.Context, maxTicks uint64) (core.GameState, error) {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickRate))
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			return r.game.State(), ctx.Err()

		case a := <-r.cmds:
			if a == core.ActionQuit {
				return r.game.State(), ErrQuit
			}
			if !r.game.Handle(a) {
				r.logger.Debug("command ignored", "action", a, "phase", r.game.State().Phase)
			}

		case <-ticker.C:
			res := r.game.Step()
			LogEvents(r.logger, res.Events)
			if r.observer != nil {
				r.observer(res)
			}

			ticks++
			if maxTicks > 0 && ticks >= maxTicks {
				return res.State, nil
			}
		}
	}
}

// LogEvents writes game events to the logger. Level changes and losses are
// reported at info, everything else at debug.
func LogEvents(logger *log.Logger, events []core.Event) {
	for _, e := range events {
		kv := []any{
			"event", e.Kind,
			"tick", e.Tick,
			"level", e.State.Level,
			"lives", e.State.Lives,
			"score", e.State.Score,
		}
		switch e.Kind {
		case core.EventLevelLoaded, core.EventStarCollected, core.EventLifeLost, core.EventGameOver:
			logger.Info("game", kv...)
		default:
			logger.Debug("game", kv...)
		}
	}
}
