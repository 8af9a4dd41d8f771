package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

func newGame() *skyhop.Game {
	g := skyhop.New()
	g.Configure(config.DefaultGameConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1000, Seed: 1})
	return g
}

func TestRunMaxTicks(t *testing.T) {
	g := newGame()
	var observed atomic.Int64
	r := NewRunner(g, 1000, WithObserver(func(core.StepResult) {
		observed.Add(1)
	}))

	state, err := r.Run(context.Background(), 25)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if observed.Load() != 25 {
		t.Errorf("observer called %d times, expected 25", observed.Load())
	}
	if state.Phase != core.PhaseRunning || state.Lives != 3 {
		t.Errorf("unexpected final state %+v", state)
	}
	if g.Snapshot().Tick != 25 {
		t.Errorf("game tick = %d, expected 25", g.Snapshot().Tick)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newGame()
	r := NewRunner(g, 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := r.Run(ctx, 0)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected deadline exceeded", err)
	}
}

func TestSendAppliesCommandsOnOwner(t *testing.T) {
	g := newGame()
	var jumped atomic.Bool
	r := NewRunner(g, 1000, WithObserver(func(core.StepResult) {
		// Observers run on the owner and may read the game
		if g.Player().Jumping {
			jumped.Store(true)
		}
	}))

	if !r.Send(core.ActionJump) {
		t.Fatal("Send() should accept a command on an empty queue")
	}
	if _, err := r.Run(context.Background(), 5); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !jumped.Load() {
		t.Error("queued jump was not applied")
	}
}

func TestQuitCommand(t *testing.T) {
	r := NewRunner(newGame(), 1000)
	r.Send(core.ActionQuit)

	if _, err := r.Run(context.Background(), 0); !errors.Is(err, ErrQuit) {
		t.Errorf("Run() error = %v, expected ErrQuit", err)
	}
}

func TestSendNeverBlocks(t *testing.T) {
	r := NewRunner(newGame(), 60)
	accepted := 0
	for range commandBuffer + 5 {
		if r.Send(core.ActionJump) {
			accepted++
		}
	}
	if accepted != commandBuffer {
		t.Errorf("accepted %d commands, expected %d", accepted, commandBuffer)
	}
}

func TestLogEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.InfoLevel)

	LogEvents(logger, []core.Event{
		{Kind: core.EventLanded, Tick: 3},
		{Kind: core.EventLifeLost, Tick: 4, State: core.GameState{Level: 1, Lives: 2}},
	})

	out := buf.String()
	if strings.Contains(out, "landed") {
		t.Errorf("debug events should be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "life_lost") || !strings.Contains(out, "lives=2") {
		t.Errorf("missing life_lost entry: %q", out)
	}
}
