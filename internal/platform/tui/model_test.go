package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

func newTestModel(t *testing.T) (Model, *skyhop.Game) {
	t.Helper()
	g := skyhop.New()
	g.Configure(config.DefaultGameConfig())
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}, Options{})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

func TestJumpKeyAppliesImmediately(t *testing.T) {
	m, g := newTestModel(t)

	update(t, m, runeKey(' '))

	if !g.Player().Jumping {
		t.Error("jump should apply before the next tick")
	}
}

func TestMouseClickJumps(t *testing.T) {
	m, g := newTestModel(t)

	update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if !g.Player().Jumping {
		t.Error("left click should jump")
	}
}

func TestTickStepsGame(t *testing.T) {
	m, g := newTestModel(t)

	m, cmd := update(t, m, TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("game tick = %d, expected 1", g.Snapshot().Tick)
	}
	if m.State().Lives != 3 {
		t.Errorf("model state lives = %d, expected 3", m.State().Lives)
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewIncludesHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Skyhop") {
		t.Error("view missing HUD")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view missing help bar")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t)
	update(t, m, runeKey(' '))

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 120x39", m.screen.Width(), m.screen.Height())
	}
	if !g.Player().Jumping {
		t.Error("resize must not reset the game")
	}
}

func TestConfigReloadStaged(t *testing.T) {
	m, g := newTestModel(t)

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("rules:\n  lives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, ConfigChangedMsg{Path: path})
	if g.State().Lives != 3 {
		t.Errorf("reload applied mid-level: lives = %d", g.State().Lives)
	}

	update(t, m, runeKey('r'))
	if g.State().Lives != 6 {
		t.Errorf("lives after restart = %d, expected 6", g.State().Lives)
	}
}

func TestConfigReloadRejectsInvalid(t *testing.T) {
	m, g := newTestModel(t)

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte("rules:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, ConfigChangedMsg{Path: path})
	update(t, m, runeKey('r'))

	if g.State().Lives != 3 {
		t.Errorf("invalid config should be ignored, lives = %d", g.State().Lives)
	}
}
