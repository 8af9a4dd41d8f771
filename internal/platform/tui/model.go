package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/engine"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Configurable is implemented by games that accept a staged config reload.
type Configurable interface {
	Configure(cfg config.GameConfig)
}

// Options carries the optional collaborators of the play loop.
type Options struct {
	Logger  *log.Logger
	Watcher *config.Watcher         // Config file to hot-reload, may be nil
	Preset  config.DifficultyPreset // Re-applied to reloaded configs
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the game.
// Update is the single owner of the game: commands and ticks are applied here.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	opts      Options
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
		opts:      opts,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), watchConfigCmd(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.apply(core.ActionJump)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case ConfigChangedMsg:
		m.reloadConfig(msg.Path)
		return m, watchConfigCmd(m.opts.Watcher)

	case configErrorMsg:
		m.opts.Logger.Warn("config watcher failed", "error", msg.err)
		return m, watchConfigCmd(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input. Game commands apply immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Game
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.playfieldHeight())
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	m.apply(action)
	return m, nil
}

// apply hands a command to the game and records the resulting state.
func (m *Model) apply(action core.Action) {
	if action == core.ActionNone {
		return
	}
	if !m.game.Handle(action) {
		m.opts.Logger.Debug("command ignored", "action", action, "phase", m.game.State().Phase)
	}
	m.gameState = m.game.State()
}

// handleResize processes window resize events.
// The world is scaled to the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight())
	return m, nil
}

// playfieldHeight is the terminal height minus the rows the help bar needs.
func (m Model) playfieldHeight() int {
	rows := 1
	if m.help.ShowAll {
		for _, group := range m.keyMapper.Game.FullHelp() {
			rows = max(rows, len(group))
		}
	}
	return max(1, m.config.ScreenH-rows)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State
	engine.LogEvents(m.opts.Logger, result.Events)

	return m, tickCmd(m.config.TickRate)
}

// reloadConfig stages a changed config file for the next level load.
func (m *Model) reloadConfig(path string) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		m.opts.Logger.Warn("config reload rejected", "path", path, "error", err)
		return
	}
	config.ApplyPreset(&cfg, m.opts.Preset)

	g, ok := m.game.(Configurable)
	if !ok {
		return
	}
	g.Configure(cfg)
	m.opts.Logger.Info("config reloaded", "path", path, "applies", "next level")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// State returns the game state as of the last tick or command.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Game))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
