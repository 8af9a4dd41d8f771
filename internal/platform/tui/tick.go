// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and config reloads.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/config"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ConfigChangedMsg reports that the watched config file was written.
type ConfigChangedMsg struct {
	Path string
}

// configErrorMsg carries a watcher failure.
type configErrorMsg struct {
	err error
}

// watchConfigCmd waits for the next watcher event or error.
func watchConfigCmd(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case path := <-w.Events:
			return ConfigChangedMsg{Path: path}
		case err := <-w.Errors:
			return configErrorMsg{err: err}
		}
	}
}
