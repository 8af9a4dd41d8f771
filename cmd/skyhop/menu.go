package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
	"github.com/vovakirdan/skyhop/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode or starting level from a menu",
	Long: `Start skyhop in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  skyhop menu
  skyhop menu --fps 30`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	_, err := loadGameConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger(true)
	exitOnError(err)
	defer closeLog()

	cfg, err := terminalRuntime()
	exitOnError(err)

	for {
		selection, updatedCfg, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = updatedCfg

		// User quit
		if selection == nil {
			return
		}

		if selection.Level > 0 {
			skyhop.SetStartLevel(selection.Level)
		}

		// Fresh seed for each game
		cfg, err = runtimeConfig(cfg.ScreenW, cfg.ScreenH)
		exitOnError(err)

		created, err := registry.Create(selection.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		game, ok := created.(*skyhop.Game)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: %q is not a skyhop mode\n", selection.GameID)
			continue
		}
		if err := playTerminal(game, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}
