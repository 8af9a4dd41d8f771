package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var (
	flagEndless bool
	flagLevel   int
	flagWatch   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing skyhop in the terminal.

Controls:
  Space/Up/W/Click - Jump
  N/Enter          - Next level (after collecting the star)
  R                - Restart
  Ctrl+S           - Save a screenshot
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Difficulty options (endless block speed and spawn rate):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skyhop play
  skyhop play --level 3
  skyhop play --endless --difficulty hard
  skyhop play --config ./skyhop.yaml --watch`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start on (1-3)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config when the file changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	if flagEndless && flagLevel > 0 {
		exitOnError(errors.New("--level applies to the campaign only"))
	}
	if flagLevel < 0 || flagLevel > skyhop.LevelCount() {
		exitOnError(fmt.Errorf("--level must be between 1 and %d", skyhop.LevelCount()))
	}
	if flagWatch && flagConfig == "" {
		exitOnError(errors.New("--watch needs --config"))
	}

	_, err := loadGameConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger(true)
	exitOnError(err)
	defer closeLog()

	cfg, err := terminalRuntime()
	exitOnError(err)

	if flagLevel > 0 {
		skyhop.SetStartLevel(flagLevel)
	}

	exitOnError(playTerminal(newGame(flagEndless), cfg, logger))
}

// terminalRuntime sizes the runtime config to the current terminal.
func terminalRuntime() (core.RuntimeConfig, error) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return runtimeConfig(width, height)
}

// playTerminal runs one game in the terminal until the player quits.
func playTerminal(game *skyhop.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	stopMusic := attachMusic(game, logger)
	defer stopMusic()

	opts := tui.Options{
		Logger: logger,
		Preset: config.ParsePreset(flagDifficulty),
	}
	if flagWatch {
		w, err := config.NewWatcher(flagConfig)
		if err != nil {
			return err
		}
		defer w.Close()
		opts.Watcher = w
		logger.Info("watching config", "path", w.Path())
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
