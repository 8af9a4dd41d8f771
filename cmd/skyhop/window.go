package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/platform/window"
)

var (
	flagWindowEndless bool
	flagWindowLevel   int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play skyhop with pixel graphics.

Controls:
  Space/Up/W/Click - Jump
  N/Enter          - Next level (after collecting the star)
  R                - Restart
  Esc/Q            - Quit

Examples:
  skyhop window
  skyhop window --endless --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagWindowEndless, "endless", false, "Play endless mode")
	windowCmd.Flags().IntVar(&flagWindowLevel, "level", 0, "Campaign level to start on (1-3)")
}

func runWindow(cmd *cobra.Command, args []string) {
	if flagWindowEndless && flagWindowLevel > 0 {
		exitOnError(errors.New("--level applies to the campaign only"))
	}

	gameCfg, err := loadGameConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger(false)
	exitOnError(err)
	defer closeLog()

	cfg, err := runtimeConfig(int(gameCfg.Screen.Width), int(gameCfg.Screen.Height))
	exitOnError(err)

	if flagWindowLevel > 0 {
		skyhop.SetStartLevel(flagWindowLevel)
	}

	game := newGame(flagWindowEndless)
	stopMusic := attachMusic(game, logger)
	defer stopMusic()

	exitOnError(window.Run(game, cfg, logger))
}
