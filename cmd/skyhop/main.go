// skyhop is a single-screen platform jumper: hop across scrolling platforms
// and grab the star to finish the level.
//
// Usage:
//
//	skyhop play              - Play in the terminal
//	skyhop window            - Play in a desktop window
//	skyhop menu              - Pick a mode or level interactively
//	skyhop simulate          - Run the simulation headless and print the result
//	skyhop list              - List game modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible spawns
//	--config <path>       - Custom config file (YAML or TOML)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
//	--mute                - Disable background music
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/audio/device"
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
	flagVolume     float64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - hop across platforms to reach the star",
	Long: `Skyhop is a single-screen arcade jumper. Your character jumps in a
fixed arc; land on the scrolling platforms and touch the star to clear
the level. Three campaign levels, or an endless mode with new platforms
spawning on a timer.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  menu      - Interactive mode and level picker
  simulate  - Run headless for a number of ticks
  list      - Show available game modes

Examples:
  skyhop play
  skyhop play --endless --difficulty hard
  skyhop window --level 2
  skyhop simulate --ticks 600 --seed 42`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable background music")
	rootCmd.PersistentFlags().Float64Var(&flagVolume, "volume", 0.5, "Music volume from 0 to 1")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simulateCmd)
}

// exitOnError prints the error and exits.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newLogger builds the application logger. When the terminal is owned by a
// TUI, logs go to --log-file or nowhere. The returned func closes the file.
func newLogger(terminalBusy bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case terminalBusy:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "skyhop",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig checks the config once at startup and hands the path and
// preset to the game package. A broken --config aborts.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagDifficulty))

	skyhop.SetConfigPath(flagConfig)
	skyhop.SetDifficultyPreset(flagDifficulty)
	return cfg, nil
}

// runtimeConfig builds and validates the runtime settings for a surface.
func runtimeConfig(width, height int) (core.RuntimeConfig, error) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
	return rc, rc.Validate()
}

// attachMusic connects background music unless --mute is set.
// The returned func stops playback.
func attachMusic(game *skyhop.Game, logger *log.Logger) func() {
	if flagMute {
		return func() {}
	}
	music := audio.NewMusic(device.NewSpeaker(audio.SampleRate), flagVolume, logger)
	game.SetMusic(music)
	return music.Stop
}

// newGame creates a skyhop game for the chosen mode.
func newGame(endless bool) *skyhop.Game {
	if endless {
		return skyhop.NewEndless()
	}
	return skyhop.New()
}
