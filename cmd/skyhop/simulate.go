package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/engine"
)

var (
	flagTicks      uint64
	flagSimEndless bool
	flagJumpEvery  uint64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless and print the final state",
	Long: `Run the simulation without a display for a fixed number of ticks.
Events are logged to stderr; use --log-level debug to see every landing
and spawn. With --jump-every the runner sends a jump command on that
tick cadence. Completed levels are advanced automatically.

Examples:
  skyhop simulate --ticks 600
  skyhop simulate --ticks 1200 --endless --seed 7 --jump-every 45 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 600, "Number of ticks to run (0 = until interrupted)")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Simulate endless mode")
	simulateCmd.Flags().Uint64Var(&flagJumpEvery, "jump-every", 0, "Send a jump every N ticks (0 = never)")
}

func runSimulate(cmd *cobra.Command, args []string) {
	gameCfg, err := loadGameConfig()
	exitOnError(err)

	logger, closeLog, err := newLogger(false)
	exitOnError(err)
	defer closeLog()

	cfg, err := runtimeConfig(int(gameCfg.Screen.Width), int(gameCfg.Screen.Height))
	exitOnError(err)

	game := newGame(flagSimEndless)
	game.Reset(cfg)

	// The observer runs on the runner goroutine, so it only queues commands.
	var runner *engine.Runner
	var ticks uint64
	observe := func(res core.StepResult) {
		ticks++
		switch {
		case res.State.Phase == core.PhaseLevelComplete:
			runner.Send(core.ActionAdvance)
		case flagJumpEvery > 0 && ticks%flagJumpEvery == 0:
			runner.Send(core.ActionJump)
		}
	}
	runner = engine.NewRunner(game, cfg.TickRate,
		engine.WithLogger(logger),
		engine.WithObserver(observe),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	state, err := runner.Run(ctx, flagTicks)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, engine.ErrQuit) {
		exitOnError(err)
	}

	fmt.Printf("mode=%s seed=%d level=%d lives=%d score=%d phase=%s\n",
		game.Mode(), cfg.Seed, state.Level, state.Lives, state.Score, state.Phase)
}
