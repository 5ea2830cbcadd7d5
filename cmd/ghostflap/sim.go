package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/loop"
)

var (
	flagFlapEvery int
	flagMaxFrames uint64
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation headless",
	Long: `Run one game without a frontend. An autopilot starts the game and
flaps every --flap-every ticks. The run ends at game over or after
--max-frames ticks, and the result is printed.

Without --realtime the simulation runs as fast as possible; the same
--seed and flags always give the same result.

Examples:
  ghostflap sim --seed 42
  ghostflap sim --seed 42 --flap-every 18 --mode gentle
  ghostflap sim --realtime --log-level info`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Autopilot flap interval in ticks (0 = never flap)")
	simCmd.Flags().Uint64Var(&flagMaxFrames, "max-frames", 60*60*10, "Stop after this many ticks")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, mode, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var (
		runner *loop.Runner
		ticks  uint64
	)
	runner = loop.NewRunner(flappy.New(cfg, seed), loop.Options{
		TickRate:       flagFPS,
		StopOnGameOver: true,
		Logger:         logger,
		OnTick: func(res flappy.StepResult) {
			if !res.Ticked {
				return
			}
			ticks++
			if res.Passed > 0 {
				logger.Debug("pair passed", "frame", ticks, "score", res.Score)
			}
			if ticks >= flagMaxFrames {
				runner.Stop()
				return
			}
			if flagFlapEvery > 0 && ticks%uint64(flagFlapEvery) == 0 {
				runner.Submit(core.ActionJump)
			}
		},
	})
	runner.Submit(core.ActionStart)

	if flagRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
			os.Exit(1)
		}
	} else {
		for !runner.Stopped() {
			if _, err := runner.Advance(runner.Interval()); err != nil && !errors.Is(err, loop.ErrStopped) {
				fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
				os.Exit(1)
			}
		}
	}

	snap := runner.Snapshot()
	modeName := string(mode)
	if modeName == "" {
		modeName = "config"
	}
	fmt.Printf("mode:   %s\n", modeName)
	fmt.Printf("seed:   %d\n", seed)
	fmt.Printf("frames: %d\n", snap.Frame)
	if snap.State == flappy.StateGameOver {
		fmt.Printf("score:  %d\n", snap.FinalScore)
		fmt.Printf("cause:  %s\n", snap.Cause)
	} else {
		fmt.Printf("score:  %d\n", snap.Score)
		fmt.Println("cause:  still flying")
	}
}
