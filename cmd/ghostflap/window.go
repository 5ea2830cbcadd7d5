package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-flap/internal/platform/desktop"
)

var (
	flagScale         float64
	flagGameOverImage string
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a native window. The playfield keeps its size; the window
scales it and may be resized freely.

Controls:
  Space/W/Up/Click  - Flap (also starts and restarts)
  P                 - Pause
  R                 - Restart after game over
  Esc/Q             - Quit

Examples:
  ghostflap window
  ghostflap window --scale 1.5 --mode gentle
  ghostflap window --game-over-image ./assets/tombstone.png`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window size relative to the playfield")
	windowCmd.Flags().StringVar(&flagGameOverImage, "game-over-image", "", "PNG or JPEG shown above the game over banner")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, mode, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := desktop.Run(store, desktop.Options{
		Config:        cfg,
		Mode:          mode,
		Seed:          flagSeed,
		TickRate:      flagFPS,
		Scale:         flagScale,
		GameOverImage: flagGameOverImage,
		Logger:        logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running window: %v\n", runErr)
		os.Exit(1)
	}
}
