package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/platform/tui"
	"github.com/vovakirdan/ghost-flap/internal/storage"
)

var flagSprites string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game directly in the terminal.

Controls:
  Space/W/Up/Click  - Flap (also starts and restarts)
  P                 - Pause
  R                 - Restart after game over
  Ctrl+S            - Save a screenshot to ~/.ghostflap/screenshots
  Q/Ctrl+C          - Quit

Examples:
  ghostflap play
  ghostflap play --mode gentle
  ghostflap play --seed 42
  ghostflap play --config ./my-flappy.yaml --sprites ./sprites.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and keep a session scoreboard",
	Long: `Start an interactive session: choose a mode, play, return to the
menu with Esc while paused or after a game over, and press Tab in the menu
to see this session's runs. Scores are kept in memory only.`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a YAML glyph set")
	}
}

// loadGlyphs resolves --sprites. A broken file is reported and replaced by
// the built-in glyphs.
func loadGlyphs() (flappy.Glyphs, string) {
	glyphs, notice, err := tui.GlyphsOrDefault(flagSprites)
	if err != nil {
		logger.Warn("using built-in glyphs", "error", err)
	}
	return glyphs, notice
}

// openStore opens the in-memory run log. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.OpenSession()
	if err != nil {
		logger.Warn("could not open session store", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, mode, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rt := runtimeConfig()
	glyphs, notice := loadGlyphs()

	store := openStore()
	runErr := tui.Run(store, tui.GameOptions{
		Config:   cfg,
		Mode:     mode,
		Seed:     rt.Seed,
		TickRate: rt.TickRate,
		Glyphs:   glyphs,
		Notice:   notice,
		Width:    rt.ScreenW,
		Height:   rt.ScreenH,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func runMenu(_ *cobra.Command, _ []string) {
	if flagMode != "" {
		logger.Warn("--mode is ignored by the menu, pick a mode there")
	}
	cfg, err := loadBaseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rt := runtimeConfig()
	glyphs, notice := loadGlyphs()

	store := openStore()
	runErr := tui.RunSession(store, tui.SessionOptions{
		Base:     cfg,
		Seed:     rt.Seed,
		TickRate: rt.TickRate,
		Glyphs:   glyphs,
		Notice:   notice,
		Width:    rt.ScreenW,
		Height:   rt.ScreenH,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running menu: %v\n", runErr)
		os.Exit(1)
	}
}
