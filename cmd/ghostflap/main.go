// ghostflap is an endless flappy-style game: a cat flaps between zombie
// hands while ghosts drift across the night sky.
//
// Usage:
//
//	ghostflap play     - Play in the terminal
//	ghostflap menu     - Pick a mode, play, and browse session scores
//	ghostflap window   - Play in a desktop window
//	ghostflap sim      - Run the simulation headless with an autopilot
//	ghostflap serve    - Start an SSH server for remote play
//	ghostflap modes    - List the mode presets
//	ghostflap config   - Print the effective config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game constants from a YAML file
//	--mode <name>         - Apply a mode preset on top of the config
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/core"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagMode     string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ghostflap",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostflap",
	Short: "Ghost Flap - flap a cat through a haunted night",
	Long: `Ghost Flap is an endless flappy-style game. Flap to stay airborne,
slip through the gaps between zombie hands and dodge drifting ghosts.
One point per pair of hands passed.

Available commands:
  play     - Play directly in the terminal
  menu     - Mode picker with a session scoreboard
  window   - Play in a desktop window
  sim      - Headless simulation for testing configs
  serve    - Start SSH server for remote play
  modes    - Show the mode presets
  config   - Print the effective config

Examples:
  ghostflap play
  ghostflap play --mode gentle
  ghostflap menu
  ghostflap window --scale 1.5
  ghostflap sim --seed 42 --flap-every 18
  ghostflap serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		if flagFPS < 1 || flagFPS > core.MaxTickRate {
			return fmt.Errorf("invalid --fps %d: must be between 1 and %d", flagFPS, core.MaxTickRate)
		}
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Mode preset: classic, gentle (default: config values)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config file and applies --mode on top.
func loadGameConfig() (config.FlappyConfig, config.Mode, error) {
	mode, err := config.ParseMode(flagMode)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	if err := config.ApplyMode(&cfg, mode); err != nil {
		return config.FlappyConfig{}, "", err
	}

	return cfg, mode, nil
}

// loadBaseConfig loads the config file without a mode. Menus apply the
// mode a player picks.
func loadBaseConfig() (config.FlappyConfig, error) {
	return config.LoadFlappy(flagConfig)
}

// runtimeConfig collects the global flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}
