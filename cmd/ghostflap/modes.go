package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghost-flap/internal/config"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List the mode presets",
	Long:  `Shows the presets accepted by --mode. Without --mode the config file's constants are used as is.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := config.Modes()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxLen := 4 // "Mode" header
	for _, m := range modes {
		if len(m.Mode) > maxLen {
			maxLen = len(m.Mode)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxLen, "Mode", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "----", "-----------")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxLen, m.Mode, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'ghostflap play --mode <name>' to play a mode.")
}
