package config

import (
	"fmt"
	"sort"
)

// Mode names a preset of fixed game constants. Modes never change during a
// run; there is no difficulty progression.
type Mode string

const (
	ModeClassic Mode = "classic" // Pair every 1.5 s, tight 140-unit gap
	ModeGentle  Mode = "gentle"  // Pair every ~3.3 s, wide 180-unit gap
)

// ModeInfo describes a mode for menus and the modes command.
type ModeInfo struct {
	Mode        Mode
	Title       string
	Description string
}

var modes = map[Mode]ModeInfo{
	ModeClassic: {
		Mode:        ModeClassic,
		Title:       "Classic",
		Description: "Zombie hands every 1.5s, ghosts every 3.3s",
	},
	ModeGentle: {
		Mode:        ModeGentle,
		Title:       "Gentle",
		Description: "Wider gaps, slower spawns, slower ghosts",
	},
}

// Modes returns all presets sorted by name.
func Modes() []ModeInfo {
	result := make([]ModeInfo, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Mode < result[j].Mode
	})
	return result
}

// ParseMode converts a flag value into a Mode. The empty string keeps the
// constants of the loaded config file.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return "", nil
	}
	m := Mode(s)
	if _, ok := modes[m]; !ok {
		return "", fmt.Errorf("config: unknown mode %q", s)
	}
	return m, nil
}

// ApplyMode overwrites the spawn and physics constants with a preset.
// Playfield, player and scoring settings are left untouched. The result is
// validated again, since a preset's gap may not fit a custom playfield.
func ApplyMode(cfg *FlappyConfig, mode Mode) error {
	switch mode {
	case ModeClassic:
		classic := DefaultFlappyConfig()
		cfg.Physics = classic.Physics
		cfg.Pairs = classic.Pairs
		cfg.Hazards = classic.Hazards
	case ModeGentle:
		cfg.Physics = FlappyPhysics{Gravity: 0.4, JumpImpulse: -7.5}
		cfg.Pairs = FlappyPairs{
			Interval:  200,
			Width:     60,
			Gap:       180,
			MinTop:    60,
			MinBottom: 60,
			Speed:     2.5,
		}
		cfg.Hazards = FlappyHazards{
			Interval: 500,
			Width:    40,
			Height:   40,
			MinSpeed: 4,
			MaxSpeed: 5,
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("mode %s: %w", mode, err)
	}
	return nil
}
