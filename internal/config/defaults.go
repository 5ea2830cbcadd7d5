package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the classic configuration.
// It mirrors defaults/flappy.yaml and backs it up if the embed cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: FlappyPlayfield{
			Width:  480,
			Height: 640,
		},
		Physics: FlappyPhysics{
			Gravity:     0.5,
			JumpImpulse: -8,
		},
		Player: FlappyPlayer{
			X:      80,
			Width:  40,
			Height: 40,
		},
		Pairs: FlappyPairs{
			Interval:  90,
			Width:     60,
			Gap:       140,
			MinTop:    50,
			MinBottom: 50,
			Speed:     3,
		},
		Hazards: FlappyHazards{
			Interval: 200,
			Width:    40,
			Height:   40,
			MinSpeed: 6,
			MaxSpeed: 8,
		},
		Scoring: FlappyScoring{
			Mode:          ScoringPairs,
			TicksPerPoint: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
