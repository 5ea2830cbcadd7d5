// Package config provides YAML-based game configuration loading, mode presets
// and validation.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Scoring modes.
const (
	ScoringPairs = "pairs" // +1 per obstacle pair passed
	ScoringTicks = "ticks" // +1 every TicksPerPoint ticks survived
)

// FlappyConfig contains all constants of one game. All distances are in
// playfield units and all rates are per tick.
type FlappyConfig struct {
	Playfield FlappyPlayfield `yaml:"playfield"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Pairs     FlappyPairs     `yaml:"pairs"`
	Hazards   FlappyHazards   `yaml:"hazards"`
	Scoring   FlappyScoring   `yaml:"scoring"`
}

// FlappyPlayfield is the fixed size of the simulated area.
type FlappyPlayfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines the vertical motion of the player.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity set by a jump (negative = up)
}

// FlappyPlayer defines the player hitbox and spawn point.
type FlappyPlayer struct {
	X      float64  `yaml:"x"`
	StartY *float64 `yaml:"start_y,omitempty"` // nil centers the player vertically
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
}

// FlappyPairs defines obstacle pair spawning and motion.
type FlappyPairs struct {
	Interval  int     `yaml:"interval"` // Ticks between spawns
	Width     int     `yaml:"width"`
	Gap       int     `yaml:"gap"`
	MinTop    int     `yaml:"min_top"`
	MinBottom int     `yaml:"min_bottom"`
	Speed     float64 `yaml:"speed"`
}

// FlappyHazards defines solo hazard spawning and motion.
type FlappyHazards struct {
	Interval int     `yaml:"interval"` // Ticks between spawns
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"` // Equal to MinSpeed for a fixed speed
}

// FlappyScoring selects the scoring rule.
type FlappyScoring struct {
	Mode          string `yaml:"mode"`            // "pairs" or "ticks"
	TicksPerPoint int    `yaml:"ticks_per_point"` // Only used by "ticks"
}

// MaxTop returns the largest top barrier height that still leaves room for
// the gap and the minimum bottom barrier.
func (c FlappyConfig) MaxTop() int {
	return c.Playfield.Height - c.Pairs.Gap - c.Pairs.MinBottom
}

// PlayerStartY returns the configured spawn height of the player, or the
// vertical center when start_y is not set. An explicit 0 is the ceiling.
func (c FlappyConfig) PlayerStartY() float64 {
	if c.Player.StartY == nil {
		return float64(c.Playfield.Height) / 2
	}
	return *c.Player.StartY
}

// Validate checks that the constants describe a playable game.
func (c FlappyConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	check(c.Physics.Gravity >= 0, "gravity must not be negative, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= float64(c.Playfield.Width),
		"player x=%v does not fit the playfield", c.Player.X)
	startY := c.PlayerStartY()
	check(startY >= 0 && startY+c.Player.Height <= float64(c.Playfield.Height),
		"player start_y=%v does not fit the playfield", startY)

	check(c.Pairs.Interval > 0, "pairs.interval must be positive, got %d", c.Pairs.Interval)
	check(c.Pairs.Width > 0, "pairs.width must be positive, got %d", c.Pairs.Width)
	check(c.Pairs.Gap > 0, "pairs.gap must be positive, got %d", c.Pairs.Gap)
	check(c.Pairs.MinTop >= 0 && c.Pairs.MinBottom >= 0,
		"pairs.min_top and pairs.min_bottom must not be negative")
	check(c.Pairs.MinTop <= c.MaxTop(),
		"min_top(%d) + gap(%d) + min_bottom(%d) exceeds playfield height %d",
		c.Pairs.MinTop, c.Pairs.Gap, c.Pairs.MinBottom, c.Playfield.Height)
	check(c.Pairs.Speed > 0, "pairs.speed must be positive, got %v", c.Pairs.Speed)

	check(c.Hazards.Interval > 0, "hazards.interval must be positive, got %d", c.Hazards.Interval)
	check(c.Hazards.Width > 0 && c.Hazards.Height > 0,
		"hazard size must be positive, got %vx%v", c.Hazards.Width, c.Hazards.Height)
	check(c.Hazards.Height <= float64(c.Playfield.Height),
		"hazard height %v exceeds playfield height %d", c.Hazards.Height, c.Playfield.Height)
	check(c.Hazards.MinSpeed > 0 && c.Hazards.MinSpeed <= c.Hazards.MaxSpeed,
		"hazard speed range [%v, %v] is invalid", c.Hazards.MinSpeed, c.Hazards.MaxSpeed)

	switch c.Scoring.Mode {
	case ScoringPairs:
	case ScoringTicks:
		check(c.Scoring.TicksPerPoint > 0,
			"scoring.ticks_per_point must be positive, got %d", c.Scoring.TicksPerPoint)
	default:
		check(false, "unknown scoring.mode %q", c.Scoring.Mode)
	}

	return errors.Join(errs...)
}
