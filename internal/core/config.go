package core

// RuntimeConfig contains configuration passed to the game by the platform.
// Screen dimensions describe the output surface only; the simulation uses the
// playfield size from the game config and never changes it at runtime.
type RuntimeConfig struct {
	ScreenW  int   // Output width in cells (terminal) or pixels (window)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0,
	}
}

// Tick rate bounds. Above MaxTickRate a tick interval is too short for any
// frontend to honor.
const (
	DefaultTickRate = 60
	MaxTickRate     = 1000
)

// TickRate returns rate limited to [1, MaxTickRate], with DefaultTickRate
// for unset or negative values.
func TickRate(rate int) int {
	if rate <= 0 {
		return DefaultTickRate
	}
	return min(rate, MaxTickRate)
}
