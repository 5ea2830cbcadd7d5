package flappy

import "github.com/vovakirdan/ghost-flap/internal/core"

// Player is the falling character. X never changes during a run.
type Player struct {
	X, Y  float64 // Top-left corner of the hitbox
	VY    float64 // Vertical velocity, positive = down
	W, H  float64
	Alive bool
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Jump replaces the vertical velocity with the impulse.
func (p *Player) Jump(impulse float64) {
	p.VY = impulse
}

// Integrate advances the player by one tick of gravity.
// A player pushed above the ceiling is clamped to y=0 with zero velocity.
// It reports whether the player has fallen through the floor.
func (p *Player) Integrate(gravity, floor float64) (outOfBounds bool) {
	p.VY += gravity
	p.Y += p.VY

	if p.Y < 0 {
		p.Y = 0
		p.VY = 0
	}

	return p.Y+p.H > floor
}
