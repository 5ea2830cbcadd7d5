package flappy

import "github.com/vovakirdan/ghost-flap/internal/core"

// Hazard is a solo ghost flying left at its own speed.
type Hazard struct {
	ID    uint64
	X, Y  float64
	W, H  float64
	Speed float64
}

// Rect returns the hazard's collision rectangle.
func (h Hazard) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// Offscreen reports whether the hazard has fully left the playfield.
func (h Hazard) Offscreen() bool {
	return h.X+h.W < 0
}

// advanceHazards is the hazard counterpart of advancePairs: move, collide,
// then prune, in reverse index order, stopping at the first collision.
func advanceHazards(hazards []Hazard, player core.Rect) (_ []Hazard, hit bool) {
	for i := len(hazards) - 1; i >= 0; i-- {
		hazards[i].X -= hazards[i].Speed

		if core.Collides(hazards[i].Rect(), player) {
			return hazards, true
		}

		if hazards[i].Offscreen() {
			hazards = append(hazards[:i], hazards[i+1:]...)
		}
	}
	return hazards, false
}
