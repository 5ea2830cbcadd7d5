package flappy

import "github.com/vovakirdan/ghost-flap/internal/core"

// Pair is an obstacle made of a top and a bottom barrier sharing one x and
// separated by a vertical gap. GapY is both the gap start and the height of
// the top barrier.
type Pair struct {
	ID     uint64
	X      float64 // Left edge of both barriers
	GapY   float64
	Gap    float64
	W      float64
	FieldH float64 // Playfield height, bottom edge of the bottom barrier
	Scored bool    // Set once the pair has been counted
}

// TopHeight returns the height of the top barrier.
func (p Pair) TopHeight() float64 {
	return p.GapY
}

// BottomHeight returns the height of the bottom barrier.
func (p Pair) BottomHeight() float64 {
	return p.FieldH - p.GapY - p.Gap
}

// TopRect returns the collision rectangle of the top barrier.
func (p Pair) TopRect() core.Rect {
	return core.NewRect(p.X, 0, p.W, p.TopHeight())
}

// BottomRect returns the collision rectangle of the bottom barrier.
func (p Pair) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapY+p.Gap, p.W, p.BottomHeight())
}

// Collides reports whether r overlaps either barrier.
func (p Pair) Collides(r core.Rect) bool {
	return core.Collides(r, p.TopRect()) || core.Collides(r, p.BottomRect())
}

// PassedX reports whether the trailing edge is strictly left of x.
func (p Pair) PassedX(x float64) bool {
	return p.X+p.W < x
}

// Offscreen reports whether the pair has fully left the playfield.
func (p Pair) Offscreen() bool {
	return p.X+p.W < 0
}

// advancePairs moves every pair left by speed, checks it against the player
// and prunes it once off-screen. Iteration runs in reverse index order so
// in-place removal never skips a neighbor. On the first collision it stops
// and returns hit=true; the colliding pair is left in place.
func advancePairs(pairs []Pair, speed float64, player core.Rect) (_ []Pair, hit bool) {
	for i := len(pairs) - 1; i >= 0; i-- {
		pairs[i].X -= speed

		if pairs[i].Collides(player) {
			return pairs, true
		}

		if pairs[i].Offscreen() {
			pairs = append(pairs[:i], pairs[i+1:]...)
		}
	}
	return pairs, false
}
