// Package fx holds presentation-only effects shared by the frontends.
// Nothing here feeds back into the simulation.
package fx

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// DropDuration is how long the game-over banner takes to settle, in seconds.
const DropDuration float32 = 0.6

// Banner animates how far a banner is lifted above its resting place.
// The lift is a fraction in [0, 1]; frontends scale it to rows or pixels.
type Banner struct {
	tween *gween.Tween
	lift  float32
}

// Drop starts the banner fully lifted and eases it down to rest.
func (b *Banner) Drop() {
	b.tween = gween.New(1, 0, DropDuration, ease.OutBounce)
	b.lift = 1
}

// Reset puts the banner at rest and stops any animation.
func (b *Banner) Reset() {
	b.tween = nil
	b.lift = 0
}

// Update advances the animation by dt seconds.
func (b *Banner) Update(dt float32) {
	if b.tween == nil {
		return
	}
	val, finished := b.tween.Update(dt)
	b.lift = val
	if finished {
		b.tween = nil
		b.lift = 0
	}
}

// Animating reports whether the banner is still moving.
func (b *Banner) Animating() bool {
	return b.tween != nil
}

// Lift returns the current lift scaled to max units, rounded down.
func (b *Banner) Lift(max int) int {
	if b.lift <= 0 {
		return 0
	}
	return int(b.lift * float32(max))
}
