package flappy

import "github.com/vovakirdan/ghost-flap/internal/core"

// PlayerView is the renderable part of the player.
type PlayerView struct {
	Rect  core.Rect
	VY    float64
	Alive bool
}

// PairView is one obstacle pair as seen by a renderer. ID is stable for the
// life of the pair and lets a renderer keep its own per-entity resources.
type PairView struct {
	ID     uint64
	Top    core.Rect
	Bottom core.Rect
	Scored bool
}

// HazardView is one hazard as seen by a renderer.
type HazardView struct {
	ID    uint64
	Rect  core.Rect
	Speed float64
}

// Snapshot is a read-only copy of everything a renderer needs after a tick.
// It shares no memory with the game.
type Snapshot struct {
	State      State
	Paused     bool
	Frame      uint64
	Score      int
	FinalScore int
	Cause      Cause
	Player     PlayerView
	Pairs      []PairView   // In spawn order
	Hazards    []HazardView // In spawn order
	FieldW     float64
	FieldH     float64
}

// Snapshot returns the current render feed.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:      g.state,
		Paused:     g.paused,
		Frame:      g.frame,
		Score:      g.score,
		FinalScore: g.final,
		Cause:      g.cause,
		Player: PlayerView{
			Rect:  g.player.Rect(),
			VY:    g.player.VY,
			Alive: g.player.Alive,
		},
		Pairs:   make([]PairView, len(g.pairs)),
		Hazards: make([]HazardView, len(g.hazards)),
		FieldW:  float64(g.cfg.Playfield.Width),
		FieldH:  float64(g.cfg.Playfield.Height),
	}

	for i, p := range g.pairs {
		snap.Pairs[i] = PairView{
			ID:     p.ID,
			Top:    p.TopRect(),
			Bottom: p.BottomRect(),
			Scored: p.Scored,
		}
	}
	for i, h := range g.hazards {
		snap.Hazards[i] = HazardView{
			ID:    h.ID,
			Rect:  h.Rect(),
			Speed: h.Speed,
		}
	}

	return snap
}
