package flappy

import (
	"math/rand"

	"github.com/vovakirdan/ghost-flap/internal/config"
)

// Spawner creates obstacle pairs and hazards at the right edge of the
// playfield. Spawns are due on tick-counted thresholds; there are no timers.
type Spawner struct {
	rng    *rand.Rand
	cfg    *config.FlappyConfig
	nextID uint64
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, cfg *config.FlappyConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset re-seeds the RNG and restarts entity IDs.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.nextID = 0
}

// PairDue reports whether a pair spawns on the given (1-based) frame.
func (s *Spawner) PairDue(frame uint64) bool {
	return frame%uint64(s.cfg.Pairs.Interval) == 0
}

// HazardDue reports whether a hazard spawns on the given (1-based) frame.
func (s *Spawner) HazardDue(frame uint64) bool {
	return frame%uint64(s.cfg.Hazards.Interval) == 0
}

// SpawnPair creates a pair with an integral top height drawn uniformly from
// [min_top, height - gap - min_bottom]. Integral heights keep
// top + gap + bottom equal to the playfield height without rounding error.
func (s *Spawner) SpawnPair() Pair {
	p := s.cfg.Pairs
	minTop, maxTop := p.MinTop, s.cfg.MaxTop()

	top := minTop
	if maxTop > minTop {
		top = minTop + s.rng.Intn(maxTop-minTop+1)
	}

	return Pair{
		ID:     s.id(),
		X:      float64(s.cfg.Playfield.Width),
		GapY:   float64(top),
		Gap:    float64(p.Gap),
		W:      float64(p.Width),
		FieldH: float64(s.cfg.Playfield.Height),
	}
}

// SpawnHazard creates a hazard at a uniform height in [0, height - hazard_height]
// with a uniform speed in [min_speed, max_speed].
func (s *Spawner) SpawnHazard() Hazard {
	h := s.cfg.Hazards
	maxY := float64(s.cfg.Playfield.Height) - h.Height

	return Hazard{
		ID:    s.id(),
		X:     float64(s.cfg.Playfield.Width),
		Y:     s.rng.Float64() * maxY,
		W:     h.Width,
		H:     h.Height,
		Speed: h.MinSpeed + s.rng.Float64()*(h.MaxSpeed-h.MinSpeed),
	}
}

func (s *Spawner) id() uint64 {
	s.nextID++
	return s.nextID
}
