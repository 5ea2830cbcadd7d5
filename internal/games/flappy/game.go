// Package flappy implements the Ghost Flap simulation: a cat falls under
// gravity, flaps on input and must pass through gaps between zombie hands
// while dodging faster ghosts.
//
// The package is pure game logic. Frontends feed it input frames, call Step
// once per tick and read Snapshot for rendering.
package flappy

import (
	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/core"
)

// State is the phase of the game.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CausePair
	CauseHazard
	CauseOutOfBounds
)

// String returns a short description of the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CausePair:
		return "hit a zombie hand"
	case CauseHazard:
		return "caught by a ghost"
	case CauseOutOfBounds:
		return "fell out of the sky"
	default:
		return "unknown"
	}
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State    State
	Score    int
	Ticked   bool // Whether the simulation advanced this call
	Passed   int  // Pairs scored this tick
	GameOver bool // Whether this tick ended the run
}

// Game holds the complete state of one game. It is not safe for concurrent
// use; one goroutine owns it and calls Step.
type Game struct {
	cfg     config.FlappyConfig
	seed    int64
	runs    int64 // Number of runs started, varies the seed per run
	state   State
	paused  bool
	player  Player
	pairs   []Pair
	hazards []Hazard
	spawner *Spawner
	frame   uint64
	score   int
	final   int
	cause   Cause
}

// New creates a game in the NotStarted state. The config must be valid.
func New(cfg config.FlappyConfig, seed int64) *Game {
	g := &Game{
		cfg:     cfg,
		seed:    seed,
		pairs:   make([]Pair, 0, 8),
		hazards: make([]Hazard, 0, 4),
	}
	g.spawner = NewSpawner(seed, &g.cfg)
	g.resetRun()
	return g
}

// Config returns the constants the game runs with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Start begins the first run. It is a no-op unless the game is NotStarted.
func (g *Game) Start() {
	if g.state != StateNotStarted {
		return
	}
	g.resetRun()
	g.state = StateRunning
}

// Restart begins a new run after a game over. It is a no-op otherwise.
func (g *Game) Restart() {
	if g.state != StateGameOver {
		return
	}
	g.runs++
	g.resetRun()
	g.state = StateRunning
}

// Jump sets the player's velocity to the jump impulse, discarding the previous
// velocity. It is a no-op unless the game is Running.
func (g *Game) Jump() {
	if g.state != StateRunning {
		return
	}
	g.player.Jump(g.cfg.Physics.JumpImpulse)
}

// TogglePause pauses or resumes a running game.
func (g *Game) TogglePause() {
	if g.state != StateRunning {
		return
	}
	g.paused = !g.paused
}

// resetRun clears every collection and places the player at the spawn point.
func (g *Game) resetRun() {
	g.player = Player{
		X:     g.cfg.Player.X,
		Y:     g.cfg.PlayerStartY(),
		W:     g.cfg.Player.Width,
		H:     g.cfg.Player.Height,
		Alive: true,
	}
	g.pairs = g.pairs[:0]
	g.hazards = g.hazards[:0]
	g.spawner.Reset(g.seed + g.runs)
	g.frame = 0
	g.score = 0
	g.final = 0
	g.cause = CauseNone
	g.paused = false
}

// reportCollisionOrOOB ends the run. Guarded by the Running state so it fires
// exactly once per run.
func (g *Game) reportCollisionOrOOB(cause Cause) {
	if g.state != StateRunning {
		return
	}
	g.player.Alive = false
	g.state = StateGameOver
	g.final = g.score
	g.cause = cause
}

// applyInput consumes the commands recorded since the previous tick.
func (g *Game) applyInput(in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}
	if in.Has(core.ActionStart) {
		g.Start()
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if in.Has(core.ActionJump) && !g.paused {
		g.Jump()
	}
}

// Step applies the input frame and advances the simulation by one tick:
// physics, spawning, pairs, hazards, score, then the out-of-bounds check.
// Nothing advances outside the Running state or while paused.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.applyInput(in)

	if g.state != StateRunning || g.paused {
		return g.result(false, 0)
	}

	g.frame++

	outOfBounds := g.player.Integrate(g.cfg.Physics.Gravity, float64(g.cfg.Playfield.Height))

	if g.spawner.PairDue(g.frame) {
		g.pairs = append(g.pairs, g.spawner.SpawnPair())
	}
	if g.spawner.HazardDue(g.frame) {
		g.hazards = append(g.hazards, g.spawner.SpawnHazard())
	}

	playerRect := g.player.Rect()

	var hit bool
	if g.pairs, hit = advancePairs(g.pairs, g.cfg.Pairs.Speed, playerRect); hit {
		g.reportCollisionOrOOB(CausePair)
		return g.result(true, 0)
	}
	if g.hazards, hit = advanceHazards(g.hazards, playerRect); hit {
		g.reportCollisionOrOOB(CauseHazard)
		return g.result(true, 0)
	}

	passed := g.updateScore()

	if outOfBounds {
		g.reportCollisionOrOOB(CauseOutOfBounds)
	}

	return g.result(true, passed)
}

// updateScore applies the configured scoring rule and returns the number of
// pairs passed this tick.
func (g *Game) updateScore() int {
	passed := 0
	for i := range g.pairs {
		if !g.pairs[i].Scored && g.pairs[i].PassedX(g.player.X) {
			g.pairs[i].Scored = true
			passed++
		}
	}

	switch g.cfg.Scoring.Mode {
	case config.ScoringTicks:
		g.score = int(g.frame / uint64(g.cfg.Scoring.TicksPerPoint))
	default:
		g.score += passed
	}
	return passed
}

func (g *Game) result(ticked bool, passed int) StepResult {
	return StepResult{
		State:    g.state,
		Score:    g.score,
		Ticked:   ticked,
		Passed:   passed,
		GameOver: ticked && g.state == StateGameOver,
	}
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Paused reports whether a running game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Score returns the live score.
func (g *Game) Score() int {
	return g.score
}

// FinalScore returns the score frozen at the last game over.
func (g *Game) FinalScore() int {
	return g.final
}

// Frame returns the number of ticks simulated in the current run.
func (g *Game) Frame() uint64 {
	return g.frame
}

// FlapActions expands the single flap input of a frontend according to the
// game state: start and jump before the first run, jump while running,
// restart after a game over.
func FlapActions(state State) []core.Action {
	switch state {
	case StateNotStarted:
		return []core.Action{core.ActionStart, core.ActionJump}
	case StateGameOver:
		return []core.Action{core.ActionRestart}
	default:
		return []core.Action{core.ActionJump}
	}
}
