// Package loop drives a game at a fixed tick rate without a frontend.
// It is used by the headless sim command and by tests.
package loop

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
)

// ErrStopped is returned by Advance once the runner has been stopped.
var ErrStopped = errors.New("loop: runner stopped")

// DefaultMaxCatchUp is the tick cap per Advance call when none is configured.
const DefaultMaxCatchUp = 5

// Options configures a Runner.
type Options struct {
	TickRate       int // Ticks per second, defaults to 60 and capped at core.MaxTickRate
	MaxCatchUp     int // Ticks per Advance call at most; extra elapsed time is dropped
	StopOnGameOver bool
	Logger         *log.Logger
	OnTick         func(flappy.StepResult) // Called after every simulated tick
}

// Runner owns a game and steps it from accumulated wall time.
// Submit may be called from any goroutine; Advance and Run must not be
// called concurrently with each other.
type Runner struct {
	game     *flappy.Game
	opts     Options
	interval time.Duration
	acc      time.Duration

	mu      sync.Mutex // Guards pending
	pending core.InputFrame

	gameMu sync.Mutex // Guards game between Step and Snapshot

	stopOnce sync.Once
	done     chan struct{}
}

// NewRunner creates a runner for the game.
func NewRunner(game *flappy.Game, opts Options) *Runner {
	opts.TickRate = core.TickRate(opts.TickRate)
	if opts.MaxCatchUp <= 0 {
		opts.MaxCatchUp = DefaultMaxCatchUp
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Runner{
		game:     game,
		opts:     opts,
		interval: time.Second / time.Duration(opts.TickRate),
		pending:  core.NewInputFrame(),
		done:     make(chan struct{}),
	}
}

// Interval returns the duration of one tick.
func (r *Runner) Interval() time.Duration {
	return r.interval
}

// Submit queues an action for the next tick. Actions submitted while a tick
// is running are applied at the start of the following one.
func (r *Runner) Submit(a core.Action) {
	r.mu.Lock()
	r.pending.Set(a)
	r.mu.Unlock()
}

// takeInput swaps out the pending frame.
func (r *Runner) takeInput() core.InputFrame {
	r.mu.Lock()
	defer r.mu.Unlock()

	in := r.pending
	r.pending = core.NewInputFrame()
	return in
}

// Advance adds dt to the accumulator and runs as many whole ticks as it
// covers, at most MaxCatchUp. It returns the number of ticks run.
func (r *Runner) Advance(dt time.Duration) (int, error) {
	if r.Stopped() {
		return 0, ErrStopped
	}

	r.acc += dt
	n := int(r.acc / r.interval)
	if n > r.opts.MaxCatchUp {
		r.opts.Logger.Debug("dropping ticks", "behind", n-r.opts.MaxCatchUp)
		n = r.opts.MaxCatchUp
		r.acc = 0
	} else {
		r.acc -= time.Duration(n) * r.interval
	}

	for i := 0; i < n; i++ {
		if r.Stopped() {
			return i, nil
		}
		res := r.tick()
		if res.GameOver {
			snap := r.Snapshot()
			r.opts.Logger.Info("game over",
				"score", snap.FinalScore,
				"cause", snap.Cause.String(),
				"frames", snap.Frame,
			)
			if r.opts.StopOnGameOver {
				r.Stop()
				return i + 1, nil
			}
		}
	}

	return n, nil
}

func (r *Runner) tick() flappy.StepResult {
	in := r.takeInput()

	r.gameMu.Lock()
	res := r.game.Step(in)
	r.gameMu.Unlock()

	if r.opts.OnTick != nil {
		r.opts.OnTick(res)
	}
	return res
}

// Run advances the game from a ticker until ctx is cancelled or the runner
// is stopped. It returns nil when stopped and ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			r.Stop()
			return ctx.Err()
		case <-r.done:
			return nil
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if _, err := r.Advance(dt); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}

// Stop halts the runner. It is safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

// Stopped reports whether Stop has been called.
func (r *Runner) Stopped() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the runner stops.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Snapshot returns the game's current render feed.
func (r *Runner) Snapshot() flappy.Snapshot {
	r.gameMu.Lock()
	defer r.gameMu.Unlock()
	return r.game.Snapshot()
}
