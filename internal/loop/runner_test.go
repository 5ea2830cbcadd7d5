package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
)

func newGame() *flappy.Game {
	return flappy.New(config.DefaultFlappyConfig(), 42)
}

func TestAdvanceWholeTicks(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 60})
	r.Submit(core.ActionStart)

	tests := []struct {
		name string
		dt   time.Duration
		want int
	}{
		{"three ticks", 3 * r.Interval(), 3},
		{"half a tick", r.Interval() / 2, 0},
		{"other half", r.Interval() / 2, 1},
		{"nothing", 0, 0},
	}

	for _, tt := range tests {
		n, err := r.Advance(tt.dt)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if n != tt.want {
			t.Errorf("%s: ran %d ticks, want %d", tt.name, n, tt.want)
		}
	}

	if f := r.Snapshot().Frame; f != 4 {
		t.Errorf("frame: got %d, want 4", f)
	}
}

func TestAdvanceCapsCatchUp(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 60, MaxCatchUp: 5})
	r.Submit(core.ActionStart)

	n, err := r.Advance(time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 {
		t.Errorf("ran %d ticks, want the cap of 5", n)
	}

	// Dropped time is not carried over.
	n, _ = r.Advance(r.Interval() / 2)
	if n != 0 {
		t.Errorf("ran %d ticks after the cap, want 0", n)
	}
}

func TestSubmitAppliedAtNextTick(t *testing.T) {
	var r *Runner
	var vys []float64
	submitted := false

	r = NewRunner(newGame(), Options{
		TickRate: 60,
		OnTick: func(flappy.StepResult) {
			vys = append(vys, r.game.Snapshot().Player.VY)
			if !submitted {
				submitted = true
				r.Submit(core.ActionJump)
			}
		},
	})
	r.Submit(core.ActionStart)

	if _, err := r.Advance(2 * r.Interval()); err != nil {
		t.Fatal(err)
	}

	if len(vys) != 2 {
		t.Fatalf("expected 2 ticks, got %d", len(vys))
	}
	if vys[0] != 0.5 {
		t.Errorf("jump leaked into the tick it was submitted from: vy=%v", vys[0])
	}
	if vys[1] != -7.5 {
		t.Errorf("jump not applied at the next tick: vy=%v", vys[1])
	}
}

func TestStopOnGameOver(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 60, StopOnGameOver: true})
	r.Submit(core.ActionStart)

	var err error
	for i := 0; i < 1000 && err == nil; i++ {
		_, err = r.Advance(r.Interval())
	}

	if !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	snap := r.Snapshot()
	if snap.State != flappy.StateGameOver {
		t.Errorf("state: got %s", snap.State)
	}
	if snap.Frame != 33 {
		t.Errorf("stopped at frame %d, want 33", snap.Frame)
	}
}

func TestStopIdempotent(t *testing.T) {
	r := NewRunner(newGame(), Options{})

	r.Stop()
	r.Stop()

	if !r.Stopped() {
		t.Error("expected stopped")
	}
	select {
	case <-r.Done():
	default:
		t.Error("done channel not closed")
	}
	if _, err := r.Advance(time.Second); !errors.Is(err, ErrStopped) {
		t.Errorf("Advance after Stop: got %v", err)
	}
}

func TestStopFromOnTickEndsBatch(t *testing.T) {
	var r *Runner
	ticks := 0
	r = NewRunner(newGame(), Options{
		TickRate:   60,
		MaxCatchUp: 5,
		OnTick: func(flappy.StepResult) {
			ticks++
			if ticks == 2 {
				r.Stop()
			}
		},
	})
	r.Submit(core.ActionStart)

	n, err := r.Advance(5 * r.Interval())
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || ticks != 2 {
		t.Errorf("ran %d ticks (%d callbacks), want 2", n, ticks)
	}
}

func TestHugeTickRateIsCapped(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 2_000_000_000})
	if r.Interval() != time.Second/core.MaxTickRate {
		t.Fatalf("Interval() = %v, expected %v", r.Interval(), time.Second/core.MaxTickRate)
	}

	r.Submit(core.ActionStart)
	n, err := r.Advance(3 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("ran %d ticks, want 3", n)
	}
}

func TestRunCancelled(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 120})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if !r.Stopped() {
		t.Error("runner should be stopped after cancellation")
	}
}

func TestRunUntilGameOver(t *testing.T) {
	r := NewRunner(newGame(), Options{TickRate: 1000, MaxCatchUp: 50, StopOnGameOver: true})
	r.Submit(core.ActionStart)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s := r.Snapshot().State; s != flappy.StateGameOver {
		t.Errorf("state: got %s", s)
	}
}
