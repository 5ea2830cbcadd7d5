// Package tui runs Ghost Flap in a terminal through Bubble Tea, locally or
// over SSH. It maps keys to game input, drives one simulation step per tick
// message and renders snapshots into a colored character grid.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the game
// model that scheduled it; a model ignores ticks of other generations.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var generations atomic.Uint64

func nextGeneration() uint64 {
	return generations.Add(1)
}

// tickCmd schedules the next tick message at the given rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
