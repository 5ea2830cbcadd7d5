package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		action   core.Action
		wantQuit bool
	}{
		{"space flaps", spaceKey, core.ActionJump, false},
		{"up flaps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump, false},
		{"w flaps", runeKey('w'), core.ActionJump, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = (%s, %v), want (%s, %v)", tt.msg.String(), action, quit, tt.action, tt.wantQuit)
			}
		})
	}
}

func TestFlapKeyByState(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		state flappy.State
		want  []core.Action
		not   []core.Action
	}{
		{flappy.StateNotStarted, []core.Action{core.ActionStart, core.ActionJump}, []core.Action{core.ActionRestart}},
		{flappy.StateRunning, []core.Action{core.ActionJump}, []core.Action{core.ActionStart, core.ActionRestart}},
		{flappy.StateGameOver, []core.Action{core.ActionRestart}, []core.Action{core.ActionJump}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			frame := core.NewInputFrame()
			km.MapKeyToFrame(spaceKey, tt.state, &frame)

			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("expected %s", a)
				}
			}
			for _, a := range tt.not {
				if frame.Has(a) {
					t.Errorf("unexpected %s", a)
				}
			}
		})
	}
}

func TestMouseClickFlaps(t *testing.T) {
	km := NewKeyMapper()

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, flappy.StateRunning, &frame)
	if !frame.Has(core.ActionJump) {
		t.Error("left click should flap")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{Action: tea.MouseActionMotion}, flappy.StateRunning, &frame)
	if !frame.Empty() {
		t.Error("mouse motion should not flap")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, want %d", tt.msg.String(), got, tt.want)
		}
	}
}
