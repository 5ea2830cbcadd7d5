package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/storage"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	store, err := storage.OpenSession()
	if err != nil {
		t.Fatalf("OpenSession() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return NewSessionModel(store, SessionOptions{
		Base:     config.DefaultFlappyConfig(),
		Seed:     1,
		TickRate: 60,
		Session:  "tester",
		Glyphs:   flappy.DefaultGlyphs(),
		Width:    100,
		Height:   30,
	})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)
	if m.view != viewMenu {
		t.Fatal("session should open on the menu")
	}

	// Second entry is "gentle"
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Fatalf("expected game view, got %d", m.view)
	}
	if got := m.game.opts.Config.Pairs.Gap; got != 180 {
		t.Errorf("gentle mode not applied: gap=%d", got)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("back should return to the menu, got %d", m.view)
	}
	if m.menu.Selected() != nil {
		t.Error("menu selection should be fresh")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession(t)
	m.store.SaveRun(storage.Run{Session: "tester", Mode: "classic", Score: 12, Frames: 600, Cause: "caught by a ghost"})

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("expected scoreboard, got %d", m.view)
	}
	if view := m.View(); !strings.Contains(view, "12") || !strings.Contains(view, "tester") {
		t.Errorf("scoreboard missing the run:\n%s", view)
	}

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("expected menu after back, got %d", m.view)
	}
	if !strings.Contains(m.View(), "Session best: 12") {
		t.Error("menu should show the session best")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t)

	next, cmd := m.Update(runeKey('q'))

	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if sm := next.(SessionModel); sm.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionRejectsModeThatDoesNotFit(t *testing.T) {
	m := newTestSession(t)
	m.opts.Base.Playfield.Height = 260

	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != viewMenu {
		t.Fatalf("gentle should not start on a 260-unit playfield, got view %d", m.view)
	}
	if m.menu.Selected() != nil {
		t.Error("rejected pick should be cleared")
	}
	if !strings.Contains(m.View(), "Gentle does not fit this playfield") {
		t.Errorf("menu should explain the rejection:\n%s", m.View())
	}

	// Classic still fits and starts.
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame {
		t.Errorf("classic should start, got view %d", m.view)
	}
}
