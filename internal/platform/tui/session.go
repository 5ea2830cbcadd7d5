package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/storage"
)

// SessionOptions configures a menu-driven session.
type SessionOptions struct {
	Base     config.FlappyConfig // Loaded config; modes are applied on top
	Seed     int64
	TickRate int
	Session  string
	Glyphs   flappy.Glyphs
	Notice   string
	Width    int
	Height   int
}

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with the
// scoreboard one key away. Used for local menu sessions and for SSH.
type SessionModel struct {
	store    *storage.Store
	opts     SessionOptions
	view     sessionView
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model. store may be nil.
func NewSessionModel(store *storage.Store, opts SessionOptions) SessionModel {
	if opts.Session == "" {
		opts.Session = "local"
	}
	m := SessionModel{
		store: store,
		opts:  opts,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.store != nil {
		if b, err := m.store.Best(m.opts.Session); err == nil {
			best = b
		}
	}
	return NewMenuModel(m.opts.Width, m.opts.Height, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.opts.Session, m.opts.Width, m.opts.Height)
		m.view = viewScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		picked := *m.menu.Selected()
		mode := picked.Mode
		cfg := m.opts.Base
		if err := config.ApplyMode(&cfg, mode); err != nil {
			m.menu.Reject(picked.Title + " does not fit this playfield")
			return m, nil
		}

		m.game = NewModel(m.store, GameOptions{
			Config:   cfg,
			Mode:     mode,
			Seed:     m.opts.Seed,
			TickRate: m.opts.TickRate,
			Session:  m.opts.Session,
			Glyphs:   m.opts.Glyphs,
			Notice:   m.opts.Notice,
			Width:    m.opts.Width,
			Height:   m.opts.Height,
			InMenu:   true,
		})
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Ticks still in flight for this game are ignored by later ones.
	if m.game.BackToMenu() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.view = viewMenu
	m.menu = m.newMenu()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts a menu-driven session in the local terminal.
func RunSession(store *storage.Store, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(store, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
