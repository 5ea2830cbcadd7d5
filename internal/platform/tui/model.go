package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghost-flap/internal/config"
	"github.com/vovakirdan/ghost-flap/internal/core"
	"github.com/vovakirdan/ghost-flap/internal/games/flappy"
	"github.com/vovakirdan/ghost-flap/internal/platform/fx"
	"github.com/vovakirdan/ghost-flap/internal/storage"
)

// GameOptions configures a terminal game.
type GameOptions struct {
	Config   config.FlappyConfig // Must be valid
	Mode     config.Mode
	Seed     int64 // Zero picks a time-based seed
	TickRate int
	Session  string // Run log owner, e.g. "local" or the SSH user
	Glyphs   flappy.Glyphs
	Notice   string // Initial HUD notice
	Width    int
	Height   int
	InMenu   bool // Back returns to the menu instead of quitting
}

// Model is the Bubble Tea model for one game of Ghost Flap.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	store      *storage.Store
	opts       GameOptions
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gen        uint64
	banner     fx.Banner
	best       int
	notice     string
	lastTick   time.Time
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for a game. store may be nil.
func NewModel(store *storage.Store, opts GameOptions) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	opts.TickRate = core.TickRate(opts.TickRate)
	if opts.Session == "" {
		opts.Session = "local"
	}

	m := Model{
		game:       flappy.New(opts.Config, opts.Seed),
		screen:     core.NewScreen(opts.Width, core.Max(opts.Height-1, 0)),
		store:      store,
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gen:        nextGeneration(),
		notice:     opts.Notice,
	}
	m.help.Width = opts.Width

	if store != nil {
		if best, err := store.Best(opts.Session); err == nil {
			m.best = best
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, m.game.State(), &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.At)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, m.game.State(), &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back only leaves a game that is over, paused or not yet started.
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		if m.game.State() != flappy.StateRunning || m.game.Paused() {
			if m.opts.InMenu {
				m.backToMenu = true
				return m, nil
			}
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize changes only the render scale, never the simulation.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.opts.TickRate)
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch {
	case result.GameOver:
		m.recordRun()
		m.banner.Drop()
	case result.State == flappy.StateRunning && m.banner.Animating():
		m.banner.Reset()
	}
	m.banner.Update(float32(dt.Seconds()))

	return m, tickCmd(m.opts.TickRate, m.gen)
}

// recordRun logs the finished run into the session store.
func (m *Model) recordRun() {
	snap := m.game.Snapshot()
	m.best = core.Max(m.best, snap.FinalScore)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Session: m.opts.Session,
		Mode:    modeName(m.opts.Mode),
		Score:   snap.FinalScore,
		Frames:  int64(snap.Frame),
		Cause:   snap.Cause.String(),
	})
	if err != nil {
		m.notice = "score log unavailable"
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.notice = "screenshot failed"
		return
	}
	dir := filepath.Join(home, ".ghostflap", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.notice = "screenshot failed"
		return
	}

	filename := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.notice = "screenshot failed"
		return
	}
	m.notice = "saved " + filename
}

func (m *Model) draw() {
	flappy.Draw(m.screen, m.game.Snapshot(), flappy.DrawOptions{
		Glyphs:       m.opts.Glyphs,
		Best:         m.best,
		Notice:       m.notice,
		BannerOffset: m.banner.Lift(m.screen.Height() / 3),
	})
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Snapshot returns the game's render feed.
func (m Model) Snapshot() flappy.Snapshot {
	return m.game.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

func modeName(mode config.Mode) string {
	if mode == "" {
		return "config"
	}
	return string(mode)
}

// Run starts a standalone game in the terminal.
func Run(store *storage.Store, opts GameOptions) error {
	p := tea.NewProgram(
		NewModel(store, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
