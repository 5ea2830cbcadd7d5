package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ghost-flap/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuCurStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	menuNoticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	items          []config.ModeInfo
	cursor         int
	width          int
	height         int
	best           int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *config.ModeInfo // Set when user picks a mode
	openScoreboard bool             // True if user pressed Tab for scoreboard
	notice         string
}

// NewMenuModel creates a new menu model. best is shown under the title.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		items:     config.Modes(),
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  G H O S T   F L A P  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Session best: %d", m.best), m.width))
	b.WriteString("\n\n")
	if m.notice != "" {
		b.WriteString(centerText(menuNoticeStyle.Render(m.notice), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + menuItemStyle.Render(item.Title)
		if i == m.cursor {
			line = "> " + menuCurStyle.Render(item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuDescStyle.Render(item.Description), m.width))
		b.WriteString("\n\n")
	}

	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the picked mode, or nil if none picked.
func (m MenuModel) Selected() *config.ModeInfo {
	return m.selected
}

// Reject clears the current pick and shows why it cannot be played.
func (m *MenuModel) Reject(notice string) {
	m.selected = nil
	m.notice = notice
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
