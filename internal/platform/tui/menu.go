package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

// CalculatorID is the menu entry for the keypad calculator, which is a tool
// rather than a registered game.
const CalculatorID = "calc"

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// MenuItem is one selectable entry.
type MenuItem struct {
	ID        string
	Title     string
	HighScore int
}

// MenuModel is the Bubble Tea model for the game picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	presets        []config.DifficultyPreset
	preset         int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	status         string
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered games plus the calculator. High scores
// come from store when it is available.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		item := MenuItem{ID: g.ID, Title: g.Title}
		if store != nil {
			if high, err := store.HighScore(g.ID); err == nil {
				item.HighScore = high
			}
		}
		items = append(items, item)
	}
	items = append(items, MenuItem{ID: CalculatorID, Title: "Calculator"})

	presets := config.Presets()
	preset := 0
	for i, p := range presets {
		if p == config.DifficultyNormal {
			preset = i
		}
	}

	return MenuModel{
		items:   items,
		presets: presets,
		preset:  preset,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		config:  cfg,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
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
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
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

	case MenuActionLeft:
		if m.preset > 0 {
			m.preset--
		}

	case MenuActionRight:
		if m.preset < len(m.presets)-1 {
			m.preset++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
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
	b.WriteString(centerText(menuTitleStyle.Render("L C D   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a game", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if item.HighScore > 0 {
			line += fmt.Sprintf("  (best %d)", item.HighScore)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", m.Difficulty()), m.width))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(centerText(menuErrorStyle.Render(m.status), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// SetStatus shows a one-line message, typically why a game failed to start.
func (m *MenuModel) SetStatus(s string) {
	m.status = s
}

// Difficulty returns the chosen preset name.
func (m MenuModel) Difficulty() string {
	if len(m.presets) == 0 {
		return string(config.DifficultyNormal)
	}
	return string(m.presets[m.preset])
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within the given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ItemID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result. status, if set, is
// shown under the list.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, status string) (MenuResult, error) {
	model := NewMenuModel(store, cfg)
	model.SetStatus(status)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.ItemID = m.Selected().ID
	}
	return result, nil
}
