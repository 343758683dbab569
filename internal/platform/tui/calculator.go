package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lcd-arcade/internal/games/calculator"
)

const calcDisplayWidth = 22

var (
	calcDisplayStyle = boxStyle.Width(calcDisplayWidth).Align(lipgloss.Right)
	calcStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	calcKeyStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Center).Foreground(lipgloss.Color("15"))
	calcActiveStyle = calcKeyStyle.Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("117"))
)

// CalculatorKeyMap holds the bindings that are not typed straight into the
// calculator. Everything else is passed to calculator.Press.
type CalculatorKeyMap struct {
	Move  key.Binding
	Press key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// DefaultCalculatorKeyMap returns the calculator bindings.
func DefaultCalculatorKeyMap() CalculatorKeyMap {
	return CalculatorKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("arrows", "move"),
		),
		Press: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "press key"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k CalculatorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Press, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CalculatorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// CalculatorModel is the on-screen keypad. Keys can be typed directly or
// pressed by moving the highlight, as on the touch panel.
type CalculatorModel struct {
	calc      *calculator.Calculator
	keys      CalculatorKeyMap
	help      help.Model
	row, col  int
	embedded  bool
	quitting  bool
	goingBack bool
}

// NewCalculatorModel returns a cleared calculator. When embedded, esc hands
// control back to the caller instead of quitting the program.
func NewCalculatorModel(embedded bool) CalculatorModel {
	return CalculatorModel{
		calc:     calculator.New(),
		keys:     DefaultCalculatorKeyMap(),
		help:     help.New(),
		embedded: embedded,
	}
}

// Init initializes the calculator model.
func (m CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the calculator.
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m CalculatorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.goingBack = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Move):
		m.move(msg.String())
		return m, nil

	case key.Matches(msg, m.keys.Press):
		m.press(calculator.Keypad[m.row][m.col])
		return m, nil
	}

	m.press(msg.String())
	return m, nil
}

// press forwards a key label. Labels that are not on the keypad are ignored.
func (m *CalculatorModel) press(label string) {
	_ = m.calc.Press(label)
}

func (m *CalculatorModel) move(dir string) {
	rows := len(calculator.Keypad)
	cols := len(calculator.Keypad[0])
	switch dir {
	case "up":
		m.row = (m.row + rows - 1) % rows
	case "down":
		m.row = (m.row + 1) % rows
	case "left":
		m.col = (m.col + cols - 1) % cols
	case "right":
		m.col = (m.col + 1) % cols
	}
}

// Display returns the calculator's main display.
func (m CalculatorModel) Display() string {
	return m.calc.Display()
}

// View renders the display above the keypad.
func (m CalculatorModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(calcStatusStyle.Render(lipgloss.PlaceHorizontal(calcDisplayWidth+4, lipgloss.Right, m.calc.Status())))
	b.WriteString("\n")
	b.WriteString(calcDisplayStyle.Render(m.calc.Display()))
	b.WriteString("\n\n")

	for r, row := range calculator.Keypad {
		cells := make([]string, len(row))
		for c, label := range row {
			if r == m.row && c == m.col {
				cells[c] = calcActiveStyle.Render(label)
			} else {
				cells[c] = calcKeyStyle.Render(label)
			}
		}
		b.WriteString(" " + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CalculatorModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CalculatorModel) IsQuitting() bool {
	return m.quitting
}

// RunCalculator runs the calculator as its own program. The return value
// reports whether the user asked to go back rather than quit.
func RunCalculator() (goBack bool, err error) {
	p := tea.NewProgram(NewCalculatorModel(false), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(CalculatorModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
