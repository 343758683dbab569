package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/render"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

// Screenshots of pixel-capable games use the board's panel size.
const (
	shotWidth  = 480
	shotHeight = 320
)

var (
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
)

// Options carries host-side settings that games never see.
type Options struct {
	Store         *storage.Store // nil disables score saving
	Logger        *log.Logger    // nil disables logging
	Player        string         // recorded with saved scores
	Difficulty    string         // recorded with saved scores
	ScreenshotDir string         // empty means ~/.arcade/screenshots
	Embedded      bool           // back returns to the caller instead of quitting
}

// Model is the Bubble Tea model that runs one game.
// It owns the game exclusively; every Step happens on the Bubble Tea goroutine.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
	backToMenu bool
	scoreSaved bool // whether the current game over has been recorded
}

// NewModel resets game with cfg and wraps it in a model.
// A zero seed is replaced by the current time.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	if err := game.Reset(cfg); err != nil {
		return Model{}, fmt.Errorf("tui: start %s: %w", game.ID(), err)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games lay themselves out on every Render, so a resize never resets play.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.status = "screenshot failed: " + err.Error()
			m.logWarn("screenshot failed", "game", m.game.ID(), "error", err)
		} else {
			m.status = "saved " + path
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.opts.Embedded {
				return m, tea.Quit
			}
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.GameOver {
		m.scoreSaved = false
	} else if !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished game. Failures only cost the scoreboard entry.
func (m *Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.opts.Store.SaveScore(storage.Record{
		GameID:     m.game.ID(),
		Player:     m.opts.Player,
		Difficulty: m.opts.Difficulty,
		Score:      m.gameState.Score,
	})
	if err != nil {
		m.logWarn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("score saved", "game", m.game.ID(), "player", m.opts.Player, "score", m.gameState.Score)
	}
}

func (m *Model) logWarn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot writes the current frame as a PNG when the game can describe
// itself in pixels, otherwise the character screen as text.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".arcade", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	stamp := time.Now().Format("20060102_150405")
	base := filepath.Join(dir, fmt.Sprintf("%s_%s", m.game.ID(), stamp))

	framer, ok := m.game.(registry.Framer)
	if !ok {
		m.game.Render(m.screen)
		path := base + ".txt"
		return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
	}

	fb := render.NewFramebuffer(shotWidth, shotHeight)
	if err := render.NewLCD(fb).Draw(framer.Frame()); err != nil {
		return "", err
	}

	path := base + ".png"
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return path, fb.WritePNG(f)
}

// footer is the status line, if any, followed by the key help.
func (m Model) footer() string {
	out := footerStyle.Render(m.help.View(m.keys))
	if m.status != "" {
		out = statusStyle.Render(m.status) + "\n" + out
	}
	return out
}

// View renders the game above the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.footer()
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-lipgloss.Height(footer), 1))
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + footer
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to leave the game.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
