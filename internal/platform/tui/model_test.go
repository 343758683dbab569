package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

const stubID = "tui-stub"

func init() {
	registry.Register(stubID, func(registry.Options) registry.Game {
		return &stubGame{}
	})
}

// stubGame records what the host does to it.
type stubGame struct {
	resets   int
	resetErr error
	steps    []core.InputFrame
	state    core.GameState
}

func (g *stubGame) ID() string    { return stubID }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) error {
	g.resets++
	return g.resetErr
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState { return g.state }

// framerGame also describes itself in pixels.
type framerGame struct {
	stubGame
}

func (g *framerGame) Frame() core.Frame {
	return core.Frame{
		WorldW:     10,
		WorldH:     10,
		Background: core.ColorBlack,
		Entities: []core.Entity{
			{Shape: core.ShapeRect, Bounds: core.NewRectF(0, 0, 5, 5), Color: core.ColorRed},
		},
	}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 50, Seed: 1}
}

func newTestModel(t *testing.T, g registry.Game, opts Options) Model {
	t.Helper()
	m, err := NewModel(g, testConfig(), opts)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &stubGame{}
	newTestModel(t, g, Options{})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestNewModelReportsResetError(t *testing.T) {
	g := &stubGame{resetErr: errors.New("bad config")}
	if _, err := NewModel(g, testConfig(), Options{}); err == nil {
		t.Fatal("expected error from NewModel")
	}
}

func TestKeysReachNextStep(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m, _ = send(t, m, runeKey('w'))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := send(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = send(t, m, TickMsg{})

	if len(g.steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionUp) || !g.steps[0].Has(core.ActionJump) {
		t.Errorf("first step actions = %v, want Up and Jump", g.steps[0].Actions)
	}
	if !g.steps[1].Empty() {
		t.Errorf("second step should have no actions, got %v", g.steps[1].Actions)
	}
	_ = m
}

func TestResizeDoesNotReset(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Errorf("resets = %d after resize, want 1", g.resets)
	}

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
	if !strings.HasPrefix(lines[0], "STUB") {
		t.Errorf("first line = %q, want the game output", lines[0])
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, &stubGame{}, Options{})
	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m := newTestModel(t, g, Options{Embedded: true})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back while running should be ignored")
	}

	g.state.Paused = true
	m, _ = send(t, m, TickMsg{})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("back while paused should leave the game")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}

	m, cmd = send(t, m, TickMsg{})
	if cmd != nil {
		t.Error("no more ticks after leaving")
	}
}

func TestStandaloneBackQuits(t *testing.T) {
	g := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(t, g, Options{})
	_, cmd := send(t, m, runeKey('b'))
	if cmd == nil {
		t.Error("back in a standalone game should quit")
	}
}

func TestScoreSavedOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := newTestModel(t, g, Options{Store: store, Player: "tester", Difficulty: "hard"})

	g.state = core.GameState{Score: 40, GameOver: true}
	for range 3 {
		m, _ = send(t, m, TickMsg{})
	}

	// restart and lose again
	g.state = core.GameState{}
	m, _ = send(t, m, TickMsg{})
	g.state = core.GameState{Score: 70, GameOver: true}
	m, _ = send(t, m, TickMsg{})

	scores, err := store.TopScores(stubID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Score != 70 || scores[1].Score != 40 {
		t.Errorf("scores = %+v", scores)
	}
	if scores[0].Player != "tester" || scores[0].Difficulty != "hard" {
		t.Errorf("metadata = %s/%s", scores[0].Player, scores[0].Difficulty)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{state: core.GameState{GameOver: true}}
	m := newTestModel(t, g, Options{Store: store})
	send(t, m, TickMsg{})

	if high, _ := store.HighScore(stubID); high != 0 {
		t.Errorf("zero score should not be stored, high = %d", high)
	}
}

func TestScreenshot(t *testing.T) {
	tests := []struct {
		name string
		game registry.Game
		ext  string
	}{
		{"text", &stubGame{}, ".txt"},
		{"pixels", &framerGame{}, ".png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			m := newTestModel(t, tt.game, Options{ScreenshotDir: dir})
			m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatalf("ReadDir() failed: %v", err)
			}
			if len(entries) != 1 {
				t.Fatalf("got %d files, want 1", len(entries))
			}
			if filepath.Ext(entries[0].Name()) != tt.ext {
				t.Errorf("file = %s, want %s", entries[0].Name(), tt.ext)
			}
			if !strings.HasPrefix(m.status, "saved ") {
				t.Errorf("status = %q", m.status)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "AB", core.ColorRed)
	s.DrawText(2, 0, "CD")
	s.SetColored(0, 1, '█', core.ColorSky)

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "CD") || !strings.Contains(out, "█") {
		t.Errorf("RenderScreen lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen produced %d newlines, want 1", strings.Count(out, "\n"))
	}
}
