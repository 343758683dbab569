package snake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

// newTestGame builds a game from an explicit config file so the user's
// ~/.arcade directory cannot leak into the test.
func newTestGame(t *testing.T, yaml string) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	g := NewGame(registry.Options{ConfigPath: path})
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("snake") {
		t.Fatal("snake should register itself")
	}
	g, err := registry.Create("snake", registry.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(registry.Framer); !ok {
		t.Error("snake should provide frames for pixel displays")
	}
	if _, ok := g.(registry.Autopiloted); !ok {
		t.Error("snake should provide an autopilot")
	}
}

func TestMovesEvery(t *testing.T) {
	tests := []struct {
		interval, rate, want int
	}{
		{200, 50, 10},
		{200, 60, 12},
		{150, 30, 5}, // 4.5 rounds up
		{10, 30, 1},
		{200, 0, 10}, // default rate
	}
	for _, tc := range tests {
		if got := movesEvery(tc.interval, tc.rate); got != tc.want {
			t.Errorf("movesEvery(%d, %d) = %d, expected %d", tc.interval, tc.rate, got, tc.want)
		}
	}
}

func TestStepMovesOnCadence(t *testing.T) {
	g := newTestGame(t, "timing:\n  tick_interval_ms: 100\n")
	start := g.Engine().Snapshot().Head()

	for range 4 {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Snapshot().Head() != start {
		t.Fatal("snake moved before its interval elapsed")
	}

	g.Step(core.NewInputFrame())
	if head := g.Engine().Snapshot().Head(); head != start.Step(DirRight) {
		t.Errorf("head = %+v, expected one cell right of %+v", head, start)
	}
}

func TestStepAppliesDirection(t *testing.T) {
	g := newTestGame(t, "timing:\n  tick_interval_ms: 20\n")
	start := g.Engine().Snapshot().Head()

	g.Step(core.FrameOf(core.ActionUp))
	if head := g.Engine().Snapshot().Head(); head != start.Step(DirUp) {
		t.Errorf("head = %+v, expected %+v", head, start.Step(DirUp))
	}
}

func TestPauseFreezesSnake(t *testing.T) {
	g := newTestGame(t, "timing:\n  tick_interval_ms: 20\n")

	res := g.Step(core.FrameOf(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	head := g.Engine().Snapshot().Head()
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Snapshot().Head() != head {
		t.Error("snake moved while paused")
	}

	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, "grid:\n  width: 6\n  height: 4\ntiming:\n  tick_interval_ms: 20\n")

	for i := 0; i < 20 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("running right on a 6-wide grid should hit the wall")
	}

	score := g.State().Score
	g.Step(core.FrameOf(core.ActionUp))
	if g.State().Score != score || !g.State().GameOver {
		t.Error("input after game over must not change anything")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	if g.State().GameOver || g.State().Score != 0 {
		t.Errorf("restart should start a new round, got %+v", g.State())
	}
}

func TestResetRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := NewGame(registry.Options{ConfigPath: path})
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("zero width should fail Reset")
	}

	g = NewGame(registry.Options{ConfigPath: path, Difficulty: "nightmare"})
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("unknown difficulty should fail Reset")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}
	if strings.Count(out, "█") != 2 {
		t.Errorf("head should span two columns, got %d", strings.Count(out, "█"))
	}
	if strings.Count(out, "▓") != 4 {
		t.Errorf("body should be 2 segments x 2 columns, got %d", strings.Count(out, "▓"))
	}
	if !strings.Contains(out, "●") {
		t.Error("food not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, "timing:\n  tick_interval_ms: 20\n")
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}
	head := g.Engine().Snapshot().Head()
	g.Step(core.NewInputFrame())
	if g.Engine().Snapshot().Head() != head {
		t.Error("simulation should wait while the window is too small")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, "grid:\n  width: 4\n  height: 3\ntiming:\n  tick_interval_ms: 20\n")
	for i := 0; i < 10 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(60, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("expected game over overlay")
	}
}

func TestAutoInputSurvives(t *testing.T) {
	g := newTestGame(t, "timing:\n  tick_interval_ms: 20\n")

	for range 200 {
		g.Step(g.AutoInput())
	}
	if g.State().Score == 0 {
		t.Error("autopilot should eat at least once in 200 moves")
	}
}

func TestFrameHasScore(t *testing.T) {
	g := newTestGame(t, "")
	f := g.Frame()

	last := f.Entities[len(f.Entities)-1]
	if last.Shape != core.ShapeText || last.Label != "SCORE 0" {
		t.Errorf("last entity = %+v, expected score text", last)
	}
}
