package flappy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

func newTestGame(t *testing.T, yaml string, difficulty string) *Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	g := NewGame(registry.Options{ConfigPath: path, Difficulty: difficulty})
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 12345}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Jump every 15 ticks to try to stay airborne
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%15 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := newTestGame(t, "", "")
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Engine().Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Actor != s2.Actor {
		t.Errorf("runs diverged: %+v vs %+v", s1, s2)
	}
}

func TestStepStartsOnJump(t *testing.T) {
	g := newTestGame(t, "", "")

	g.Step(core.NewInputFrame())
	if g.Engine().State() != StateIdle {
		t.Fatal("game should wait for the first jump")
	}

	g.Step(core.FrameOf(core.ActionJump))
	if g.Engine().State() != StateRunning {
		t.Fatalf("state = %v after jump", g.Engine().State())
	}
	if g.Engine().Snapshot().Tick != 1 {
		t.Error("the starting jump's tick should also advance the simulation")
	}
}

func TestJumpAfterGameOverDoesNotRestart(t *testing.T) {
	g := newTestGame(t, "", "")
	g.Step(core.FrameOf(core.ActionJump))
	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("falling without input should end the game")
	}

	g.Step(core.FrameOf(core.ActionJump))
	if !g.State().GameOver {
		t.Error("a jump while over must not restart")
	}

	g.Step(core.FrameOf(core.ActionRestart))
	if g.State().GameOver || g.Engine().State() != StateIdle {
		t.Errorf("restart should return to idle, got %v", g.Engine().State())
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, "", "")
	g.Step(core.FrameOf(core.ActionJump))

	g.Step(core.FrameOf(core.ActionPause))
	tick := g.Engine().Snapshot().Tick
	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.Engine().Snapshot().Tick != tick {
		t.Error("engine advanced while paused")
	}
	if !g.State().Paused {
		t.Error("state should report paused")
	}
}

func TestDifficultyPresetApplied(t *testing.T) {
	normal := newTestGame(t, "", "normal")
	hard := newTestGame(t, "", "hard")

	if hard.Engine().Config().GapSize >= normal.Engine().Config().GapSize {
		t.Error("hard should shrink the gap")
	}
	if hard.Engine().Config().ObstacleSpeed <= normal.Engine().Config().ObstacleSpeed {
		t.Error("hard should speed obstacles up")
	}
}

func TestResetRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  jump_velocity: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := NewGame(registry.Options{ConfigPath: path})
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("a downward jump velocity should fail Reset")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "", "")
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Press Space to start") {
		t.Error("idle screen should prompt for a jump")
	}

	g.Step(core.FrameOf(core.ActionJump))
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.Contains(out, "●") {
		t.Error("actor not drawn")
	}
	if strings.Contains(out, "Press Space") {
		t.Error("start prompt should disappear once running")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, "", "")
	g.Step(core.FrameOf(core.ActionJump))

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected a too-small message")
	}

	tick := g.Engine().Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Engine().Snapshot().Tick != tick {
		t.Error("simulation should wait while the window is too small")
	}
}

func TestAutoInputPlays(t *testing.T) {
	g := newTestGame(t, "", "")

	for range 1000 {
		g.Step(g.AutoInput())
	}
	if g.State().GameOver {
		t.Fatalf("autopilot crashed with score %d", g.State().Score)
	}
	if g.State().Score < 5 {
		t.Errorf("score = %d after 1000 ticks", g.State().Score)
	}
}

func TestShapesOnlyKeepsFrameIntact(t *testing.T) {
	g := newTestGame(t, "", "")
	full := g.Frame()
	shapes := shapesOnly(full)

	if len(shapes.Entities) >= len(full.Entities) {
		t.Fatal("text entities should be dropped")
	}
	for _, e := range shapes.Entities {
		if e.Shape == core.ShapeText {
			t.Error("text entity survived")
		}
	}
	if full.Entities[len(full.Entities)-1].Shape != core.ShapeText {
		t.Error("filtering must not modify the source frame")
	}
}
