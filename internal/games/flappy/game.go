package flappy

import (
	"fmt"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/render"
)

// Minimum terminal size for a readable scene
const (
	minScreenW = 40
	minScreenH = 12
	hudHeight  = 1
)

// Game adapts the engine to the arcade host. One host tick is one engine tick.
type Game struct {
	opts   registry.Options
	engine *Engine
	pilot  *Autopilot

	paused   bool
	tooSmall bool
}

// NewGame creates a flyer game; the engine is built on Reset.
func NewGame(opts registry.Options) *Game {
	return &Game{
		opts:  opts,
		pilot: NewAutopilot(),
	}
}

func init() {
	registry.Register("flappy", func(opts registry.Options) registry.Game {
		return NewGame(opts)
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads configuration and starts a fresh, idle engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	engCfg, err := loadEngineConfig(g.opts)
	if err != nil {
		return err
	}
	engCfg.Seed = cfg.Seed

	engine, err := New(engCfg)
	if err != nil {
		return fmt.Errorf("flappy: %w", err)
	}
	g.engine = engine
	g.paused = false
	return nil
}

func loadEngineConfig(opts registry.Options) (Config, error) {
	fileCfg, err := config.LoadFlappy(opts.ConfigPath)
	if err != nil {
		return Config{}, fmt.Errorf("flappy: %w", err)
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return Config{}, fmt.Errorf("flappy: %w", err)
	}
	config.ApplyFlappyPreset(&fileCfg, preset)

	return Config{
		ScreenWidth:   fileCfg.World.Width,
		ScreenHeight:  fileCfg.World.Height,
		Gravity:       fileCfg.Physics.Gravity,
		JumpVelocity:  fileCfg.Physics.JumpVelocity,
		ObstacleSpeed: fileCfg.Physics.ObstacleSpeed,
		GapSize:       fileCfg.Obstacles.GapSize,
		SpawnInterval: fileCfg.Obstacles.SpawnInterval,
		MinMargin:     fileCfg.Obstacles.MinMargin,
		ObstacleWidth: fileCfg.Obstacles.Width,
		ActorX:        fileCfg.Player.X,
		ActorSize:     fileCfg.Player.Size,
	}, nil
}

// Step advances the game by one tick.
// Jump while over is ignored; only an explicit restart starts a new round.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.engine.State() == StateOver {
		g.engine.Restart()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.engine.State() == StateRunning {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		g.engine.RequestJump()
	}
	g.engine.Tick()

	return core.StepResult{State: g.State()}
}

// AutoInput jumps whenever the pilot says the actor is about to sink out of the gap.
func (g *Game) AutoInput() core.InputFrame {
	if g.engine == nil {
		return core.NewInputFrame()
	}
	if g.pilot.ShouldJump(g.engine.Snapshot(), g.engine.Config().Gravity) {
		return core.FrameOf(core.ActionJump)
	}
	return core.NewInputFrame()
}

// Render draws the scene scaled to the terminal below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	g.tooSmall = dst.Width() < minScreenW || dst.Height() < minScreenH
	if g.tooSmall {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.engine.Snapshot()
	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	render.DrawScreen(dst, shapesOnly(snap.Frame()), area)

	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorYellow)

	switch {
	case snap.State == StateIdle:
		dst.DrawMessageBox("Flappy Bird", "Press Space to start")
	case snap.State == StateOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// shapesOnly drops text entities; the terminal has its own HUD.
func shapesOnly(f core.Frame) core.Frame {
	kept := f.Entities[:0:0]
	for _, e := range f.Entities {
		if e.Shape != core.ShapeText {
			kept = append(kept, e)
		}
	}
	f.Entities = kept
	return f
}

// Frame returns the full scene, labels included, for pixel displays.
func (g *Game) Frame() core.Frame {
	if g.engine == nil {
		return core.Frame{}
	}
	return g.engine.Snapshot().Frame()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() == StateOver,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation for hosts and tests.
func (g *Game) Engine() *Engine {
	return g.engine
}
