package snake

import (
	"fmt"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/render"
)

const hudHeight = 1

// Game adapts the engine to the arcade host: it converts host ticks into
// snake moves, maps actions to headings and draws the board.
type Game struct {
	opts   registry.Options
	engine *Engine
	pilot  *Autopilot

	moveEvery  int // host ticks per snake move
	moveTicker int
	paused     bool
	tooSmall   bool
}

// NewGame creates a snake game; the engine is built on Reset.
func NewGame(opts registry.Options) *Game {
	return &Game{
		opts:      opts,
		pilot:     NewAutopilot(),
		moveEvery: 1,
	}
}

func init() {
	registry.Register("snake", func(opts registry.Options) registry.Game {
		return NewGame(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads configuration and starts a fresh engine seeded from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	engCfg, err := loadEngineConfig(g.opts)
	if err != nil {
		return err
	}
	engCfg.Seed = cfg.Seed

	engine, err := New(engCfg)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}

	g.engine = engine
	g.moveEvery = movesEvery(engCfg.TickIntervalMs, cfg.TickRate)
	g.moveTicker = 0
	g.paused = false
	return nil
}

// loadEngineConfig reads the YAML settings and applies the difficulty preset.
func loadEngineConfig(opts registry.Options) (Config, error) {
	fileCfg, err := config.LoadSnake(opts.ConfigPath)
	if err != nil {
		return Config{}, fmt.Errorf("snake: %w", err)
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return Config{}, fmt.Errorf("snake: %w", err)
	}
	config.ApplySnakePreset(&fileCfg, preset)

	return Config{
		Width:          fileCfg.Grid.Width,
		Height:         fileCfg.Grid.Height,
		TickIntervalMs: fileCfg.Timing.TickIntervalMs,
		ScoreIncrement: fileCfg.Scoring.FoodPoints,
		AllowTailChase: fileCfg.Rules.AllowTailChase,
	}, nil
}

// movesEvery converts a move interval into a whole number of host ticks.
func movesEvery(intervalMs, tickRate int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	n := (intervalMs*tickRate + 500) / 1000
	return max(n, 1)
}

// Step advances the host clock by one tick; the snake moves every moveEvery ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.engine.State() != StateRunning {
		g.engine.Restart()
		g.moveTicker = 0
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.engine.State() == StateRunning {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.engine.State() != StateRunning {
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveEvery {
		g.moveTicker = 0
		g.engine.Tick()
	}

	return core.StepResult{State: g.State()}
}

var actionDirections = []struct {
	action core.Action
	dir    Direction
}{
	{core.ActionUp, DirUp},
	{core.ActionDown, DirDown},
	{core.ActionLeft, DirLeft},
	{core.ActionRight, DirRight},
}

func (g *Game) processInput(in core.InputFrame) {
	for _, ad := range actionDirections {
		if in.Has(ad.action) {
			g.engine.SetDirection(ad.dir)
		}
	}
}

// AutoInput steers toward the food for headless runs.
func (g *Game) AutoInput() core.InputFrame {
	if g.engine == nil || g.engine.State() != StateRunning {
		return core.NewInputFrame()
	}
	dir := g.pilot.Next(g.engine.Snapshot())
	for _, ad := range actionDirections {
		if ad.dir == dir {
			return core.FrameOf(ad.action)
		}
	}
	return core.NewInputFrame()
}

// Render draws the HUD and the board, two columns per cell when there is room.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	snap := g.engine.Snapshot()

	g.tooSmall = dst.Width() < snap.Width+2 || dst.Height() < snap.Height+hudHeight
	g.renderHUD(dst, snap)
	if g.tooSmall {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need %dx%d", snap.Width+2, snap.Height+hudHeight))
		return
	}

	cellW := 2
	if dst.Width() < snap.Width*2+2 {
		cellW = 1
	}
	boardW := snap.Width * cellW
	area := core.NewRect((dst.Width()-boardW)/2, hudHeight, boardW, snap.Height)

	render.DrawScreen(dst, snap.Frame(), area)
	for y := area.Y; y < area.Bottom(); y++ {
		dst.SetColored(area.X-1, y, '│', core.ColorGray)
		dst.SetColored(area.Right(), y, '│', core.ColorGray)
	}

	switch {
	case snap.State == StateWon:
		dst.DrawMessageBox("Board cleared!", fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score))
	case snap.State == StateOver:
		dst.DrawMessageBox("Game Over", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case g.paused:
		dst.DrawMessageBox("Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorYellow)
	length := fmt.Sprintf("Length: %d", len(snap.Snake))
	dst.DrawText(dst.Width()-len(length)-1, 0, length)
}

// Frame returns the board plus score text for pixel displays.
func (g *Game) Frame() core.Frame {
	if g.engine == nil {
		return core.Frame{}
	}
	snap := g.engine.Snapshot()
	f := snap.Frame()

	f.Entities = append(f.Entities, core.Entity{
		Shape:  core.ShapeText,
		Bounds: core.NewRectF(0.3, 0.2, float64(snap.Width)/2, 1),
		Color:  core.ColorWhite,
		Label:  fmt.Sprintf("SCORE %d", snap.Score),
	})
	if snap.State != StateRunning {
		msg := "GAME OVER"
		if snap.State == StateWon {
			msg = "YOU WIN"
		}
		f.Entities = append(f.Entities, core.Entity{
			Shape:  core.ShapeText,
			Bounds: core.NewRectF(float64(snap.Width)/2-2, float64(snap.Height)/2, 4, 1),
			Color:  core.ColorRed,
			Label:  msg,
		})
	}
	return f
}

// State returns the host-facing summary. A full board counts as game over.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.State() != StateRunning,
		Paused:   g.paused,
	}
}

// Engine exposes the underlying simulation for hosts and tests.
func (g *Game) Engine() *Engine {
	return g.engine
}
