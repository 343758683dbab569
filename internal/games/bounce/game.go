package bounce

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/render"
)

// Game runs the scene as an arcade entry. There is no score and no end.
type Game struct {
	scene  *Scene
	paused bool
}

// NewGame creates the animation; it ignores options.
func NewGame(registry.Options) *Game {
	return &Game{scene: NewScene()}
}

func init() {
	registry.Register("bounce", func(opts registry.Options) registry.Game {
		return NewGame(opts)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bouncing Shapes"
}

// Reset restarts the animation from its initial layout.
func (g *Game) Reset(core.RuntimeConfig) error {
	g.scene = NewScene()
	g.paused = false
	return nil
}

// Step advances one frame unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.paused {
		g.scene.Tick()
	}
	return core.StepResult{State: g.State()}
}

// Render scales the scene onto the whole terminal.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	render.DrawScreen(dst, g.scene.Frame(), core.NewRect(0, 0, dst.Width(), dst.Height()))
	if g.paused {
		dst.DrawMessageBox("Paused", "Press P to continue")
	}
}

// Frame returns the scene for pixel displays.
func (g *Game) Frame() core.Frame {
	return g.scene.Frame()
}

// State reports pause only; the animation never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}
