package flappy

import (
	"fmt"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Snapshot is a read-only copy of the engine state for one tick.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	Actor     Actor
	Obstacles []Obstacle // oldest first
	Score     int
	State     State
}

// Snapshot copies the current state. Mutating the result never affects the engine.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		Tick:      e.ticks,
		Width:     e.cfg.ScreenWidth,
		Height:    e.cfg.ScreenHeight,
		Actor:     e.actor,
		Obstacles: obstacles,
		Score:     e.score,
		State:     e.state,
	}
}

// NextObstacle returns the first obstacle the actor has not yet cleared.
func (s Snapshot) NextObstacle() (Obstacle, bool) {
	for _, o := range s.Obstacles {
		if o.Right() >= s.Actor.X {
			return o, true
		}
	}
	return Obstacle{}, false
}

// Frame describes the scene in world units: walls, then the actor, then
// the score label.
func (s Snapshot) Frame() core.Frame {
	entities := make([]core.Entity, 0, 2*len(s.Obstacles)+3)

	for _, o := range s.Obstacles {
		entities = append(entities,
			core.Entity{Shape: core.ShapeRect, Bounds: o.TopRect(), Color: core.ColorGreen, Glyph: '█'},
			core.Entity{Shape: core.ShapeRect, Bounds: o.BottomRect(s.Height), Color: core.ColorGreen, Glyph: '█'},
		)
	}

	entities = append(entities, core.Entity{
		Shape:  core.ShapeCircle,
		Bounds: s.Actor.Bounds(),
		Color:  core.ColorYellow,
		Glyph:  '●',
	})

	entities = append(entities, core.Entity{
		Shape:  core.ShapeText,
		Bounds: core.NewRectF(10, 10, 120, 16),
		Color:  core.ColorWhite,
		Label:  fmt.Sprintf("Score: %d", s.Score),
	})

	switch s.State {
	case StateIdle:
		entities = append(entities, centredLabel(s, "TAP TO START", core.ColorWhite))
	case StateOver:
		entities = append(entities, centredLabel(s, "GAME OVER", core.ColorRed))
	}

	return core.Frame{
		WorldW:     float64(s.Width),
		WorldH:     float64(s.Height),
		Background: core.ColorSky,
		Entities:   entities,
	}
}

func centredLabel(s Snapshot, text string, c core.Color) core.Entity {
	w := float64(len(text) * 8)
	return core.Entity{
		Shape:  core.ShapeText,
		Bounds: core.NewRectF((float64(s.Width)-w)/2, float64(s.Height)/2-8, w, 16),
		Color:  c,
		Label:  text,
	}
}
