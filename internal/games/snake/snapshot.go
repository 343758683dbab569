package snake

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// Snapshot is a read-only copy of the engine state for one tick.
type Snapshot struct {
	Tick    uint64
	Width   int
	Height  int
	Snake   []Cell // head first
	Heading Direction
	Food    Cell
	HasFood bool
	Score   int
	State   State
}

// Snapshot copies the current state. Mutating the result never affects the engine.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Cell, len(e.snake))
	copy(body, e.snake)

	return Snapshot{
		Tick:    e.ticks,
		Width:   e.cfg.Width,
		Height:  e.cfg.Height,
		Snake:   body,
		Heading: e.heading,
		Food:    e.food,
		HasFood: e.food != noFood,
		Score:   e.score,
		State:   e.state,
	}
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	return s.Snake[0]
}

// Occupies reports whether the snake covers c.
func (s Snapshot) Occupies(c Cell) bool {
	for _, seg := range s.Snake {
		if seg == c {
			return true
		}
	}
	return false
}

// cellInset leaves a thin gutter between segments, like the board's CELL_SIZE-2 squares.
const cellInset = 0.08

// Frame describes the board as draw descriptors in grid units: food first,
// then body tail to head so the head paints last.
func (s Snapshot) Frame() core.Frame {
	entities := make([]core.Entity, 0, len(s.Snake)+1)

	if s.HasFood {
		entities = append(entities, core.Entity{
			Shape:  core.ShapeCircle,
			Bounds: cellBounds(s.Food),
			Color:  core.ColorRed,
			Glyph:  '●',
		})
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		ent := core.Entity{
			Shape:  core.ShapeRect,
			Bounds: cellBounds(s.Snake[i]),
			Color:  core.ColorGreen,
			Glyph:  '▓',
		}
		if i == 0 {
			ent.Color = core.ColorBrightGreen
			ent.Glyph = '█'
		}
		entities = append(entities, ent)
	}

	return core.Frame{
		WorldW:     float64(s.Width),
		WorldH:     float64(s.Height),
		Background: core.ColorDarkGreen,
		Entities:   entities,
	}
}

func cellBounds(c Cell) core.RectF {
	return core.NewRectF(float64(c.X)+cellInset, float64(c.Y)+cellInset, 1-2*cellInset, 1-2*cellInset)
}
