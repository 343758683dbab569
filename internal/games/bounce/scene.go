// Package bounce is the board's animation demo: three shapes sliding back
// and forth between fixed limits on a 480x320 panel.
package bounce

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// World size in panel pixels
const (
	WorldW = 480
	WorldH = 320
)

// axis moves one coordinate by speed per tick and turns around once it
// reaches either limit.
type axis struct {
	pos, min, max float64
	speed         float64
	dir           float64
}

func (a *axis) step() {
	if a.speed == 0 {
		return
	}
	a.pos += a.speed * a.dir
	if a.pos >= a.max || a.pos <= a.min {
		a.dir = -a.dir
	}
}

func fixed(pos float64) axis {
	return axis{pos: pos, min: pos, max: pos}
}

func moving(start, lo, hi, speed float64) axis {
	return axis{pos: start, min: lo, max: hi, speed: speed, dir: 1}
}

// Sprite is one animated shape.
type Sprite struct {
	Name  string
	Shape core.Shape
	Size  float64
	Color core.Color
	Glyph rune
	x, y  axis
}

// Bounds returns the sprite's current box.
func (s Sprite) Bounds() core.RectF {
	return core.NewRectF(s.x.pos, s.y.pos, s.Size, s.Size)
}

// Scene holds the sprites and a tick counter.
type Scene struct {
	sprites []Sprite
	ticks   uint64
}

// NewScene returns the demo layout: an orange circle sliding horizontally,
// a teal square sliding vertically and a yellow block moving diagonally.
func NewScene() *Scene {
	return &Scene{
		sprites: []Sprite{
			{
				Name: "circle", Shape: core.ShapeCircle, Size: 80, Color: core.ColorOrange, Glyph: '●',
				x: moving(20, 20, 400, 4), y: fixed(100),
			},
			{
				Name: "square", Shape: core.ShapeRect, Size: 60, Color: core.ColorSky, Glyph: '■',
				x: fixed(200), y: moving(40, 40, 250, 3),
			},
			{
				Name: "block", Shape: core.ShapeRect, Size: 70, Color: core.ColorYellow, Glyph: '▒',
				x: moving(10, 10, 400, 2), y: moving(50, 50, 240, 2),
			},
		},
	}
}

// Tick moves every sprite one step.
func (s *Scene) Tick() {
	s.ticks++
	for i := range s.sprites {
		s.sprites[i].x.step()
		s.sprites[i].y.step()
	}
}

// Ticks returns the number of steps taken.
func (s *Scene) Ticks() uint64 {
	return s.ticks
}

// Sprites returns a copy of the sprites in draw order.
func (s *Scene) Sprites() []Sprite {
	out := make([]Sprite, len(s.sprites))
	copy(out, s.sprites)
	return out
}

// Frame draws the sprites in order under a title line.
func (s *Scene) Frame() core.Frame {
	entities := make([]core.Entity, 0, len(s.sprites)+1)
	for _, sp := range s.sprites {
		entities = append(entities, core.Entity{
			Shape:  sp.Shape,
			Bounds: sp.Bounds(),
			Color:  sp.Color,
			Glyph:  sp.Glyph,
		})
	}
	entities = append(entities, core.Entity{
		Shape:  core.ShapeText,
		Bounds: core.NewRectF(WorldW/2-64, 10, 128, 16),
		Color:  core.ColorWhite,
		Label:  "Animation Demo",
	})

	return core.Frame{
		WorldW:     WorldW,
		WorldH:     WorldH,
		Background: core.ColorBlack,
		Entities:   entities,
	}
}
