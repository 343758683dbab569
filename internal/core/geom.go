// Package core provides fundamental types shared by the engines, the render
// adapters and the hosts. It has no external dependencies so game logic stays
// pure and testable.
package core

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// RectF is a box in world units. Engines describe entities with it and the
// render adapters scale it onto their target.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// OverlapsX reports whether the horizontal extents overlap.
func (r RectF) OverlapsX(other RectF) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// WithinY reports whether r's vertical extent lies entirely inside [top, bottom].
func (r RectF) WithinY(top, bottom float64) bool {
	return r.Y >= top && r.Bottom() <= bottom
}

// Scale maps the box into a target whose axes are sx and sy times larger,
// rounding outward so that small entities never vanish.
func (r RectF) Scale(sx, sy float64) Rect {
	x0 := floorInt(r.X * sx)
	y0 := floorInt(r.Y * sy)
	x1 := ceilInt(r.Right() * sx)
	y1 := ceilInt(r.Bottom() * sy)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func floorInt(v float64) int {
	i := int(v)
	if float64(i) > v {
		i--
	}
	return i
}

func ceilInt(v float64) int {
	i := int(v)
	if float64(i) < v {
		i++
	}
	return i
}
