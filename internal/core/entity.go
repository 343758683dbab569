package core

// Shape tells a render adapter which primitive to draw for an entity.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeText
)

// Entity is one draw descriptor in world coordinates. Engines emit ordered
// slices of these; adapters paint them back to front.
type Entity struct {
	Shape  Shape
	Bounds RectF
	Color  Color
	Glyph  rune   // Terminal glyph for Rect/Circle entities
	Label  string // Text for ShapeText
}

// Frame is everything a render adapter needs for one tick.
type Frame struct {
	WorldW, WorldH float64
	Background     Color
	Entities       []Entity
}
