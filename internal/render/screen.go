// Package render paints engine frames onto output targets: the terminal
// cell buffer and any tinygo display driver.
package render

import (
	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// DrawScreen paints f into area of dst, scaling world units to cells.
// Entities are painted in order, so later ones cover earlier ones.
// Anything outside area is clipped.
func DrawScreen(dst *core.Screen, f core.Frame, area core.Rect) {
	if f.WorldW <= 0 || f.WorldH <= 0 || area.W <= 0 || area.H <= 0 {
		return
	}
	sx := float64(area.W) / f.WorldW
	sy := float64(area.H) / f.WorldH

	dst.DrawRectColored(area, ' ', f.Background)

	for _, e := range f.Entities {
		r := e.Bounds.Scale(sx, sy)
		r.X += area.X
		r.Y += area.Y

		switch e.Shape {
		case core.ShapeText:
			drawClippedText(dst, r.X, r.Y, e.Label, e.Color, area)
		default:
			glyph := e.Glyph
			if glyph == 0 {
				glyph = '█'
			}
			dst.DrawRectColored(clip(r, area), glyph, e.Color)
		}
	}
}

// clip returns the part of r inside bounds; an empty rect when they miss.
func clip(r, bounds core.Rect) core.Rect {
	x0 := max(r.X, bounds.X)
	y0 := max(r.Y, bounds.Y)
	x1 := min(r.Right(), bounds.Right())
	y1 := min(r.Bottom(), bounds.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

func drawClippedText(dst *core.Screen, x, y int, text string, c core.Color, bounds core.Rect) {
	if y < bounds.Y || y >= bounds.Bottom() {
		return
	}
	i := 0
	for _, r := range text {
		if cx := x + i; cx >= bounds.X && cx < bounds.Right() {
			dst.SetColored(cx, y, r, c)
		}
		i++
	}
}
