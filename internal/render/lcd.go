package render

import (
	"image/color"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// LCD draws frames onto a pixel display through the tinygo driver interface.
// It works the same against a real panel driver and against a Framebuffer.
type LCD struct {
	display drivers.Displayer
	font    tinyfont.Fonter
	w, h    int16
}

// NewLCD wraps display. Labels use the Picopixel font unless SetFont is called.
func NewLCD(display drivers.Displayer) *LCD {
	w, h := display.Size()
	return &LCD{
		display: display,
		font:    &tinyfont.Picopixel,
		w:       w,
		h:       h,
	}
}

// SetFont replaces the label font.
func (l *LCD) SetFont(font tinyfont.Fonter) {
	l.font = font
}

// Size returns the display size in pixels.
func (l *LCD) Size() (w, h int16) {
	return l.w, l.h
}

// Draw clears to the frame background, paints every entity in order and
// flushes the display.
func (l *LCD) Draw(f core.Frame) error {
	l.FillRect(core.NewRect(0, 0, int(l.w), int(l.h)), RGBA(f.Background))

	if f.WorldW > 0 && f.WorldH > 0 {
		sx := float64(l.w) / f.WorldW
		sy := float64(l.h) / f.WorldH

		for _, e := range f.Entities {
			r := e.Bounds.Scale(sx, sy)
			c := RGBA(e.Color)

			switch e.Shape {
			case core.ShapeCircle:
				l.FillCircle(r, c)
			case core.ShapeText:
				// tinyfont positions text by its baseline
				tinyfont.WriteLine(l.display, l.font, int16(r.X), int16(r.Bottom()-1), e.Label, c)
			default:
				l.FillRect(r, c)
			}
		}
	}

	return l.display.Display()
}

// FillRect paints r, clipped to the display.
func (l *LCD) FillRect(r core.Rect, c color.RGBA) {
	r = clip(r, core.NewRect(0, 0, int(l.w), int(l.h)))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			l.display.SetPixel(int16(x), int16(y), c)
		}
	}
}

// FillCircle paints the largest circle centred in r.
func (l *LCD) FillCircle(r core.Rect, c color.RGBA) {
	// Work in doubled coordinates so even sizes centre between pixels.
	cx := 2*r.X + r.W
	cy := 2*r.Y + r.H
	d := min(r.W, r.H)
	rr := d * d

	bounds := clip(r, core.NewRect(0, 0, int(l.w), int(l.h)))
	for y := bounds.Y; y < bounds.Bottom(); y++ {
		dy := 2*y + 1 - cy
		for x := bounds.X; x < bounds.Right(); x++ {
			dx := 2*x + 1 - cx
			if dx*dx+dy*dy <= rr {
				l.display.SetPixel(int16(x), int16(y), c)
			}
		}
	}
}
