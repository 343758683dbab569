package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Framebuffer)(nil)

// Framebuffer is an in-memory display for headless runs and tests.
type Framebuffer struct {
	img     *image.RGBA
	flushes int
}

// NewFramebuffer returns a black w x h display.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size implements drivers.Displayer.
func (f *Framebuffer) Size() (x, y int16) {
	b := f.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

// SetPixel implements drivers.Displayer. Out-of-range pixels are dropped.
func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.img.SetRGBA(int(x), int(y), c)
}

// Display implements drivers.Displayer; it only counts flushes.
func (f *Framebuffer) Display() error {
	f.flushes++
	return nil
}

// Flushes returns how many times Display was called.
func (f *Framebuffer) Flushes() int {
	return f.flushes
}

// At returns the pixel at (x, y).
func (f *Framebuffer) At(x, y int) color.RGBA {
	return f.img.RGBAAt(x, y)
}

// Image exposes the backing image.
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}

// WritePNG encodes the current contents as PNG.
func (f *Framebuffer) WritePNG(w io.Writer) error {
	if err := png.Encode(w, f.img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
