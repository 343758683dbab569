package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

func testFrame() core.Frame {
	return core.Frame{
		WorldW:     10,
		WorldH:     5,
		Background: core.ColorBlack,
		Entities: []core.Entity{
			{Shape: core.ShapeRect, Bounds: core.NewRectF(0, 0, 2, 1), Color: core.ColorGreen, Glyph: '#'},
			{Shape: core.ShapeRect, Bounds: core.NewRectF(1, 0, 2, 1), Color: core.ColorRed, Glyph: '@'},
			{Shape: core.ShapeText, Bounds: core.NewRectF(5, 4, 5, 1), Color: core.ColorWhite, Label: "HI"},
		},
	}
}

func TestDrawScreenScalesAndOrders(t *testing.T) {
	dst := core.NewScreen(20, 5)
	DrawScreen(dst, testFrame(), core.NewRect(0, 0, 20, 5))

	// World is 10x5 onto 20x5 cells: two columns per unit.
	expected := "##@@@@"
	if got := dst.Row(0)[:6]; got != expected {
		t.Errorf("row 0 = %q, expected %q", got, expected)
	}
	if c := dst.GetCell(2, 0); c.Color != core.ColorRed {
		t.Errorf("later entity should paint over earlier one, got %v", c.Color)
	}
	if got := dst.Row(4)[10:12]; got != "HI" {
		t.Errorf("label = %q, expected HI", got)
	}
}

func TestDrawScreenClipsToArea(t *testing.T) {
	dst := core.NewScreen(20, 8)
	dst.Fill('.')
	area := core.NewRect(2, 1, 10, 5)

	f := core.Frame{
		WorldW: 10,
		WorldH: 5,
		Entities: []core.Entity{
			{Bounds: core.NewRectF(-3, -3, 20, 20), Glyph: 'X'},
		},
	}
	DrawScreen(dst, f, area)

	for y := range dst.Height() {
		for x := range dst.Width() {
			inside := area.Contains(x, y)
			got := dst.Get(x, y)
			if inside && got != 'X' {
				t.Fatalf("(%d,%d) inside area = %q", x, y, got)
			}
			if !inside && got != '.' {
				t.Fatalf("(%d,%d) outside area was touched: %q", x, y, got)
			}
		}
	}
}

func TestDrawScreenIgnoresEmptyWorld(t *testing.T) {
	dst := core.NewScreen(4, 2)
	dst.Fill('.')
	DrawScreen(dst, core.Frame{}, core.NewRect(0, 0, 4, 2))
	if dst.Row(0) != "...." {
		t.Error("an empty frame must not touch the screen")
	}
}

func TestLCDDraw(t *testing.T) {
	fb := NewFramebuffer(100, 50)
	lcd := NewLCD(fb)

	f := core.Frame{
		WorldW:     10,
		WorldH:     5,
		Background: core.ColorDarkGreen,
		Entities: []core.Entity{
			{Shape: core.ShapeRect, Bounds: core.NewRectF(1, 1, 2, 2), Color: core.ColorRed},
			{Shape: core.ShapeCircle, Bounds: core.NewRectF(6, 1, 2, 2), Color: core.ColorYellow},
		},
	}
	if err := lcd.Draw(f); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want core.Color
	}{
		{"background", 0, 0, core.ColorDarkGreen},
		{"rect fill", 15, 15, core.ColorRed},
		{"rect corner", 10, 10, core.ColorRed},
		{"circle centre", 70, 20, core.ColorYellow},
		{"circle bounding corner", 60, 10, core.ColorDarkGreen},
	}
	for _, tc := range tests {
		if got := fb.At(tc.x, tc.y); got != RGBA(tc.want) {
			t.Errorf("%s: pixel (%d,%d) = %v, expected %v", tc.name, tc.x, tc.y, got, RGBA(tc.want))
		}
	}
	if fb.Flushes() != 1 {
		t.Errorf("Display() called %d times, expected 1", fb.Flushes())
	}
}

func TestLCDText(t *testing.T) {
	fb := NewFramebuffer(60, 20)
	lcd := NewLCD(fb)

	f := core.Frame{
		WorldW:     60,
		WorldH:     20,
		Background: core.ColorBlack,
		Entities: []core.Entity{
			{Shape: core.ShapeText, Bounds: core.NewRectF(2, 2, 50, 10), Color: core.ColorWhite, Label: "88"},
		},
	}
	if err := lcd.Draw(f); err != nil {
		t.Fatal(err)
	}

	white := RGBA(core.ColorWhite)
	lit := 0
	for y := range 20 {
		for x := range 60 {
			if fb.At(x, y) == white {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("label drew no pixels")
	}
}

func TestFramebufferIgnoresOutOfRange(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.SetPixel(-1, 2, RGBA(core.ColorRed))
	fb.SetPixel(4, 4, RGBA(core.ColorRed))

	if w, h := fb.Size(); w != 4 || h != 4 {
		t.Errorf("Size() = %dx%d", w, h)
	}
}

func TestWritePNG(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	lcd := NewLCD(fb)
	lcd.FillRect(core.NewRect(0, 0, 8, 6), RGBA(core.ColorSky))

	var buf bytes.Buffer
	if err := fb.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("png size = %v", b)
	}
	r, g, b, _ := img.At(3, 3).RGBA()
	want := RGBA(core.ColorSky)
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
		t.Errorf("png pixel = %d,%d,%d expected %v", r>>8, g>>8, b>>8, want)
	}
}

func TestRGBAUnknownFallsBack(t *testing.T) {
	if RGBA(core.Color(200)) != RGBA(core.ColorDefault) {
		t.Error("unknown colours should map to the default")
	}
}
