package render

import (
	"image/color"

	"github.com/vovakirdan/lcd-arcade/internal/core"
)

// palette maps logical colours to panel RGB. Values survive the RGB565
// truncation the ST7796-class panels apply.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:         {R: 0xf8, G: 0x00, B: 0x00, A: 0xff},
	core.ColorGreen:       {R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	core.ColorDarkGreen:   {R: 0x00, G: 0x40, B: 0x00, A: 0xff},
	core.ColorBrightGreen: {R: 0x00, G: 0xfc, B: 0x00, A: 0xff},
	core.ColorYellow:      {R: 0xf8, G: 0xfc, B: 0x00, A: 0xff},
	core.ColorBlue:        {R: 0x00, G: 0x00, B: 0xf8, A: 0xff},
	core.ColorSky:         {R: 0x88, G: 0xcc, B: 0xf8, A: 0xff},
	core.ColorOrange:      {R: 0xf8, G: 0x80, B: 0x00, A: 0xff},
	core.ColorWhite:       {R: 0xf8, G: 0xfc, B: 0xf8, A: 0xff},
	core.ColorGray:        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	core.ColorBlack:       {R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}

// RGBA returns the panel colour for c, white when c is unknown.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}
