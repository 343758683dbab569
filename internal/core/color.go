package core

// Color is a logical palette entry shared by every render target.
// The terminal maps it to ANSI colours, the LCD adapter to RGB565-safe RGBA values.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorBrightGreen
	ColorYellow
	ColorBlue
	ColorSky
	ColorOrange
	ColorWhite
	ColorGray
	ColorBlack
)

// String returns the palette name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorDarkGreen:
		return "dark-green"
	case ColorBrightGreen:
		return "bright-green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorSky:
		return "sky"
	case ColorOrange:
		return "orange"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorBlack:
		return "black"
	default:
		return "default"
	}
}
