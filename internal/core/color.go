package core

import "fmt"

// Color is a 24-bit cell color with an alpha channel.
// A zero alpha means "transparent": drawing with it leaves the existing
// cell color in place.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// Predefined colors used by the game screens.
var (
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(255, 255, 255)
	ColorYellow      = RGB(255, 255, 0)
	ColorRed         = RGB(255, 0, 0)
	ColorTransparent = Color{}
)

// Transparent reports whether the color has zero alpha.
func (c Color) Transparent() bool {
	return c.A == 0
}

// Hex returns the color as a "#rrggbb" string, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
