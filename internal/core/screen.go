package core

import (
	"strings"
)

// Cell is one character cell of the screen: a glyph drawn in a foreground
// color over a background color.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// blank is the cell every screen starts with.
var blank = Cell{Glyph: ' ', Fg: ColorWhite, Bg: ColorBlack}

// Screen is a 2D cell buffer the game draws into each tick.
// It decouples game rendering from the terminal: hosts read the cells back
// and present them with whatever backend they use.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle anchored at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Clear resets every cell to a white-on-black space.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a glyph at the given position.
// Out-of-bounds coordinates are silently ignored. A transparent foreground
// or background keeps the color already in the cell.
func (s *Screen) SetCell(x, y int, fg, bg Color, glyph rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c := &s.cells[y][x]
	c.Glyph = glyph
	if !fg.Transparent() {
		c.Fg = fg
	}
	if !bg.Transparent() {
		c.Bg = bg
	}
}

// Cell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// Print writes white-on-black text starting at (x, y).
func (s *Screen) Print(x, y int, text string) {
	s.PrintColor(x, y, ColorWhite, ColorBlack, text)
}

// PrintColor writes text horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) PrintColor(x, y int, fg, bg Color, text string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, fg, bg, r)
		i++
	}
}

// PrintCentered writes white-on-black text centered horizontally on row y.
func (s *Screen) PrintCentered(y int, text string) {
	s.PrintColorCentered(y, ColorWhite, ColorBlack, text)
}

// PrintColorCentered writes text centered horizontally on row y.
func (s *Screen) PrintColorCentered(y int, fg, bg Color, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.PrintColor(x, y, fg, bg, text)
}

// String returns the glyphs of the screen, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Glyph)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}
