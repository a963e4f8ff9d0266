package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-animals/internal/core"
)

// cellStyle is the color pair shared by a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// ScreenRenderer converts a Screen buffer to a styled string.
// Styles are cached per color pair; the cache grows with the number of
// distinct colors in the assets, which is small.
type ScreenRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to r. A nil r uses the
// default renderer for the process's stdout.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{
		renderer: r,
		styles:   make(map[cellStyle]lipgloss.Style),
	}
}

func (sr *ScreenRenderer) style(cs cellStyle) lipgloss.Style {
	if st, ok := sr.styles[cs]; ok {
		return st
	}
	st := sr.renderer.NewStyle().
		Foreground(lipgloss.Color(cs.fg.Hex())).
		Background(lipgloss.Color(cs.bg.Hex()))
	sr.styles[cs] = st
	return st
}

// Render converts the screen to a string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.Cell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Cell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Glyph)
				x++
			}

			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
