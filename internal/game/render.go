package game

import (
	"fmt"

	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar = '|'
	PixelChar    = ' '
)

// Menu layout rows
const (
	menuHeadingRow = 12
	menuFirstRow   = 15
	menuRowStep    = 2
)

// drawBackground fills every cell with a background-colored space sampled
// from the tiled image, scrolled horizontally by offset.
// Sampling is periodic in the image width: offset w renders like offset 0.
func drawBackground(dst *core.Screen, img *assets.Image, offset float64) {
	w, h := img.Width(), img.Height()
	shift := core.Mod(int(offset), w)

	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			px := img.At((x+shift)%w, y%h)
			dst.SetCell(x, y, core.ColorBlack, core.RGB(px.R, px.G, px.B), PixelChar)
		}
	}
}

// drawSprite blits the top-left width x height rectangle of img at (x, y).
// Cells outside the screen and fully transparent pixels are skipped.
func drawSprite(dst *core.Screen, img *assets.Image, x, y, width, height int) {
	bounds := dst.Bounds()
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			sx, sy := x+dx, y+dy
			if !bounds.Contains(sx, sy) {
				continue
			}

			px := img.At(dx, dy)
			if px.A == 0 {
				continue
			}
			dst.SetCell(sx, sy, core.ColorBlack, core.RGB(px.R, px.G, px.B), PixelChar)
		}
	}
}

// drawObstacle renders the wall above and below the gap.
func drawObstacle(dst *core.Screen, o Obstacle) {
	col := o.Column()
	for y := 0; y < o.GapTop(); y++ {
		dst.SetCell(col, y, core.ColorRed, core.ColorYellow, ObstacleChar)
	}
	for y := o.GapBottom(); y < dst.Height(); y++ {
		dst.SetCell(col, y, core.ColorRed, core.ColorYellow, ObstacleChar)
	}
}

// drawTitle renders the title glyphs over the background.
func drawTitle(dst *core.Screen, glyphs []assets.Glyph) {
	for _, g := range glyphs {
		dst.SetCell(g.X, g.Y, core.ColorYellow, core.ColorTransparent, g.Glyph)
	}
}

// optionColor highlights the selected row.
func optionColor(i, selected int) core.Color {
	if i == selected {
		return core.ColorYellow
	}
	return core.ColorWhite
}

// activeMarker prefixes the option matching the current setting.
func activeMarker(active bool) string {
	if active {
		return "(*) "
	}
	return "( ) "
}

// drawMenu renders the active menu panel.
func drawMenu(dst *core.Screen, m Menu, s Settings) {
	switch m.Panel() {
	case PanelMain:
		for i, option := range mainOptions {
			dst.PrintColorCentered(menuFirstRow+i*menuRowStep, optionColor(i, m.Selected()), core.ColorTransparent, option)
		}

	case PanelBackground:
		dst.PrintColorCentered(menuHeadingRow, core.ColorWhite, core.ColorBlack, "Select Background Style")
		for i, skin := range assets.BackgroundSkins {
			label := activeMarker(skin == s.Background) + skin.Label()
			dst.PrintColorCentered(menuFirstRow+i*menuRowStep, optionColor(i, m.Selected()), core.ColorTransparent, label)
		}
		back := len(assets.BackgroundSkins)
		dst.PrintColorCentered(menuFirstRow+back*menuRowStep, optionColor(back, m.Selected()), core.ColorTransparent, activeMarker(false)+"Back")

	case PanelPlayer:
		dst.PrintColorCentered(menuHeadingRow, core.ColorWhite, core.ColorBlack, "Select Player Style")
		for i, skin := range assets.PlayerSkins {
			label := activeMarker(skin == s.Player) + skin.Label()
			dst.PrintColorCentered(menuFirstRow+i*menuRowStep, optionColor(i, m.Selected()), core.ColorTransparent, label)
		}
		back := len(assets.PlayerSkins)
		dst.PrintColorCentered(menuFirstRow+back*menuRowStep, optionColor(back, m.Selected()), core.ColorTransparent, activeMarker(false)+"Back")

	case PanelObstacle:
		dst.PrintCentered(menuHeadingRow, "Obstacle Distance")
		dst.PrintColorCentered(14, optionColor(0, m.Selected()), core.ColorBlack, fmt.Sprintf("Current: %d spaces", s.ObstacleDistance))
		dst.PrintCentered(16, "(Use Left/Right to adjust)")
		dst.PrintColorCentered(18, optionColor(1, m.Selected()), core.ColorBlack, "Back")
	}
}

// drawEndScreen renders the game-over summary and the available actions.
func drawEndScreen(dst *core.Screen, score, highScore int) {
	lines := []string{
		"You are dead!",
		fmt.Sprintf("Final Score: %d", score),
		fmt.Sprintf("High Score: %d", highScore),
		"(P) Play Again",
		"(M) Main Menu",
		"(Q) Quit Game",
	}
	for i, line := range lines {
		dst.PrintColorCentered(5+i, core.ColorWhite, core.ColorBlack, line)
	}
}

// drawHUD renders the in-game hint and score.
func drawHUD(dst *core.Screen, score int) {
	dst.Print(0, 0, "Press Space to flap")
	dst.Print(0, 1, fmt.Sprintf("Score: %d", score))
}
