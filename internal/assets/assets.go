// Package assets holds the decoded sprite and background images and the
// pre-computed title glyphs. Images are embedded into the binary and decoded
// once at startup.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG decoder

	"github.com/vovakirdan/flappy-animals/internal/core"
)

//go:embed player/*.png background/*.png
var files embed.FS

// Image is a decoded, pixel-addressable picture.
type Image struct {
	width  int
	height int
	pixels []core.Color // row-major, width*height
}

// NewImage converts a decoded image into an Image.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	img := &Image{
		width:  b.Dx(),
		height: b.Dy(),
		pixels: make([]core.Color, b.Dx()*b.Dy()),
	}
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			img.pixels[y*img.width+x] = core.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return img
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	return i.width
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	return i.height
}

// At returns the RGBA pixel at (x, y).
// Out-of-bounds coordinates return a fully transparent pixel.
func (i *Image) At(x, y int) core.Color {
	if x < 0 || x >= i.width || y < 0 || y >= i.height {
		return core.ColorTransparent
	}
	return i.pixels[y*i.width+x]
}

// Glyph is one title character at a fixed screen position.
type Glyph struct {
	X, Y  int
	Glyph rune
}

// Store is the asset collaborator: one image per skin plus the menu title.
type Store struct {
	players     map[PlayerSkin]*Image
	backgrounds map[BackgroundSkin]*Image
	title       []Glyph
}

// Load decodes every embedded image.
// A missing or undecodable asset is returned as an error; callers treat it as fatal.
func Load() (*Store, error) {
	s := &Store{
		players:     make(map[PlayerSkin]*Image, len(PlayerSkins)),
		backgrounds: make(map[BackgroundSkin]*Image, len(BackgroundSkins)),
		title:       titleGlyphs(),
	}

	for _, skin := range PlayerSkins {
		img, err := decode("player/" + skin.String() + ".png")
		if err != nil {
			return nil, err
		}
		s.players[skin] = img
	}
	for _, skin := range BackgroundSkins {
		img, err := decode("background/" + skin.String() + ".png")
		if err != nil {
			return nil, err
		}
		s.backgrounds[skin] = img
	}
	return s, nil
}

// decode reads and decodes one embedded PNG.
func decode(name string) (*Image, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", name, err)
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: cannot decode %s: %w", name, err)
	}
	return NewImage(src), nil
}

// Player returns the avatar image for a skin.
func (s *Store) Player(skin PlayerSkin) *Image {
	return s.players[skin]
}

// Background returns the background image for a skin.
func (s *Store) Background(skin BackgroundSkin) *Image {
	return s.backgrounds[skin]
}

// Title returns the menu title glyphs.
func (s *Store) Title() []Glyph {
	return s.title
}

// titleGlyphs spells "FLAPPY" over "DRAGON", one letter every other column.
func titleGlyphs() []Glyph {
	var glyphs []Glyph
	for i, r := range "FLAPPY" {
		glyphs = append(glyphs, Glyph{X: 25 + 2*i, Y: 5, Glyph: r})
	}
	for i, r := range "DRAGON" {
		glyphs = append(glyphs, Glyph{X: 23 + 2*i, Y: 7, Glyph: r})
	}
	return glyphs
}
