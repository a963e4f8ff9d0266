package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/flappy-animals/internal/core"
)

func TestLoadDecodesEverySkin(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	for _, skin := range PlayerSkins {
		img := s.Player(skin)
		if img == nil {
			t.Fatalf("Player(%s) is nil", skin)
		}
		if img.Width() != 14 || img.Height() != 14 {
			t.Errorf("Player(%s) is %dx%d, expected 14x14", skin, img.Width(), img.Height())
		}
		// Sprites are cut out: the top-left corner is transparent
		if a := img.At(0, 0).A; a != 0 {
			t.Errorf("Player(%s) corner alpha = %d, expected 0", skin, a)
		}
	}

	for _, skin := range BackgroundSkins {
		img := s.Background(skin)
		if img == nil {
			t.Fatalf("Background(%s) is nil", skin)
		}
		if img.Width() <= 0 || img.Height() <= 0 {
			t.Errorf("Background(%s) has empty size %dx%d", skin, img.Width(), img.Height())
		}
		if a := img.At(img.Width()/2, img.Height()/2).A; a != 0xff {
			t.Errorf("Background(%s) should be opaque, alpha = %d", skin, a)
		}
	}
}

func TestTitleGlyphs(t *testing.T) {
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	title := s.Title()
	if len(title) != 12 {
		t.Fatalf("Title() has %d glyphs, expected 12", len(title))
	}
	if title[0] != (Glyph{X: 25, Y: 5, Glyph: 'F'}) {
		t.Errorf("first glyph = %+v, expected F at (25, 5)", title[0])
	}
	if title[11] != (Glyph{X: 33, Y: 7, Glyph: 'N'}) {
		t.Errorf("last glyph = %+v, expected N at (33, 7)", title[11])
	}
}

func TestNewImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	img := NewImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", img.Width(), img.Height())
	}
	if got := img.At(2, 1); got != core.RGB(10, 20, 30) {
		t.Errorf("At(2, 1) = %+v", got)
	}
	if got := img.At(0, 0); !got.Transparent() {
		t.Errorf("At(0, 0) = %+v, expected transparent", got)
	}
	if got := img.At(5, 5); got != core.ColorTransparent {
		t.Errorf("out of bounds At = %+v, expected transparent", got)
	}
}

func TestParseSkins(t *testing.T) {
	if s, err := ParsePlayerSkin("Dragon"); err != nil || s != PlayerDragon {
		t.Errorf("ParsePlayerSkin(Dragon) = %v, %v", s, err)
	}
	if _, err := ParsePlayerSkin("cat"); err == nil {
		t.Error("ParsePlayerSkin(cat) should fail")
	}
	if s, err := ParseBackgroundSkin("clouds"); err != nil || s != BackgroundClouds {
		t.Errorf("ParseBackgroundSkin(clouds) = %v, %v", s, err)
	}
	if _, err := ParseBackgroundSkin("ocean"); err == nil {
		t.Error("ParseBackgroundSkin(ocean) should fail")
	}
}
