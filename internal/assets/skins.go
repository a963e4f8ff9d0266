package assets

import (
	"fmt"
	"strings"
)

// PlayerSkin selects the avatar image.
type PlayerSkin int

const (
	PlayerDragon PlayerSkin = iota
	PlayerBird
	PlayerDuck
)

// PlayerSkins lists the avatar skins in menu order.
var PlayerSkins = []PlayerSkin{PlayerDragon, PlayerBird, PlayerDuck}

// String returns the lower-case skin name, also used as the asset file name.
func (s PlayerSkin) String() string {
	switch s {
	case PlayerDragon:
		return "dragon"
	case PlayerBird:
		return "bird"
	case PlayerDuck:
		return "duck"
	default:
		return "unknown"
	}
}

// Label returns the menu label of the skin.
func (s PlayerSkin) Label() string {
	switch s {
	case PlayerDragon:
		return "Dragon"
	case PlayerBird:
		return "Bird"
	case PlayerDuck:
		return "Duck"
	default:
		return "Unknown"
	}
}

// ParsePlayerSkin parses a skin name case-insensitively.
func ParsePlayerSkin(name string) (PlayerSkin, error) {
	for _, s := range PlayerSkins {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return PlayerDuck, fmt.Errorf("assets: unknown player skin %q", name)
}

// BackgroundSkin selects the scrolling background image.
type BackgroundSkin int

const (
	BackgroundStars BackgroundSkin = iota
	BackgroundClouds
	BackgroundMountains
)

// BackgroundSkins lists the background skins in menu order.
var BackgroundSkins = []BackgroundSkin{BackgroundStars, BackgroundClouds, BackgroundMountains}

// String returns the lower-case skin name, also used as the asset file name.
func (s BackgroundSkin) String() string {
	switch s {
	case BackgroundStars:
		return "stars"
	case BackgroundClouds:
		return "clouds"
	case BackgroundMountains:
		return "mountains"
	default:
		return "unknown"
	}
}

// Label returns the menu label of the skin.
func (s BackgroundSkin) Label() string {
	switch s {
	case BackgroundStars:
		return "Stars"
	case BackgroundClouds:
		return "Clouds"
	case BackgroundMountains:
		return "Mountains"
	default:
		return "Unknown"
	}
}

// ParseBackgroundSkin parses a skin name case-insensitively.
func ParseBackgroundSkin(name string) (BackgroundSkin, error) {
	for _, s := range BackgroundSkins {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return BackgroundMountains, fmt.Errorf("assets: unknown background skin %q", name)
}
