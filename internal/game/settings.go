package game

import (
	"github.com/vovakirdan/flappy-animals/internal/assets"
	"github.com/vovakirdan/flappy-animals/internal/config"
)

// Settings are the menu-controlled choices. They live for the whole process
// and are never written to disk.
type Settings struct {
	Background       assets.BackgroundSkin
	Player           assets.PlayerSkin
	ObstacleDistance int
}

// NewSettings builds the start-up settings from configuration.
// Unknown skin names fall back to the defaults and are reported in the returned error.
func NewSettings(cfg config.Config) (Settings, error) {
	s := Settings{
		Background:       assets.BackgroundMountains,
		Player:           assets.PlayerDuck,
		ObstacleDistance: config.NewDifficulty(cfg.Obstacles).ClampSpacing(cfg.Obstacles.DefaultSpacing),
	}

	var firstErr error
	if bg, err := assets.ParseBackgroundSkin(cfg.Skins.Background); err == nil {
		s.Background = bg
	} else {
		firstErr = err
	}
	if pl, err := assets.ParsePlayerSkin(cfg.Skins.Player); err == nil {
		s.Player = pl
	} else if firstErr == nil {
		firstErr = err
	}
	return s, firstErr
}
