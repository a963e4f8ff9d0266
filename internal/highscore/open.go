package highscore

import (
	"fmt"

	"github.com/vovakirdan/flappy-animals/internal/config"
)

// Store loads and saves the high score.
type Store interface {
	Load() (int, error)
	Save(score int) error
}

// Open returns the backend selected by cfg. File paths starting with ~ are
// expanded to the home directory.
func Open(cfg config.HighScoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile:
		path, err := config.ExpandPath(cfg.Path)
		if err != nil {
			return nil, err
		}
		return NewFileStore(path), nil
	case config.BackendAppData:
		return OpenAppData(cfg.AppName)
	default:
		return nil, fmt.Errorf("highscore: unknown backend %q", cfg.Backend)
	}
}
