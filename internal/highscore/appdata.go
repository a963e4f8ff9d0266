package highscore

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

const (
	scoreObject   = "flappy"
	scoreProperty = "highscore"
)

// AppDataStore keeps the high score in the per-user application data
// directory, using the same decimal format as FileStore.
type AppDataStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenAppData opens the application data directory for appName.
func OpenAppData(appName string) (*AppDataStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot open app data for %s: %w", appName, err)
	}
	return &AppDataStore{manager: manager}, nil
}

// Load reads the stored score. A missing entry yields 0 with no error.
func (s *AppDataStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.ObjectPropExists(scoreObject, scoreProperty) {
		return 0, nil
	}
	data, err := s.manager.LoadObjectProp(scoreObject, scoreProperty)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot load app data: %w", err)
	}
	return parse(data)
}

// Save overwrites the stored score.
func (s *AppDataStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.manager.SaveObjectProp(scoreObject, scoreProperty, format(score)); err != nil {
		return fmt.Errorf("highscore: cannot save app data: %w", err)
	}
	return nil
}
