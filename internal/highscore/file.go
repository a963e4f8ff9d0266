// Package highscore persists the best score between runs.
//
// Two backends exist: a plain text file holding the decimal score (the
// default, compatible with a hand-written highscore.txt) and the per-user
// application data directory managed by gdata.
package highscore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps the high score as a decimal integer in a text file.
// It is safe for concurrent use by several game sessions.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by the file at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored score. A missing file yields 0 with no error;
// unparsable content yields 0 with an error.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}
	return parse(data)
}

// Save overwrites the stored score. The value is written to a temporary file
// first and renamed over the old one.
func (s *FileStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, format(score), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// parse decodes the stored decimal score.
func parse(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("highscore: invalid content: %w", err)
	}
	return score, nil
}

func format(score int) []byte {
	return []byte(strconv.Itoa(score))
}
