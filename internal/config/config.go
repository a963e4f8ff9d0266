// Package config provides YAML-based configuration loading for Flappy Animals.
// The loaded Config is built once at process start and treated as immutable.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunables of the game and its collaborators.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Skins     SkinConfig      `yaml:"skins"`
	HighScore HighScoreConfig `yaml:"highscore"`
	History   HistoryConfig   `yaml:"history"`
	Audio     AudioConfig     `yaml:"audio"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ScreenConfig defines the fixed cell grid the game renders into.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"` // Host tick rate
}

// PhysicsConfig defines player and scrolling physics.
type PhysicsConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"`
	Gravity         float64 `yaml:"gravity"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	FlapVelocity    float64 `yaml:"flap_velocity"`
	ObstacleSpeed   float64 `yaml:"obstacle_speed"`
	BackgroundSpeed float64 `yaml:"background_speed"`
}

// PlayerConfig defines the avatar start position and hitbox.
type PlayerConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle generation and spacing limits.
type ObstacleConfig struct {
	BaseSize         int `yaml:"base_size"`
	MinSize          int `yaml:"min_size"`
	SizeScoreDivisor int `yaml:"size_score_divisor"`
	GapMin           int `yaml:"gap_min"`
	GapMax           int `yaml:"gap_max"`
	DefaultSpacing   int `yaml:"default_spacing"`
	MinSpacing       int `yaml:"min_spacing"`
	MaxSpacing       int `yaml:"max_spacing"`
	SpacingStep      int `yaml:"spacing_step"`
}

// SkinConfig selects the skins active when the process starts.
type SkinConfig struct {
	Player     string `yaml:"player"`
	Background string `yaml:"background"`
}

// HighScore backends.
const (
	BackendFile    = "file"
	BackendAppData = "appdata"
)

// HighScoreConfig selects where the high score is persisted.
type HighScoreConfig struct {
	Backend string `yaml:"backend"`  // "file" or "appdata"
	Path    string `yaml:"path"`     // file backend
	AppName string `yaml:"app_name"` // appdata backend
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// AudioConfig controls sound effects.
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoggingConfig controls the log level and destination.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.FPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.fps must be positive, got %d", c.Screen.FPS))
	}
	if c.Physics.FrameDurationMs <= 0 {
		errs = append(errs, fmt.Errorf("physics.frame_duration_ms must be positive, got %v", c.Physics.FrameDurationMs))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %dx%d", c.Player.Width, c.Player.Height))
	}
	o := c.Obstacles
	if o.GapMin >= o.GapMax {
		errs = append(errs, fmt.Errorf("obstacles gap range [%d,%d) is empty", o.GapMin, o.GapMax))
	}
	if o.MinSize <= 0 || o.BaseSize < o.MinSize {
		errs = append(errs, fmt.Errorf("obstacles sizes invalid: base %d, min %d", o.BaseSize, o.MinSize))
	}
	if o.SizeScoreDivisor <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.size_score_divisor must be positive, got %d", o.SizeScoreDivisor))
	}
	if o.MinSpacing > o.MaxSpacing {
		errs = append(errs, fmt.Errorf("obstacles spacing range [%d,%d] is inverted", o.MinSpacing, o.MaxSpacing))
	}
	switch c.HighScore.Backend {
	case BackendFile, BackendAppData:
	default:
		errs = append(errs, fmt.Errorf("highscore.backend must be %q or %q, got %q", BackendFile, BackendAppData, c.HighScore.Backend))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
