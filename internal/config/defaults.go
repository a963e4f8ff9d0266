package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  120,
			Height: 80,
			Title:  "Flappy Animals",
			FPS:    60,
		},
		Physics: PhysicsConfig{
			FrameDurationMs: 75,
			Gravity:         0.2,
			MaxFallSpeed:    2.0,
			FlapVelocity:    -2.5,
			ObstacleSpeed:   0.5,
			BackgroundSpeed: 0.001,
		},
		Player: PlayerConfig{
			StartX: 2,
			StartY: 25,
			Width:  14,
			Height: 14,
		},
		Obstacles: ObstacleConfig{
			BaseSize:         40,
			MinSize:          20,
			SizeScoreDivisor: 2,
			GapMin:           30,
			GapMax:           60,
			DefaultSpacing:   50,
			MinSpacing:       40,
			MaxSpacing:       60,
			SpacingStep:      5,
		},
		Skins: SkinConfig{
			Player:     "duck",
			Background: "mountains",
		},
		HighScore: HighScoreConfig{
			Backend: BackendFile,
			Path:    "highscore.txt",
			AppName: "flappy-animals",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "~/.flappy-animals/runs.db",
		},
		Audio: AudioConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "~/.flappy-animals/flappy.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
