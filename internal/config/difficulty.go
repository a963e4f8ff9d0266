package config

import "github.com/vovakirdan/flappy-animals/internal/core"

// Difficulty derives score-dependent obstacle parameters.
// Difficulty only ever grows with score: obstacle gaps shrink towards a floor.
type Difficulty struct {
	cfg ObstacleConfig
}

// NewDifficulty creates a difficulty calculator for the given obstacle settings.
func NewDifficulty(cfg ObstacleConfig) Difficulty {
	return Difficulty{cfg: cfg}
}

// ObstacleSize returns the gap size for an obstacle spawned at the given score:
// base_size - score/divisor, never below min_size.
func (d Difficulty) ObstacleSize(score int) int {
	size := d.cfg.BaseSize - score/d.cfg.SizeScoreDivisor
	if size < d.cfg.MinSize {
		size = d.cfg.MinSize
	}
	return size
}

// ClampSpacing restricts an obstacle spacing to the configured range.
func (d Difficulty) ClampSpacing(spacing int) int {
	return core.Clamp(spacing, d.cfg.MinSpacing, d.cfg.MaxSpacing)
}

// SpacingStep returns how much one Left/Right press changes the spacing.
func (d Difficulty) SpacingStep() int {
	return d.cfg.SpacingStep
}
