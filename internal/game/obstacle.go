package game

import (
	"math/rand"

	"github.com/vovakirdan/flappy-animals/internal/config"
)

// Obstacle is a one-column wall with a vertical gap the player must fly through.
type Obstacle struct {
	X      float64 // Sub-cell horizontal position for smooth scrolling
	GapY   int     // Gap center
	Size   int     // Total gap height
	Scored bool    // Whether the player already scored on this obstacle
}

// Column returns the screen column the obstacle occupies.
func (o Obstacle) Column() int {
	return int(o.X)
}

// GapTop returns the first row of the gap.
func (o Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the first row below the gap.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// Step scrolls the obstacle left by speed cells.
func (o *Obstacle) Step(speed float64) {
	o.X -= speed
}

// Hits reports whether a player with the given hitbox overlaps the obstacle
// column while not fully inside the gap. The player spans [x, x+width).
func (o Obstacle) Hits(p Player, width, height int) bool {
	col := o.Column()
	overlapsColumn := p.X <= col && p.X+width > col
	aboveGap := p.Y < o.GapTop()
	belowGap := p.Y+height > o.GapBottom()
	return overlapsColumn && (aboveGap || belowGap)
}

// TryScore marks the obstacle as scored the first time the player is strictly
// past its column. Returns true only on that transition.
func (o *Obstacle) TryScore(p Player) bool {
	if o.Scored || p.X <= o.Column() {
		return false
	}
	o.Scored = true
	return true
}

// Spawner creates obstacles at the right screen edge.
type Spawner struct {
	rng        *rand.Rand
	cfg        config.ObstacleConfig
	difficulty config.Difficulty
	spawnX     float64
}

// NewSpawner creates a spawner that places obstacles at spawnX.
func NewSpawner(seed int64, cfg config.ObstacleConfig, spawnX int) *Spawner {
	return &Spawner{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg),
		spawnX:     float64(spawnX),
	}
}

// Spawn creates an obstacle sized for the current score with a gap center
// drawn uniformly from [gap_min, gap_max).
func (s *Spawner) Spawn(score int) Obstacle {
	return Obstacle{
		X:    s.spawnX,
		GapY: s.cfg.GapMin + s.rng.Intn(s.cfg.GapMax-s.cfg.GapMin),
		Size: s.difficulty.ObstacleSize(score),
	}
}
