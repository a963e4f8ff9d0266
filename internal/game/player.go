package game

import "github.com/vovakirdan/flappy-animals/internal/config"

// Player is the avatar: an integer screen position with a vertical velocity.
// Y never goes negative; there is no ceiling penalty, the avatar just sticks
// to the top row.
type Player struct {
	X, Y     int
	Velocity float64
}

// NewPlayer creates a resting player at (x, y).
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// GravityStep applies one fixed physics step: accelerate downwards until the
// fall speed cap, move by the whole part of the velocity, clamp to the top row.
func (p *Player) GravityStep(phys config.PhysicsConfig) {
	if p.Velocity < phys.MaxFallSpeed {
		p.Velocity += phys.Gravity
	}
	p.Y += int(p.Velocity)

	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap replaces the current velocity with the upward flap velocity.
func (p *Player) Flap(phys config.PhysicsConfig) {
	p.Velocity = phys.FlapVelocity
}
