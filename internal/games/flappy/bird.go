// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// Bird is the player-controlled avatar. It never moves horizontally.
type Bird struct {
	x        float64 // Fixed horizontal position of the centre
	y        float64 // Vertical position of the centre (grows downward)
	velocity float64 // Vertical velocity per tick (negative = up)
	radius   float64 // Collision radius
	tilt     float64 // Cosmetic tilt in degrees (positive = nose up)
	physics  config.Physics
}

// NewBird creates a bird at rest in the vertical middle of the screen.
func NewBird(cfg config.Config) *Bird {
	return &Bird{
		x:       cfg.Bird.X,
		y:       float64(cfg.Screen.Height / 2),
		radius:  cfg.Bird.Radius,
		physics: cfg.Physics,
	}
}

// Flap sets the velocity to the flap impulse, discarding the current velocity.
func (b *Bird) Flap() {
	b.velocity = b.physics.FlapImpulse
}

// Tick applies one step of gravity and moves the bird.
func (b *Bird) Tick() {
	b.velocity += b.physics.Gravity
	b.y += b.velocity
	b.tilt = core.ClampF(-b.velocity*b.physics.TiltFactor, -b.physics.MaxTilt, b.physics.MaxTilt)
}

// BoundsExceeded reports whether the bird touches or crosses the top or
// bottom of a screen of the given height.
func (b *Bird) BoundsExceeded(screenH float64) bool {
	return b.y-b.radius <= 0 || b.y+b.radius >= screenH
}

// CollisionShape returns the square hitbox enclosing the bird's circle.
func (b *Bird) CollisionShape() core.AABB {
	return core.CenteredSquare(b.x, b.y, b.radius)
}

// X returns the fixed horizontal position.
func (b *Bird) X() float64 { return b.x }

// Y returns the vertical position.
func (b *Bird) Y() float64 { return b.y }

// Velocity returns the vertical velocity.
func (b *Bird) Velocity() float64 { return b.velocity }

// Radius returns the collision radius.
func (b *Bird) Radius() float64 { return b.radius }

// Tilt returns the cosmetic tilt in degrees.
func (b *Bird) Tilt() float64 { return b.tilt }
