package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate reports every problem with the configuration at once.
// A configuration that passes can never produce an impossible pipe layout.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		fail("screen must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.FrameRate <= 0 {
		fail("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Physics.Gravity < 0 {
		fail("physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.FlapImpulse >= 0 {
		fail("physics.flap_impulse must be negative (upward), got %v", c.Physics.FlapImpulse)
	}
	if c.Physics.MaxTilt < 0 {
		fail("physics.max_tilt must not be negative, got %v", c.Physics.MaxTilt)
	}
	if c.Bird.Radius <= 0 {
		fail("bird.radius must be positive, got %v", c.Bird.Radius)
	}
	if c.Bird.X < 0 || c.Bird.X > float64(c.Screen.Width) {
		fail("bird.x must lie within the screen, got %v", c.Bird.X)
	}
	if c.Pipes.Speed <= 0 {
		fail("pipes.speed must be positive, got %v", c.Pipes.Speed)
	}
	if c.Pipes.Width <= 0 {
		fail("pipes.width must be positive, got %v", c.Pipes.Width)
	}
	if c.Pipes.Gap <= 0 {
		fail("pipes.gap must be positive, got %d", c.Pipes.Gap)
	}
	if c.Pipes.MinSegment < 0 {
		fail("pipes.min_segment must not be negative, got %d", c.Pipes.MinSegment)
	}
	if c.Pipes.SpawnIntervalMs <= 0 {
		fail("pipes.spawn_interval_ms must be positive, got %d", c.Pipes.SpawnIntervalMs)
	}
	if c.Pipes.Gap+2*c.Pipes.MinSegment >= c.Screen.Height {
		fail("pipes.gap + 2*pipes.min_segment (%d) must be less than screen.height (%d)",
			c.Pipes.Gap+2*c.Pipes.MinSegment, c.Screen.Height)
	}

	return errors.Join(errs...)
}
