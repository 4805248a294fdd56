package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy/internal/core"
)

// Rand is the source of randomness for pipe placement. *math/rand.Rand
// satisfies it; tests pass a seeded generator.
type Rand interface {
	Intn(n int) int
}

// Pipe represents a vertical obstacle with a gap for the player to pass through.
type Pipe struct {
	X       float64 // Horizontal position (left edge)
	Width   float64 // Horizontal extent
	TopY    float64 // Bottom edge of the top segment (top of the gap)
	BottomY float64 // Top edge of the bottom segment (bottom of the gap)
	ScreenH float64 // Screen height; the bottom segment extends to it
	Passed  bool    // Whether the bird has passed this pipe (for scoring)
}

// NewPipe creates a pipe at spawnX with a randomly placed gap. The top of the
// gap is uniform over [minSegment, screenH-gap-minSegment] so both segments
// are at least minSegment tall.
// It panics if no such placement exists; config.Validate rules that out.
func NewPipe(spawnX, width float64, screenH, gap, minSegment int, rng Rand) Pipe {
	lo := minSegment
	hi := screenH - gap - minSegment
	if hi < lo {
		panic(fmt.Sprintf("flappy: impossible pipe layout: gap %d, min segment %d, screen height %d", gap, minSegment, screenH))
	}

	top := lo + rng.Intn(hi-lo+1)
	return Pipe{
		X:       spawnX,
		Width:   width,
		TopY:    float64(top),
		BottomY: float64(top + gap),
		ScreenH: float64(screenH),
	}
}

// Tick moves the pipe left by speed.
func (p *Pipe) Tick(speed float64) {
	p.X -= speed
}

// TopRect returns the collision rectangle for the top segment.
func (p Pipe) TopRect() core.AABB {
	return core.NewAABB(p.X, 0, p.Width, p.TopY)
}

// BottomRect returns the collision rectangle for the bottom segment.
func (p Pipe) BottomRect() core.AABB {
	return core.NewAABB(p.X, p.BottomY, p.Width, p.ScreenH-p.BottomY)
}

// GapHeight returns the height of the opening.
func (p Pipe) GapHeight() float64 {
	return p.BottomY - p.TopY
}

// CollidesWith reports whether shape overlaps either segment.
func (p Pipe) CollidesWith(shape core.AABB) bool {
	return shape.Intersects(p.TopRect()) || shape.Intersects(p.BottomRect())
}

// IsOffscreen reports whether the trailing edge has left the visible area.
func (p Pipe) IsOffscreen() bool {
	return p.X+p.Width < 0
}

// CrossedBy reports whether the trailing edge is behind avatarX and the pipe
// has not been scored yet. Callers mark the pipe passed when it fires.
func (p Pipe) CrossedBy(avatarX float64) bool {
	return !p.Passed && p.X+p.Width < avatarX
}

// MarkPassed records that the pipe has been scored.
func (p *Pipe) MarkPassed() {
	p.Passed = true
}
