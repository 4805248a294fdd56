package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// msPerTick is the frame duration at the default 60 FPS, rounded down.
const msPerTick = 1000 / 60

// fixedRand always returns v, clamped to the valid range.
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

// add appends an already constructed pipe.
func (ps *PipeStream) add(p Pipe) {
	ps.pipes = append(ps.pipes, p)
}

// newTestSession returns a session with default config, a manual clock at 0
// and a fixed seed.
func newTestSession(t *testing.T) (*Session, *core.ManualClock) {
	t.Helper()

	clock := core.NewManualClock(0)
	s, err := NewSession(config.Default(), clock, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, clock
}

// startPlaying moves a fresh session into Playing and puts the bird at rest at y.
func startPlaying(t *testing.T, s *Session, y float64) {
	t.Helper()

	s.HandleAction(core.ActionPrimary)
	if s.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", s.State())
	}
	s.bird.y = y
	s.bird.velocity = 0
}

// tick advances the clock by one frame and runs one simulation tick.
func tick(s *Session, clock *core.ManualClock) {
	clock.Advance(msPerTick)
	s.Tick()
}
