package flappy

import (
	"fmt"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
)

// State is the phase of a session.
type State int

const (
	StateStart    State = iota // Waiting for the first flap
	StatePlaying               // Simulation running
	StateGameOver              // Bird crashed; waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is one game: the bird, the pipe stream, the score and the state
// machine Start -> Playing -> GameOver -> Start. A session is owned by a
// single loop and is not safe for concurrent use.
type Session struct {
	cfg   config.Config
	clock core.Clock
	rng   Rand

	bird  *Bird
	pipes *PipeStream
	score int
	state State
	ticks uint64 // Simulation ticks since the last reset
}

// NewSession validates cfg and creates a session in the Start state.
// The clock drives pipe spawning and rng drives gap placement, so a manual
// clock and a seeded rng make a session fully deterministic.
func NewSession(cfg config.Config, clock core.Clock, rng Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		return nil, fmt.Errorf("flappy: clock is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("flappy: rng is required")
	}

	s := &Session{
		cfg:   cfg,
		clock: clock,
		rng:   rng,
	}
	s.Reset()
	return s, nil
}

// Reset starts a new session: fresh bird, no pipes, zero score, Start state.
func (s *Session) Reset() {
	now := s.clock.NowMillis()

	s.bird = NewBird(s.cfg)
	if s.pipes == nil {
		s.pipes = NewPipeStream(s.cfg.Pipes, s.cfg.Screen.Height, s.rng, now)
	} else {
		s.pipes.Reset(now)
	}
	s.score = 0
	s.state = StateStart
	s.ticks = 0
}

// HandleAction applies one input action. It returns false when the action
// asks the loop to stop; the session itself is left untouched in that case.
func (s *Session) HandleAction(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return false
	case core.ActionPrimary:
		switch s.state {
		case StateStart:
			s.bird.Flap()
			s.state = StatePlaying
		case StatePlaying:
			s.bird.Flap()
		case StateGameOver:
			s.Reset()
		}
	}
	return true
}

// HandleFrame applies the actions of a frame in order and stops at the
// first quit request. It returns false if the loop should stop.
func (s *Session) HandleFrame(f core.InputFrame) bool {
	for _, a := range f.Actions() {
		if !s.HandleAction(a) {
			return false
		}
	}
	return true
}

// Tick advances the simulation by one frame. Nothing happens outside the
// Playing state.
func (s *Session) Tick() {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.bird.Tick()
	if s.bird.BoundsExceeded(float64(s.cfg.Screen.Height)) {
		s.state = StateGameOver
		return
	}

	s.pipes.MaybeSpawn(s.clock.NowMillis(), s.cfg.Screen.Width)

	shape := s.bird.CollisionShape()
	for i := range s.pipes.pipes {
		p := &s.pipes.pipes[i]
		p.Tick(s.cfg.Pipes.Speed)

		if p.CollidesWith(shape) {
			s.state = StateGameOver
		}
		if p.CrossedBy(s.bird.X()) {
			p.MarkPassed()
			s.score++
		}
	}

	s.pipes.RetireOffscreen()
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of pipes passed in this session.
func (s *Session) Score() int {
	return s.score
}

// Ticks returns the number of simulation ticks since the last reset.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Bird returns the current bird.
func (s *Session) Bird() *Bird {
	return s.bird
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Config {
	return s.cfg
}
