package flappy

// BirdView is the drawable state of the bird.
type BirdView struct {
	X        float64
	Y        float64
	Radius   float64
	Tilt     float64
	Velocity float64
}

// Snapshot is a read-only copy of everything a presentation layer needs to
// draw one frame. Changing it never affects the session.
type Snapshot struct {
	Bird    BirdView
	Pipes   []Pipe // Spawn order (left to right)
	Score   int
	State   State
	Tick    uint64
	ScreenW int
	ScreenH int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Bird: BirdView{
			X:        s.bird.X(),
			Y:        s.bird.Y(),
			Radius:   s.bird.Radius(),
			Tilt:     s.bird.Tilt(),
			Velocity: s.bird.Velocity(),
		},
		Pipes:   s.pipes.Pipes(),
		Score:   s.score,
		State:   s.state,
		Tick:    s.ticks,
		ScreenW: s.cfg.Screen.Width,
		ScreenH: s.cfg.Screen.Height,
	}
}
