package flappy

import (
	"github.com/vovakirdan/flappy/internal/config"
)

// PipeStream handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeStream struct {
	pipes       []Pipe
	rng         Rand
	cfg         config.Pipes
	screenH     int
	lastSpawnMs int64 // Time of the last spawn (or of the last reset)
}

// NewPipeStream creates an empty stream whose spawn timer starts at nowMs.
func NewPipeStream(cfg config.Pipes, screenH int, rng Rand, nowMs int64) *PipeStream {
	ps := &PipeStream{
		pipes:   make([]Pipe, 0, 8),
		rng:     rng,
		cfg:     cfg,
		screenH: screenH,
	}
	ps.Reset(nowMs)
	return ps
}

// Reset removes all pipes and restarts the spawn timer at nowMs.
func (ps *PipeStream) Reset(nowMs int64) {
	ps.pipes = ps.pipes[:0]
	ps.lastSpawnMs = nowMs
}

// MaybeSpawn appends a pipe at x = screenW if more than the spawn interval
// has elapsed since the previous spawn. At most one pipe is created per
// call, however much time has passed.
func (ps *PipeStream) MaybeSpawn(nowMs int64, screenW int) bool {
	if nowMs-ps.lastSpawnMs <= ps.cfg.SpawnIntervalMs {
		return false
	}

	pipe := NewPipe(float64(screenW), ps.cfg.Width, ps.screenH, ps.cfg.Gap, ps.cfg.MinSegment, ps.rng)
	ps.pipes = append(ps.pipes, pipe)
	ps.lastSpawnMs = nowMs
	return true
}

// Tick advances every live pipe by speed.
func (ps *PipeStream) Tick(speed float64) {
	for i := range ps.pipes {
		ps.pipes[i].Tick(speed)
	}
}

// RetireOffscreen removes every pipe that has fully left the screen and
// returns how many were removed. Survivors keep their order.
func (ps *PipeStream) RetireOffscreen() int {
	survivors := ps.pipes[:0]
	for _, p := range ps.pipes {
		if !p.IsOffscreen() {
			survivors = append(survivors, p)
		}
	}
	removed := len(ps.pipes) - len(survivors)

	// Drop references past the new length so the backing array stays clean.
	clear(ps.pipes[len(survivors):])
	ps.pipes = survivors
	return removed
}

// Pipes returns a copy of the live pipes in spawn order.
func (ps *PipeStream) Pipes() []Pipe {
	out := make([]Pipe, len(ps.pipes))
	copy(out, ps.pipes)
	return out
}

// Len returns the number of live pipes.
func (ps *PipeStream) Len() int {
	return len(ps.pipes)
}

// LastSpawnMs returns the time of the last spawn or reset.
func (ps *PipeStream) LastSpawnMs() int64 {
	return ps.lastSpawnMs
}
