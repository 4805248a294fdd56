package core

import "time"

// Clock reports the current time in milliseconds since an arbitrary epoch.
// Values must never decrease.
type Clock interface {
	NowMillis() int64
}

// SystemClock is a Clock backed by the monotonic wall clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose epoch is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMillis returns milliseconds elapsed since the clock was created.
func (c *SystemClock) NowMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a Clock that only moves when told to. Used by tests and
// headless simulations.
type ManualClock struct {
	now int64
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(startMs int64) *ManualClock {
	return &ManualClock{now: startMs}
}

// NowMillis returns the current manual time.
func (c *ManualClock) NowMillis() int64 {
	return c.now
}

// Advance moves the clock forward by d milliseconds. Negative values are ignored.
func (c *ManualClock) Advance(d int64) {
	if d > 0 {
		c.now += d
	}
}
