package flappy

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/flappy/internal/config"
)

func newTestStream(seed int64, nowMs int64) *PipeStream {
	cfg := config.Default()
	return NewPipeStream(cfg.Pipes, cfg.Screen.Height, rand.New(rand.NewSource(seed)), nowMs)
}

func TestStreamSpawnInterval(t *testing.T) {
	ps := newTestStream(1, 0)

	if ps.MaybeSpawn(1500, 800) {
		t.Fatal("no spawn when exactly one interval has elapsed")
	}
	if ps.Len() != 0 {
		t.Fatalf("Len() = %d, expected 0", ps.Len())
	}

	if !ps.MaybeSpawn(1501, 800) {
		t.Fatal("spawn expected once the interval is exceeded")
	}
	if ps.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1", ps.Len())
	}
	if got := ps.Pipes()[0].X; got != 800 {
		t.Errorf("new pipe x = %v, expected 800", got)
	}
	if ps.LastSpawnMs() != 1501 {
		t.Errorf("LastSpawnMs() = %d, expected 1501", ps.LastSpawnMs())
	}

	if ps.MaybeSpawn(1600, 800) {
		t.Error("no spawn right after a spawn")
	}
}

func TestStreamNoCatchUpSpawns(t *testing.T) {
	ps := newTestStream(1, 0)

	// Ten intervals pass in one jump: still a single pipe
	if !ps.MaybeSpawn(15_001, 800) {
		t.Fatal("spawn expected")
	}
	if ps.Len() != 1 {
		t.Errorf("Len() = %d, expected exactly one spawn", ps.Len())
	}
	if ps.MaybeSpawn(15_001, 800) {
		t.Error("second call at the same time must not spawn")
	}
}

func TestStreamTick(t *testing.T) {
	ps := newTestStream(1, 0)
	ps.add(Pipe{X: 800, Width: 70})
	ps.add(Pipe{X: 500, Width: 70})

	ps.Tick(3)

	pipes := ps.Pipes()
	if pipes[0].X != 797 || pipes[1].X != 497 {
		t.Errorf("after Tick(3) xs = %v, %v; expected 797, 497", pipes[0].X, pipes[1].X)
	}
}

func TestStreamRetireOffscreen(t *testing.T) {
	ps := newTestStream(1, 0)
	for _, x := range []float64{-100, -70, 10, -71, 500} {
		ps.add(Pipe{X: x, Width: 70})
	}

	removed := ps.RetireOffscreen()
	if removed != 2 {
		t.Errorf("RetireOffscreen() = %d, expected 2", removed)
	}

	var xs []float64
	for _, p := range ps.Pipes() {
		xs = append(xs, p.X)
		if p.IsOffscreen() {
			t.Errorf("offscreen pipe at x=%v survived", p.X)
		}
	}
	if want := []float64{-70, 10, 500}; !reflect.DeepEqual(xs, want) {
		t.Errorf("survivors = %v, expected %v in original order", xs, want)
	}

	if ps.RetireOffscreen() != 0 {
		t.Error("second RetireOffscreen() should remove nothing")
	}
}

func TestStreamRetireAllAndNone(t *testing.T) {
	ps := newTestStream(1, 0)
	if ps.RetireOffscreen() != 0 {
		t.Error("empty stream should retire nothing")
	}

	ps.add(Pipe{X: -500, Width: 70})
	ps.add(Pipe{X: -400, Width: 70})
	if ps.RetireOffscreen() != 2 || ps.Len() != 0 {
		t.Errorf("all pipes should be retired, %d left", ps.Len())
	}
}

func TestStreamPipesReturnsCopy(t *testing.T) {
	ps := newTestStream(1, 0)
	ps.add(Pipe{X: 100, Width: 70})

	pipes := ps.Pipes()
	pipes[0].X = -1000
	pipes[0].Passed = true

	if got := ps.Pipes()[0]; got.X != 100 || got.Passed {
		t.Errorf("mutating the returned slice changed the stream: %+v", got)
	}
}

func TestStreamReset(t *testing.T) {
	ps := newTestStream(1, 0)
	ps.MaybeSpawn(2000, 800)
	ps.MaybeSpawn(4000, 800)

	ps.Reset(5000)
	if ps.Len() != 0 {
		t.Errorf("Reset should clear pipes, Len() = %d", ps.Len())
	}
	if ps.LastSpawnMs() != 5000 {
		t.Errorf("Reset should restart the timer, LastSpawnMs() = %d", ps.LastSpawnMs())
	}
	if ps.MaybeSpawn(6000, 800) {
		t.Error("spawn timer should count from the reset")
	}
}

func TestStreamDeterministicGaps(t *testing.T) {
	a := newTestStream(42, 0)
	b := newTestStream(42, 0)

	for now := int64(1501); now < 30_000; now += 1501 {
		a.MaybeSpawn(now, 800)
		b.MaybeSpawn(now, 800)
	}

	if a.Len() == 0 {
		t.Fatal("expected some pipes")
	}
	if !reflect.DeepEqual(a.Pipes(), b.Pipes()) {
		t.Error("same seed should produce identical pipes")
	}
	for _, p := range a.Pipes() {
		if p.GapHeight() != 200 {
			t.Errorf("gap = %v, expected constant 200", p.GapHeight())
		}
	}
}
