package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/ui"
)

func newHeadless(t *testing.T, opts Options) *Game {
	t.Helper()
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	opts.Config = cfg
	opts.Headless = true
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	return NewGameWithOptions(opts)
}

func TestHeadlessDeterministic(t *testing.T) {
	a := newHeadless(t, Options{Seed: 99})
	b := newHeadless(t, Options{Seed: 99})

	for range 180 {
		a.UpdateHeadless()
		b.UpdateHeadless()
	}

	pa, pb := a.Snapshot(), b.Snapshot()
	if len(pa) != len(pb) {
		t.Fatalf("live counts differ: %d vs %d", len(pa), len(pb))
	}
	if len(pa) == 0 {
		t.Fatal("expected live particles after 3 seconds")
	}
	for i := range pa {
		if pa[i].Position != pb[i].Position {
			t.Fatalf("particle %d differs: %v vs %v", i, pa[i].Position, pb[i].Position)
		}
	}
}

func TestSeedsDiverge(t *testing.T) {
	a := newHeadless(t, Options{Seed: 1})
	b := newHeadless(t, Options{Seed: 2})
	for range 60 {
		a.UpdateHeadless()
		b.UpdateHeadless()
	}
	if a.Star().Position() == b.Star().Position() {
		t.Error("different seeds produced the same star position")
	}
}

func TestStepTracksTime(t *testing.T) {
	g := newHeadless(t, Options{HeadlessDT: 0.02})
	for range 50 {
		g.UpdateHeadless()
	}
	if g.Frame() != 50 {
		t.Errorf("frame = %d, want 50", g.Frame())
	}
	if math.Abs(g.SimTime()-1.0) > 1e-9 {
		t.Errorf("sim time = %v, want 1.0", g.SimTime())
	}
}

func TestPauseHoldsState(t *testing.T) {
	g := newHeadless(t, Options{})
	for range 30 {
		g.UpdateHeadless()
	}
	frame, simTime, live := g.Frame(), g.SimTime(), g.Smoke().LiveCount()

	g.SetPaused(true)
	for range 30 {
		g.UpdateHeadless()
	}
	if g.Frame() != frame || g.SimTime() != simTime || g.Smoke().LiveCount() != live {
		t.Error("paused game advanced")
	}

	g.SetPaused(false)
	g.UpdateHeadless()
	if g.Frame() != frame+1 {
		t.Errorf("frame = %d after resume, want %d", g.Frame(), frame+1)
	}
}

func TestDegenerateFrameTime(t *testing.T) {
	g := newHeadless(t, Options{})
	for range 30 {
		g.UpdateHeadless()
	}
	simTime := g.SimTime()

	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		g.Step(dt)
	}
	if g.SimTime() != simTime {
		t.Errorf("sim time moved to %v on degenerate frames", g.SimTime())
	}
	for _, p := range g.Snapshot() {
		if math.IsNaN(p.Position.X) || math.IsInf(p.Position.X, 0) {
			t.Fatalf("non-finite particle position %v", p.Position)
		}
	}
}

func TestSetStreams(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{5, 5},
		{0, 1},
		{-3, 1},
		{config.MaxStreams + 4, config.MaxStreams},
	}
	g := newHeadless(t, Options{})
	for _, tt := range tests {
		g.SetStreams(tt.in)
		if got := g.Streams(); got != tt.want {
			t.Errorf("SetStreams(%d) -> %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestStreamsOption(t *testing.T) {
	g := newHeadless(t, Options{Streams: 3})
	if g.Streams() != 3 {
		t.Errorf("streams = %d, want 3", g.Streams())
	}
}

func TestStatsCallback(t *testing.T) {
	var windows []telemetry.FrameStats
	g := newHeadless(t, Options{
		StatsWindowSec: 0.5,
		HeadlessDT:     0.0625,
		StatsCallback:  func(s telemetry.FrameStats) { windows = append(windows, s) },
	})

	for range 35 {
		g.UpdateHeadless()
	}

	if len(windows) != 4 {
		t.Fatalf("got %d stats windows, want 4", len(windows))
	}
	for i := 1; i < len(windows); i++ {
		if windows[i].Frame <= windows[i-1].Frame {
			t.Errorf("window %d frame %d not after %d", i, windows[i].Frame, windows[i-1].Frame)
		}
	}
	last := windows[len(windows)-1]
	if last.Streams != g.Streams() {
		t.Errorf("stats streams = %d, want %d", last.Streams, g.Streams())
	}
	if last.Live <= 0 {
		t.Error("expected live particles in stats")
	}
	if g.LastStats() != last {
		t.Error("LastStats does not match the last callback")
	}
}

func TestVisibleBodies(t *testing.T) {
	g := newHeadless(t, Options{})

	if n := len(g.VisibleBodies()); n != 0 {
		t.Errorf("default visible bodies = %d, want 0", n)
	}

	g.Toggles().SetEnabled(ui.ToggleStar, true)
	if n := len(g.VisibleBodies()); n != 1 {
		t.Errorf("with star = %d, want 1", n)
	}

	g.Toggles().SetEnabled(ui.ToggleSparks, true)
	if n := len(g.VisibleBodies()); n != 1+len(g.Sparks()) {
		t.Errorf("with sparks = %d, want %d", n, 1+len(g.Sparks()))
	}
}
