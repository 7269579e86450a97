package telemetry

import (
	"testing"

	"github.com/pthm-cable/flurry/systems"
)

func TestCollectorWindows(t *testing.T) {
	c := NewCollector(5)

	if c.ShouldFlush(1) {
		t.Fatal("first call should only open the window")
	}
	if c.ShouldFlush(5.9) {
		t.Error("window flushed early")
	}
	if !c.ShouldFlush(6) {
		t.Fatal("window should close after 5s")
	}

	first := c.Flush(Sample{
		Frame:    300,
		SimTime:  6,
		Live:     40,
		Streams:  8,
		Counters: systems.SmokeCounters{SpawnEvents: 600, Spawned: 4800, Retired: 10, Overwritten: 2},
		Speeds:   []float64{1, 2, 3},
		Ages:     []float64{0.5, 1.5},
	})
	if first.WindowStart != 1 || first.SpawnEvents != 600 || first.Spawned != 4800 {
		t.Errorf("first window = %+v", first)
	}
	if first.SpeedP50 != 2 || first.AgeMax != 1.5 {
		t.Errorf("distributions = speed p50 %v, age max %v", first.SpeedP50, first.AgeMax)
	}

	if c.ShouldFlush(10.9) {
		t.Error("second window flushed early")
	}
	second := c.Flush(Sample{
		Frame:    600,
		SimTime:  11,
		Counters: systems.SmokeCounters{SpawnEvents: 1205, Spawned: 9640, Retired: 25, Overwritten: 2},
	})

	// Counters are reported per window, not cumulatively.
	if second.SpawnEvents != 605 || second.Spawned != 4840 || second.Retired != 15 || second.Overwritten != 0 {
		t.Errorf("second window counters = %+v", second)
	}
	if second.WindowStart != 6 {
		t.Errorf("second window start = %v, want 6", second.WindowStart)
	}
	if second.SpeedMean != 0 || second.AgeMean != 0 {
		t.Error("empty samples should give zero distributions")
	}
}

func TestCollectorDisabledWindow(t *testing.T) {
	c := NewCollector(0)
	c.ShouldFlush(0)
	if c.ShouldFlush(1e6) {
		t.Error("zero window should never flush")
	}
}
