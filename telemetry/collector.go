package telemetry

import "github.com/pthm-cable/flurry/systems"

// Collector turns the smoke engine's cumulative counters into per-window FrameStats.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	windowStart float64
	started     bool

	// Counters at the start of the current window
	base systems.SmokeCounters
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDurationSec: windowDurationSec}
}

// ShouldFlush reports whether the window containing simTime has closed. The first
// call opens the first window.
func (c *Collector) ShouldFlush(simTime float64) bool {
	if !c.started {
		c.windowStart = simTime
		c.started = true
		return false
	}
	return c.windowDurationSec > 0 && simTime-c.windowStart >= c.windowDurationSec
}

// Sample is the engine state observed at the end of a window.
type Sample struct {
	Frame    int
	SimTime  float64
	Live     int
	Streams  int
	Counters systems.SmokeCounters
	Speeds   []float64
	Ages     []float64
}

// Flush produces a FrameStats for the window ending at s and opens the next one.
func (c *Collector) Flush(s Sample) FrameStats {
	speed := Summarize(s.Speeds)
	age := Summarize(s.Ages)

	stats := FrameStats{
		WindowStart: c.windowStart,
		Frame:       s.Frame,
		SimTime:     s.SimTime,

		Live:    s.Live,
		Streams: s.Streams,

		SpawnEvents: s.Counters.SpawnEvents - c.base.SpawnEvents,
		Spawned:     s.Counters.Spawned - c.base.Spawned,
		Retired:     s.Counters.Retired - c.base.Retired,
		Overwritten: s.Counters.Overwritten - c.base.Overwritten,

		SpeedMean: speed.Mean,
		SpeedStd:  speed.Std,
		SpeedP50:  speed.P50,
		SpeedP90:  speed.P90,

		AgeMean: age.Mean,
		AgeMax:  age.Max,
	}

	// Reset for next window
	c.windowStart = s.SimTime
	c.started = true
	c.base = s.Counters

	return stats
}

// WindowDuration returns the window length in simulated seconds.
func (c *Collector) WindowDuration() float64 {
	return c.windowDurationSec
}
