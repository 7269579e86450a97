package systems

import "math"

// SpawnClock paces spawn events at a fixed interval of simulated time,
// independent of the frame rate.
type SpawnClock struct {
	interval float64
	last     float64
	started  bool
}

// NewSpawnClock creates a clock firing every interval seconds.
func NewSpawnClock(interval float64) *SpawnClock {
	return &SpawnClock{interval: interval}
}

// Start anchors the clock at t0. Events are owed from t0 onward.
func (c *SpawnClock) Start(t0 float64) {
	c.last = t0
	c.started = true
}

// Started reports whether the clock has been anchored.
func (c *SpawnClock) Started() bool {
	return c.started
}

// Due returns how many spawn events are owed at time t and consumes them.
// An unanchored clock anchors at t and owes nothing. The anchor advances by a
// whole number of intervals, so a slow frame catches up rather than dropping events.
func (c *SpawnClock) Due(t float64) int {
	if !c.started {
		c.Start(t)
		return 0
	}
	if c.interval <= 0 || math.IsInf(t, 0) {
		return 0
	}

	owed := t - c.last
	if !(owed >= c.interval) {
		return 0
	}

	n := math.Floor(owed / c.interval)
	next := c.last + n*c.interval
	if next == c.last || next > t {
		// Rounding at large magnitudes; the anchor never passes t.
		next = t
	}
	c.last = next
	return int(min(n, maxDue))
}

// maxDue bounds the event count a single call can report.
const maxDue = math.MaxInt32

// Last returns the time of the most recent spawn event.
func (c *SpawnClock) Last() float64 {
	return c.last
}

// Interval returns the spawn interval.
func (c *SpawnClock) Interval() float64 {
	return c.interval
}
