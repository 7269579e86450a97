package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
)

// Attractor is the read-only view the smoke engine takes of a body.
type Attractor interface {
	Position() r3.Vec
	Color() components.Color
}

// Attractors returns the sparks as an Attractor slice.
func Attractors(sparks []*Spark) []Attractor {
	out := make([]Attractor, len(sparks))
	for i, s := range sparks {
		out[i] = s
	}
	return out
}

// SmokeCounters are cumulative engine event counts.
type SmokeCounters struct {
	SpawnEvents int // spawn steps run
	Spawned     int // particles written
	Retired     int // particles killed by the speed cutoff
	Overwritten int // live particles lost to pool wraparound
}

// DragFor returns the per-frame velocity multiplier for a frame of dt seconds.
func DragFor(dt float64, cfg config.SmokeConfig) float64 {
	return math.Pow(cfg.DragBase, dt*cfg.DragRate)
}

// Smoke is the particle engine. Each frame it launches new particles from the star
// toward the sparks and integrates existing particles under the sparks' gravity.
type Smoke struct {
	ctx    *Context
	cfg    config.SmokeConfig
	star   Attractor
	sparks []Attractor

	pool  *Pool
	clock *SpawnClock

	numStreams   int
	drag         float64
	deathSpeedSq float64

	prevStar r3.Vec
	frame    int
	counters SmokeCounters
}

// NewSmoke creates a smoke engine. The star and sparks are read, never written.
func NewSmoke(ctx *Context, star Attractor, sparks []Attractor, streams int, cfg config.SmokeConfig) *Smoke {
	s := &Smoke{
		ctx:          ctx,
		cfg:          cfg,
		star:         star,
		sparks:       sparks,
		pool:         NewPool(),
		clock:        NewSpawnClock(1 / cfg.SpawnRate),
		drag:         DragFor(0, cfg),
		deathSpeedSq: cfg.DeathSpeed * cfg.DeathSpeed,
		prevStar:     ctx.UniformVec(-cfg.StartRange, cfg.StartRange),
	}
	s.SetNumStreams(streams)
	return s
}

// SetNumStreams sets the active stream count, clamped to [0, config.MaxStreams].
func (s *Smoke) SetNumStreams(n int) {
	s.numStreams = max(0, min(n, config.MaxStreams))
}

// NumStreams returns the active stream count.
func (s *Smoke) NumStreams() int { return s.numStreams }

// SetDrag sets the velocity multiplier applied on the next update.
func (s *Smoke) SetDrag(d float64) { s.drag = d }

// Drag returns the current velocity multiplier.
func (s *Smoke) Drag() float64 { return s.drag }

// Counters returns cumulative event counts.
func (s *Smoke) Counters() SmokeCounters { return s.counters }

// Frame returns the number of updates run.
func (s *Smoke) Frame() int { return s.frame }

// Pool exposes the particle pool for inspection.
func (s *Smoke) Pool() *Pool { return s.pool }

// streams returns the number of streams that have a spark to aim at.
func (s *Smoke) streams() int {
	return min(s.numStreams, len(s.sparks))
}

// Update advances the engine to time t. The star and sparks must already have been
// updated for this frame.
func (s *Smoke) Update(dt, t float64) {
	s.frame++

	star := s.star.Position()
	if !s.clock.Started() {
		// The first frame only anchors the clock at the frame's start; its events
		// are paid on the next frame, once the star has a previous position.
		s.clock.Start(frameStart(dt, t))
	} else if n := s.clock.Due(t); n > 0 {
		base := r3.Scale(s.cfg.TrailGain, r3.Sub(s.prevStar, star))
		for range n {
			s.spawn(t, star, base)
		}
	}
	s.prevStar = star

	// Integration with a degenerate frame time would poison the pool.
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	s.integrate(dt, t)
}

func frameStart(dt, t float64) float64 {
	if dt > 0 && dt <= t {
		return t - dt
	}
	return t
}

// spawn writes one particle per active stream at the star's position.
func (s *Smoke) spawn(t float64, star, base r3.Vec) {
	s.counters.SpawnEvents++

	for i := range s.streams() {
		spark := s.sparks[i]
		p, wasAlive := s.pool.Next()
		if wasAlive {
			s.counters.Overwritten++
		}

		delta := base
		d := r3.Sub(star, spark.Position())
		if r2 := r3.Norm2(d); r2 > 0 {
			coherence := max(0, 1+s.ctx.Bell(0.25*s.cfg.Incohesion))
			delta = r3.Sub(delta, r3.Scale(s.cfg.StreamSpeed*coherence/math.Sqrt(r2), d))
		}

		c := spark.Color()
		p.Position = star
		p.PrevPosition = star
		p.Delta = delta
		p.Color = components.Color{
			R: c.R * (1 + s.ctx.Bell(s.cfg.ColorIncoherence)),
			G: c.G * (1 + s.ctx.Bell(s.cfg.ColorIncoherence)),
			B: c.B * (1 + s.ctx.Bell(s.cfg.ColorIncoherence)),
			A: s.cfg.BaseAlpha * (1 + s.ctx.Bell(s.cfg.ColorIncoherence)),
		}
		p.BirthTime = t
		p.LiveTime = 0
		p.Alive = true
		p.AnimFrame = s.ctx.Intn(components.AnimFrames)

		s.counters.Spawned++
	}
}

// integrate applies gravity, drag and motion to every live particle.
func (s *Smoke) integrate(dt, t float64) {
	// Gravity was tuned per frame at TargetFrameRate; scale it to this frame's length.
	modifier := s.cfg.TargetFrameRate * dt
	streams := s.streams()

	for i := range s.pool.Len() {
		p := s.pool.At(i)
		if !p.Alive {
			continue
		}

		delta := p.Delta
		for j := range streams {
			d := r3.Sub(p.Position, s.sparks[j].Position())
			r2 := r3.Norm2(d)
			if r2 == 0 {
				continue
			}
			f := s.cfg.Gravity / r2 * modifier
			delta = r3.Sub(delta, r3.Scale(f/math.Sqrt(r2), d))
		}

		delta = r3.Scale(s.drag, delta)
		if r3.Norm2(delta) >= s.deathSpeedSq {
			p.Alive = false
			s.counters.Retired++
			continue
		}

		p.Delta = delta
		p.PrevPosition = p.Position
		p.Position = r3.Add(p.Position, r3.Scale(dt, delta))
		p.AnimFrame = (p.AnimFrame + 1) % components.AnimFrames
		p.LiveTime = t - p.BirthTime
	}
}

// LiveCount returns the number of live particles.
func (s *Smoke) LiveCount() int {
	return s.pool.LiveCount()
}

// ForEachLive calls fn for every live particle in pool order.
func (s *Smoke) ForEachLive(fn func(components.ParticleView)) {
	for i := range s.pool.Len() {
		p := s.pool.At(i)
		if p.Alive {
			fn(p.View())
		}
	}
}

// Snapshot appends a view of every live particle to dst and returns it.
func (s *Smoke) Snapshot(dst []components.ParticleView) []components.ParticleView {
	for i := range s.pool.Len() {
		p := s.pool.At(i)
		if p.Alive {
			dst = append(dst, p.View())
		}
	}
	return dst
}

// Ages appends the live time of every live particle to dst and returns it.
func (s *Smoke) Ages(dst []float64) []float64 {
	for i := range s.pool.Len() {
		p := s.pool.At(i)
		if p.Alive {
			dst = append(dst, p.LiveTime)
		}
	}
	return dst
}

// Speeds appends the speed of every live particle to dst and returns it.
func (s *Smoke) Speeds(dst []float64) []float64 {
	for i := range s.pool.Len() {
		p := s.pool.At(i)
		if p.Alive {
			dst = append(dst, r3.Norm(p.Delta))
		}
	}
	return dst
}
