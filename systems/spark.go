package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/motion"
)

// Spark is an attractor. Each smoke stream is launched toward one spark and every
// spark pulls on every particle.
type Spark struct {
	orbit   motion.Orbit
	palette motion.Palette
	mystery float64

	position r3.Vec
	prev     r3.Vec
	velocity r3.Vec
	color    components.Color
	updated  bool
}

// SparkMysteries spreads n mystery values evenly across the mystery range,
// excluding both ends.
func SparkMysteries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = motion.BigMystery * float64(i+1) / float64(n+1)
	}
	return out
}

// NewSpark creates a spark with the given mystery.
func NewSpark(ctx *Context, mystery float64, cfg config.SparkConfig, pal motion.Palette) *Spark {
	return &Spark{
		orbit: motion.Orbit{
			AngularSpeed: motion.AngularSpeed(cfg.FieldSpeed, 1),
			Radius:       cfg.Radius,
			Bias:         cfg.Bias,
			Depth:        cfg.Depth,
			Chain:        motion.ChainMatrix,
		},
		palette:  pal,
		mystery:  mystery,
		position: ctx.UniformVec(cfg.SpawnMin, cfg.SpawnMax),
	}
}

// NewSparks creates n sparks with evenly spaced mysteries.
func NewSparks(ctx *Context, n int, cfg config.SparkConfig, pal motion.Palette) []*Spark {
	sparks := make([]*Spark, n)
	for i, m := range SparkMysteries(n) {
		sparks[i] = NewSpark(ctx, m, cfg, pal)
	}
	return sparks
}

// Update moves the spark to its orbit position at time t and derives its velocity.
func (s *Spark) Update(dt, t float64) {
	s.prev = s.position
	s.position = motion.Position(t, s.mystery, s.orbit)
	s.color = motion.Color(t, s.mystery, s.orbit, s.palette)

	if s.updated && dt > 0 {
		s.velocity = r3.Scale(1/dt, r3.Sub(s.position, s.prev))
	} else {
		s.velocity = r3.Vec{}
	}
	s.updated = true
}

func (s *Spark) Position() r3.Vec        { return s.position }
func (s *Spark) Color() components.Color { return s.color }
func (s *Spark) Mystery() float64        { return s.mystery }

// Velocity returns the finite-difference velocity from the last two updates.
func (s *Spark) Velocity() r3.Vec { return s.velocity }

// Bodies returns the sparks as a Body slice.
func Bodies(sparks []*Spark) []components.Body {
	out := make([]components.Body, len(sparks))
	for i, s := range sparks {
		out[i] = s
	}
	return out
}
