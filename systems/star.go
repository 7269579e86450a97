package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/motion"
)

// Star is the emitter. It wanders on a small orbit and smoke is born at its position.
type Star struct {
	orbit   motion.Orbit
	palette motion.Palette

	mystery  float64
	rotSpeed float64

	position r3.Vec
	color    components.Color
}

// NewStar creates a star with its rotation speed and mystery drawn from ctx.
func NewStar(ctx *Context, cfg config.StarConfig, pal motion.Palette) *Star {
	rotSpeed := ctx.Uniform(cfg.MinRotSpeed, cfg.MaxRotSpeed)
	mystery := ctx.Uniform(0, cfg.MaxMystery)
	s := NewStarWith(mystery, rotSpeed, cfg, pal)
	s.position = ctx.UniformVec(-cfg.SpawnRange, cfg.SpawnRange)
	return s
}

// NewStarWith creates a star with fixed identity parameters.
func NewStarWith(mystery, rotSpeed float64, cfg config.StarConfig, pal motion.Palette) *Star {
	return &Star{
		orbit: motion.Orbit{
			AngularSpeed: motion.AngularSpeed(cfg.FieldSpeed, rotSpeed),
			Radius:       cfg.Radius,
			Bias:         cfg.Bias,
			Depth:        cfg.Depth,
		},
		palette:  pal,
		mystery:  mystery,
		rotSpeed: rotSpeed,
		color:    components.White,
	}
}

// Update moves the star to its orbit position at time t.
func (s *Star) Update(dt, t float64) {
	s.position = motion.Position(t, s.mystery, s.orbit)
	s.color = motion.Color(t, s.mystery, s.orbit, s.palette)
}

func (s *Star) Position() r3.Vec        { return s.position }
func (s *Star) Color() components.Color { return s.color }
func (s *Star) Mystery() float64        { return s.mystery }
func (s *Star) RotSpeed() float64       { return s.rotSpeed }
