// Package systems contains the per-frame simulation systems: the star, the sparks and
// the smoke engine.
package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Context owns the state shared by every system in one simulation, currently the
// random source. All randomness flows through it so a seed reproduces a run.
type Context struct {
	Seed int64
	rng  *rand.Rand
}

// NewContext creates a context with a seeded random source.
func NewContext(seed int64) *Context {
	return &Context{Seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max).
func (c *Context) Uniform(min, max float64) float64 {
	return c.rng.Float64()*(max-min) + min
}

// UniformVec returns a vector with each component in [min, max).
func (c *Context) UniformVec(min, max float64) r3.Vec {
	return r3.Vec{X: c.Uniform(min, max), Y: c.Uniform(min, max), Z: c.Uniform(min, max)}
}

// Bell returns bell-shaped noise in [-scale, scale] centred on zero, built from the
// sum of three uniforms.
func (c *Context) Bell(scale float64) float64 {
	return (1 - (c.rng.Float64()+c.rng.Float64()+c.rng.Float64())/1.5) * scale
}

// Intn returns a value in [0, n).
func (c *Context) Intn(n int) int {
	return c.rng.Intn(n)
}
