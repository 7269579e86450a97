package components

import "gonum.org/v1/gonum/spatial/r3"

// AnimFrames is the number of cells in the smoke texture atlas.
const AnimFrames = 64

// Particle is one smoke particle slot in the pool.
// Position, PrevPosition and Delta are only meaningful while Alive.
type Particle struct {
	Position     r3.Vec
	PrevPosition r3.Vec
	Delta        r3.Vec // velocity, world units per second
	Color        Color
	Alive        bool
	BirthTime    float64
	LiveTime     float64
	AnimFrame    int
}

// View returns the render-facing projection of the particle.
func (p *Particle) View() ParticleView {
	return ParticleView{
		Position:     p.Position,
		PrevPosition: p.PrevPosition,
		Color:        p.Color,
		AnimFrame:    p.AnimFrame,
	}
}

// ParticleView is the read-only state a renderer needs for one live particle.
type ParticleView struct {
	Position     r3.Vec
	PrevPosition r3.Vec
	Color        Color
	AnimFrame    int
}

// AtlasCell returns the column and row of the particle's frame in an 8x8 atlas.
func (v ParticleView) AtlasCell() (col, row int) {
	return v.AnimFrame & 7, v.AnimFrame >> 3
}
