// Package components defines the data shared between the simulation systems and
// the front ends: bodies, particles and colors.
package components

import "gonum.org/v1/gonum/spatial/r3"

// Body is a procedurally moved scene object (the star or a spark).
// Update must run before Position or Color are read in a frame.
type Body interface {
	Update(dt, t float64)
	Position() r3.Vec
	Color() Color
}
