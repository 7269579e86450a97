// Package motion computes the procedural orbits of flurry bodies.
//
// Every function here is pure: the result depends only on the elapsed time, the body's
// mystery value and the orbit parameters.
package motion

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
)

const (
	// BigMystery is the exclusive upper bound of the mystery range.
	BigMystery = 1800.0

	// MaxAngles is the angular resolution the field speeds are expressed in.
	MaxAngles = 16384.0
)

// Chain selects the order the two orbit rotations are applied in.
type Chain int

const (
	// ChainTumble rotates about Z, turns x toward z, rotates about X, offsets by
	// Depth and finishes with the second Z rotation. The star moves this way.
	ChainTumble Chain = iota

	// ChainMatrix applies the composed matrix Z0·Y0·X0·Z1 to the point: the second
	// Z rotation first, then X, Y and Z. Sparks move this way.
	ChainMatrix
)

// Orbit parameterises one family of bodies.
type Orbit struct {
	AngularSpeed float64 // base angle advance, radians per second
	Radius       float64 // orbital radius in world units
	Bias         float64 // added to the pulse factor
	Depth        float64 // z offset applied between the two rotations
	Chain        Chain
}

// AngularSpeed converts a field speed in MaxAngles units per second, scaled by a
// per-body multiplier, into radians per second.
func AngularSpeed(fieldSpeed, scale float64) float64 {
	return 2 * math.Pi * fieldSpeed / MaxAngles * scale
}

// Pulse returns the radius modulation factor for base angle theta.
func Pulse(theta, bias float64) float64 {
	return (math.Cos(7*theta)+math.Cos(3*theta)+math.Cos(13*theta))/6 + bias
}

// Phase returns the angular offset of a body with the given mystery.
func Phase(mystery float64) float64 {
	return 2 * math.Pi * mystery / BigMystery
}

// Position returns the body position at time t.
func Position(t, mystery float64, o Orbit) r3.Vec {
	theta := t * o.AngularSpeed
	cf := Pulse(theta, o.Bias)
	phi := Phase(mystery)

	p := r3.Vec{
		X: o.Radius * cf * math.Cos(11*(phi+3*theta)),
		Y: o.Radius * cf * math.Sin(12*(phi+4*theta)),
		Z: o.Radius * math.Cos(23*(phi+12*theta)),
	}

	// The first rotation tumbles the base curve through all three axes so that
	// bodies with different mysteries do not share an orbital plane.
	s0, c0 := math.Sincos(theta*0.501 + 5.01*mystery/BigMystery)
	s1, c1 := math.Sincos(theta*2.501 + 85.01*mystery/BigMystery)

	if o.Chain == ChainMatrix {
		p = rotateZ(p, s1, c1)
		p.Z += o.Depth
		p = rotateX(p, s0, c0)
		p = rotateZX(p, -s0, c0)
		return rotateZ(p, s0, c0)
	}

	p = rotateZ(p, s0, c0)
	p = rotateZX(p, s0, c0)
	p = rotateX(p, s0, c0)
	p.Z += o.Depth
	return rotateZ(p, s1, c1)
}

// Trajectory samples Position at each of the given times.
func Trajectory(times []float64, mystery float64, o Orbit) []r3.Vec {
	out := make([]r3.Vec, len(times))
	for i, t := range times {
		out[i] = Position(t, mystery, o)
	}
	return out
}

// Palette controls the color cycle shared by all bodies.
type Palette struct {
	CycleTime float64 // seconds for one full hue rotation
	Base      float64 // amplitude of the shared rainbow term
	Detail    float64 // amplitude of the per-body term
}

// DefaultPalette is the rainbow cycle.
var DefaultPalette = Palette{CycleTime: 20, Base: 0.109375, Detail: 0.0625}

// Color returns the body color at time t. The three base channels are cosine waves
// a third of a cycle apart; each adds a mystery-keyed term that varies with the
// orbit angle.
func Color(t, mystery float64, o Orbit, pal Palette) components.Color {
	theta := t * o.AngularSpeed
	phi := Phase(mystery)

	rot := 2 * math.Pi / pal.CycleTime
	baseR := pal.Base * (math.Cos(t*rot) + 1)
	baseG := pal.Base * (math.Cos((t+pal.CycleTime/3)*rot) + 1)
	baseB := pal.Base * (math.Cos((t+2*pal.CycleTime/3)*rot) + 1)

	return components.Color{
		R: baseR + pal.Detail*(0.5+math.Cos(15*(phi+3*theta))+math.Sin(7*(phi+theta))),
		G: baseG + pal.Detail*(0.5+math.Sin(phi+theta)),
		B: baseB + pal.Detail*(0.5+math.Cos(37*(phi+theta))),
		A: 1,
	}
}

func rotateZ(p r3.Vec, s, c float64) r3.Vec {
	return r3.Vec{X: p.X*c - p.Y*s, Y: p.Y*c + p.X*s, Z: p.Z}
}

// rotateZX turns the x axis toward z.
func rotateZX(p r3.Vec, s, c float64) r3.Vec {
	return r3.Vec{X: p.X*c - p.Z*s, Y: p.Y, Z: p.Z*c + p.X*s}
}

func rotateX(p r3.Vec, s, c float64) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y*c - p.Z*s, Z: p.Z*c + p.Y*s}
}
