package components

import (
	"image/color"
	"math"
)

// Color is a linear RGBA color with channels nominally in [0, 1].
// Channels may exceed the range after jitter; consumers clamp on output.
type Color struct {
	R, G, B, A float64
}

// White is opaque white.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Scale multiplies the RGB channels by f, leaving alpha unchanged.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// WithAlpha returns c with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Luminance returns the Rec. 709 luma of the RGB channels.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// RGBA8 converts to 8-bit channels, clamping to [0, 255].
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}
}

func channel8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
