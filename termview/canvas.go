// Package termview renders the flurry in a terminal with tcell.
//
// Particles are projected through the shared camera onto a character grid. Each cell
// accumulates the colors of the particles falling in it, mirroring the additive
// blending of the graphical renderer, and shows a glyph chosen by brightness.
package termview

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/flurry/components"
)

// ramp lists glyphs from dimmest to brightest.
const ramp = " .:-=+*#%@"

// cell is the accumulated light in one character cell.
type cell struct {
	r, g, b float64
}

// Canvas is an additive color grid the size of the terminal.
type Canvas struct {
	W, H  int
	cells []cell
}

// NewCanvas creates a cleared canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize changes the canvas size and clears it.
func (c *Canvas) Resize(w, h int) {
	c.W, c.H = max(0, w), max(0, h)
	c.cells = make([]cell, c.W*c.H)
}

// Clear zeroes every cell.
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Splat adds color premultiplied by its alpha and gain to the cell at (x, y).
// Points outside the canvas are ignored.
func (c *Canvas) Splat(x, y int, col components.Color, gain float64) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	a := col.A * gain
	if math.IsNaN(a) || a <= 0 {
		return
	}
	p := &c.cells[y*c.W+x]
	p.r += col.R * a
	p.g += col.G * a
	p.b += col.B * a
}

// Light returns the accumulated color at (x, y).
func (c *Canvas) Light(x, y int) components.Color {
	p := c.cells[y*c.W+x]
	return components.Color{R: p.r, G: p.g, B: p.b, A: 1}
}

// Glyph returns the rune and style for cell (x, y). Brightness saturates, so the
// color keeps its hue while the glyph density carries the intensity.
func (c *Canvas) Glyph(x, y int) (rune, tcell.Style) {
	light := c.Light(x, y)
	lum := light.Luminance()
	if lum <= 0 {
		return ' ', tcell.StyleDefault
	}

	// 1 - e^-x maps unbounded accumulation onto [0, 1).
	level := 1 - math.Exp(-lum)
	idx := min(len(ramp)-1, 1+int(level*float64(len(ramp)-1)))

	peak := max(light.R, light.G, light.B)
	if peak <= 0 {
		return ' ', tcell.StyleDefault
	}
	rgba := light.Scale(level / peak).RGBA8()
	fg := tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
	return rune(ramp[idx]), tcell.StyleDefault.Foreground(fg)
}
