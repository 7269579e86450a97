// Package texture generates the smoke puff atlas.
//
// The atlas is a 256x256 luminance image split into 8x8 cells. Each cell holds a
// 32x32 puff; consecutive puffs blend into one another so that stepping a particle
// through the cells animates a slowly churning blob. The last cell is averaged with
// the first so the animation loops.
package texture

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// Size is the atlas edge length in pixels.
	Size = 256
	// CellSize is the edge length of one puff.
	CellSize = 32
	// Cells is the number of cells along each atlas edge.
	Cells = Size / CellSize
)

// Atlas is a generated puff atlas.
type Atlas struct {
	Seed int64
	Pix  [Size * Size]uint8
}

// At returns the luminance at pixel (x, y).
func (a *Atlas) At(x, y int) uint8 {
	return a.Pix[y*Size+x]
}

// CellOrigin returns the top-left pixel of cell (col, row).
func CellOrigin(col, row int) (x, y int) {
	return col * CellSize, row * CellSize
}

// RGBA expands the atlas into white pixels whose alpha is the luminance, the layout
// raylib expects for UpdateTexture on an R8G8B8A8 texture.
func (a *Atlas) RGBA() []color.RGBA {
	out := make([]color.RGBA, len(a.Pix))
	for i, v := range a.Pix {
		out[i] = color.RGBA{R: v, G: v, B: v, A: v}
	}
	return out
}

// puff is the 32x32 working buffer a cell is built in.
type puff [CellSize * CellSize]uint8

// Generate builds an atlas. The same seed always yields the same atlas.
func Generate(seed int64) *Atlas {
	g := generator{rng: rand.New(rand.NewSource(seed))}
	a := &Atlas{Seed: seed}

	for row := range Cells {
		for col := range Cells {
			if row == Cells-1 && col == Cells-1 {
				g.blendWithFirst(a)
			} else {
				g.next()
			}
			g.copyTo(a, col, row)
		}
	}
	return a
}

type generator struct {
	rng     *rand.Rand
	small   puff
	started bool
}

// next evolves the working puff: a fresh radial falloff is mixed one part to two
// with the previous puff, then speckled and smoothed twice.
func (g *generator) next() {
	for i := range CellSize {
		for j := range CellSize {
			di, dj := float64(i)-15.5, float64(j)-15.5
			r := math.Sqrt(di*di + dj*dj)
			var v float64
			if r <= 15 {
				v = 255 * math.Cos(r*math.Pi/31)
			}
			if g.started {
				prev := float64(g.small[i*CellSize+j])
				v = min(255, (v+prev+prev)/3)
			}
			g.small[i*CellSize+j] = uint8(v)
		}
	}
	g.started = true

	g.speckle()
	g.smooth()
	g.smooth()
}

// speckle nudges interior pixels up and then down by doubling steps, each step
// taken with probability one half.
func (g *generator) speckle() {
	for i := 2; i < CellSize-2; i++ {
		for j := 2; j < CellSize-2; j++ {
			idx := i*CellSize + j
			for speck := 1; speck <= 32 && g.rng.Float64() < 0.5; speck += speck {
				g.small[idx] = uint8(min(255, int(g.small[idx])+speck))
			}
			for speck := 1; speck <= 32 && g.rng.Float64() < 0.5; speck += speck {
				g.small[idx] = uint8(max(0, int(g.small[idx])-speck))
			}
		}
	}
}

// smooth applies a weighted cross filter (centre 4, neighbours 1, over 8) to the
// interior. The border row and column are left untouched.
func (g *generator) smooth() {
	var filtered puff
	for i := 1; i < CellSize-1; i++ {
		for j := 1; j < CellSize-1; j++ {
			v := 4 * int(g.small[i*CellSize+j])
			v += int(g.small[(i-1)*CellSize+j])
			v += int(g.small[(i+1)*CellSize+j])
			v += int(g.small[i*CellSize+j-1])
			v += int(g.small[i*CellSize+j+1])
			filtered[i*CellSize+j] = uint8(float64(v) / 8)
		}
	}
	for i := 1; i < CellSize-1; i++ {
		for j := 1; j < CellSize-1; j++ {
			g.small[i*CellSize+j] = filtered[i*CellSize+j]
		}
	}
}

func (g *generator) blendWithFirst(a *Atlas) {
	for i := range CellSize {
		for j := range CellSize {
			v := (float64(g.small[i*CellSize+j]) + float64(a.At(j, i))) / 2
			g.small[i*CellSize+j] = uint8(min(255, v))
		}
	}
}

func (g *generator) copyTo(a *Atlas, col, row int) {
	x0, y0 := CellOrigin(col, row)
	for i := range CellSize {
		copy(a.Pix[(y0+i)*Size+x0:(y0+i)*Size+x0+CellSize], g.small[i*CellSize:(i+1)*CellSize])
	}
}
