package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/components"
)

// spikeDirs are the unit directions a body's glow spikes point along.
var spikeDirs = []r3.Vec{
	{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	r3.Unit(r3.Vec{X: 1, Y: 1, Z: 1}), r3.Unit(r3.Vec{X: -1, Y: -1, Z: 1}),
	r3.Unit(r3.Vec{X: 1, Y: -1, Z: -1}), r3.Unit(r3.Vec{X: -1, Y: 1, Z: -1}),
}

// BodyRenderer draws the star and sparks as a soft glow with radiating spikes.
type BodyRenderer struct {
	atlas rl.Texture2D
}

// NewBodyRenderer creates a body renderer drawing with the smoke atlas.
func NewBodyRenderer(atlas rl.Texture2D) *BodyRenderer {
	return &BodyRenderer{atlas: atlas}
}

// Draw renders one body with glow size and spike length in world units.
// Must be called between BeginMode3D and EndMode3D.
func (r *BodyRenderer) Draw(cam rl.Camera3D, b components.Body, size, spike float64) {
	rl.BeginBlendMode(rl.BlendAdditive)
	defer rl.EndBlendMode()

	pos := b.Position()
	tint := rlColor(b.Color())

	src := rl.Rectangle{Width: 32, Height: 32}
	rl.DrawBillboardRec(cam, r.atlas, src, vec3(pos), rl.Vector2{X: float32(size), Y: float32(size)}, tint)

	for _, d := range spikeDirs {
		rl.DrawLine3D(vec3(pos), vec3(r3.Add(pos, r3.Scale(spike, d))), tint)
	}
}
