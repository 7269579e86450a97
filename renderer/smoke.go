package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/texture"
)

// SmokeRenderer draws live smoke particles as additive textured billboards, each
// showing the atlas cell of its animation frame.
type SmokeRenderer struct {
	atlas rl.Texture2D
	size  float32
}

// NewSmokeRenderer uploads the atlas. Requires an open window.
func NewSmokeRenderer(atlas *texture.Atlas, size float64) *SmokeRenderer {
	img := rl.GenImageColor(texture.Size, texture.Size, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	rl.UpdateTexture(tex, atlas.RGBA())
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	return &SmokeRenderer{atlas: tex, size: float32(size)}
}

// Atlas returns the uploaded atlas texture.
func (r *SmokeRenderer) Atlas() rl.Texture2D {
	return r.atlas
}

// Draw renders particles. Must be called between BeginMode3D and EndMode3D.
func (r *SmokeRenderer) Draw(cam rl.Camera3D, particles []components.ParticleView, trails bool) {
	rl.BeginBlendMode(rl.BlendAdditive)
	defer rl.EndBlendMode()

	size := rl.Vector2{X: r.size, Y: r.size}
	for i := range particles {
		p := &particles[i]
		tint := rlColor(p.Color)
		pos := vec3(p.Position)

		col, row := p.AtlasCell()
		src := rl.Rectangle{
			X:      float32(col * texture.CellSize),
			Y:      float32(row * texture.CellSize),
			Width:  texture.CellSize,
			Height: texture.CellSize,
		}
		rl.DrawBillboardRec(cam, r.atlas, src, pos, size, tint)

		if trails {
			rl.DrawLine3D(vec3(p.PrevPosition), pos, tint)
		}
	}
}

// Unload releases the atlas texture.
func (r *SmokeRenderer) Unload() {
	rl.UnloadTexture(r.atlas)
}
