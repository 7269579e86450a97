package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/components"
)

// Camera3D builds the raylib camera matching cam. In orthographic mode raylib reads
// Fovy as the full height of the view volume.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	c := rl.Camera3D{
		Position:   vec3(cam.Eye),
		Target:     vec3(cam.Target),
		Up:         vec3(cam.Up),
		Fovy:       float32(cam.Fovy),
		Projection: rl.CameraPerspective,
	}
	if cam.Ortho {
		c.Fovy = float32(2 * cam.OrthoHeight)
		c.Projection = rl.CameraOrthographic
	}
	return c
}

func vec3(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func rlColor(c components.Color) rl.Color {
	rgba := c.RGBA8()
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
