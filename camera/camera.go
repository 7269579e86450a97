// Package camera provides a 3D look-at camera for viewing the flurry.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/flurry/config"
)

// Camera looks from Eye toward Target. It supports perspective and orthographic
// projection, orbiting around the target and zoom.
type Camera struct {
	Eye    r3.Vec
	Target r3.Vec
	Up     r3.Vec

	// Fovy is the vertical field of view in degrees (perspective only).
	Fovy      float64
	Near, Far float64

	// Ortho selects orthographic projection. OrthoHeight is the half-height of
	// the visible volume in world units.
	Ortho       bool
	OrthoHeight float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints, as multiples of the configured eye distance
	MinZoom, MaxZoom float64

	home        r3.Vec
	homeOrthoH  float64
	homeOrthoOn bool
}

// New creates a camera on the +z axis looking at the origin.
func New(cfg config.CameraConfig, viewportW, viewportH float64) *Camera {
	c := &Camera{
		Eye:         r3.Vec{Z: cfg.EyeZ},
		Up:          r3.Vec{Y: 1},
		Fovy:        cfg.Fovy,
		Near:        cfg.Near,
		Far:         cfg.Far,
		Ortho:       cfg.Ortho,
		OrthoHeight: cfg.OrthoHeight,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		MinZoom:     0.25,
		MaxZoom:     4.0,
	}
	c.home = c.Eye
	c.homeOrthoH = c.OrthoHeight
	c.homeOrthoOn = c.Ortho
	return c
}

// basis returns the camera's right, up and forward unit vectors.
func (c *Camera) basis() (right, up, forward r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Eye))
	right = r3.Unit(r3.Cross(forward, c.Up))
	up = r3.Cross(right, forward)
	return right, up, forward
}

// Project maps a world point to screen coordinates. depth is the distance along the
// view axis; ok is false when the point lies outside the near/far range.
func (c *Camera) Project(p r3.Vec) (sx, sy, depth float64, ok bool) {
	right, up, forward := c.basis()
	rel := r3.Sub(p, c.Eye)

	x := r3.Dot(rel, right)
	y := r3.Dot(rel, up)
	depth = r3.Dot(rel, forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}

	scale := c.PixelScale(depth)
	sx = c.ViewportW/2 + x*scale
	sy = c.ViewportH/2 - y*scale
	return sx, sy, depth, true
}

// PixelScale returns screen pixels per world unit at the given depth.
func (c *Camera) PixelScale(depth float64) float64 {
	half := c.ViewportH / 2
	if c.Ortho {
		return half / c.OrthoHeight
	}
	return half / (depth * math.Tan(c.Fovy*math.Pi/360))
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// SetOrtho switches between orthographic and perspective projection.
func (c *Camera) SetOrtho(on bool) {
	c.Ortho = on
}

// Orbit rotates the eye around the target by yaw (about the up vector) and pitch
// (about the right vector), in radians. Pitch is limited short of the poles.
func (c *Camera) Orbit(yaw, pitch float64) {
	rel := r3.Sub(c.Eye, c.Target)
	dist := r3.Norm(rel)
	if dist == 0 {
		return
	}

	rel = r3.Rotate(rel, yaw, c.Up)

	right, _, _ := c.basis()
	pitched := r3.Rotate(rel, pitch, right)
	if math.Abs(r3.Dot(r3.Unit(pitched), r3.Unit(c.Up))) < 0.99 {
		rel = pitched
	}
	c.Eye = r3.Add(c.Target, rel)
}

// ZoomBy magnifies the view by factor, clamped to [MinZoom, MaxZoom] of the
// configured distance.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	zoom := clamp(c.Zoom()*factor, c.MinZoom, c.MaxZoom)

	rel := r3.Sub(c.Eye, c.Target)
	c.Eye = r3.Add(c.Target, r3.Scale(r3.Norm(r3.Sub(c.home, c.Target))/zoom, r3.Unit(rel)))
	c.OrthoHeight = c.homeOrthoH / zoom
}

// Zoom returns the current magnification relative to the configured view.
func (c *Camera) Zoom() float64 {
	d := r3.Norm(r3.Sub(c.Eye, c.Target))
	if d == 0 {
		return 1
	}
	return r3.Norm(r3.Sub(c.home, c.Target)) / d
}

// Reset returns the camera to the configured position, zoom and projection.
func (c *Camera) Reset() {
	c.Eye = c.home
	c.Target = r3.Vec{}
	c.OrthoHeight = c.homeOrthoH
	c.Ortho = c.homeOrthoOn
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
