package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/ui"
)

const (
	orbitSpeed = 1.5 // radians per second with an arrow key held
	zoomStep   = 1.1 // magnification per wheel notch
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	// Window resize propagation
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.showPerf = !g.showPerf
	}

	// Stream count with + and -
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.SetStreams(g.Streams() + 1)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.SetStreams(g.Streams() - 1)
	}

	// Display toggles
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if id, on, ok := g.toggles.HandleKeyPress(key); ok && id == ui.ToggleOrtho {
			g.camera.SetOrtho(on)
		}
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.camera.Resize(float64(w), float64(h))
}

// handleCameraInput orbits with the arrow keys and zooms with the mouse wheel.
func (g *Game) handleCameraInput() {
	dt := float64(rl.GetFrameTime())

	var yaw, pitch float64
	if rl.IsKeyDown(rl.KeyLeft) {
		yaw -= orbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyRight) {
		yaw += orbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyUp) {
		pitch -= orbitSpeed * dt
	}
	if rl.IsKeyDown(rl.KeyDown) {
		pitch += orbitSpeed * dt
	}
	if yaw != 0 || pitch != 0 {
		g.camera.Orbit(yaw, pitch)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if wheel > 0 {
			g.camera.ZoomBy(zoomStep)
		} else {
			g.camera.ZoomBy(1 / zoomStep)
		}
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
		g.toggles.SetEnabled(ui.ToggleOrtho, g.camera.Ortho)
	}
}
