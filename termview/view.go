package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2.0

// Gains applied to each kind of light when splatted onto the canvas.
const (
	smokeGain = 0.35
	bodyGain  = 4.0
)

// View draws projected particles and bodies onto a tcell screen.
type View struct {
	screen tcell.Screen
	cam    *camera.Camera
	canvas *Canvas
}

// NewView creates a view filling screen.
func NewView(screen tcell.Screen, cfg config.CameraConfig) *View {
	w, h := screen.Size()
	v := &View{
		screen: screen,
		cam:    camera.New(cfg, float64(w), float64(h)*cellAspect),
		canvas: NewCanvas(w, h),
	}
	return v
}

// Camera returns the view's camera.
func (v *View) Camera() *camera.Camera {
	return v.cam
}

// Resize adopts the screen's current size.
func (v *View) Resize() {
	w, h := v.screen.Size()
	v.cam.Resize(float64(w), float64(h)*cellAspect)
	v.canvas.Resize(w, h)
}

// project maps a world point to a character cell.
func (v *View) project(p components.ParticleView) (x, y int, ok bool) {
	sx, sy, _, ok := v.cam.Project(p.Position)
	if !ok {
		return 0, 0, false
	}
	return int(sx), int(sy / cellAspect), true
}

// Render rasterises particles and bodies onto the canvas without touching the
// screen.
func (v *View) Render(particles []components.ParticleView, bodies []components.Body) {
	v.canvas.Clear()
	for i := range particles {
		if x, y, ok := v.project(particles[i]); ok {
			v.canvas.Splat(x, y, particles[i].Color, smokeGain)
		}
	}
	for _, b := range bodies {
		if x, y, ok := v.project(components.ParticleView{Position: b.Position()}); ok {
			v.canvas.Splat(x, y, b.Color(), bodyGain)
		}
	}
}

// Draw renders a frame and shows it with status on the bottom line.
func (v *View) Draw(particles []components.ParticleView, bodies []components.Body, status string) {
	v.Render(particles, bodies)

	v.screen.Clear()
	for y := range v.canvas.H {
		for x := range v.canvas.W {
			r, style := v.canvas.Glyph(x, y)
			if r != ' ' {
				v.screen.SetContent(x, y, r, nil, style)
			}
		}
	}

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i, r := range []rune(status) {
		if i >= v.canvas.W {
			break
		}
		v.screen.SetContent(i, v.canvas.H-1, r, nil, statusStyle)
	}
	v.screen.Show()
}

// Canvas exposes the last rendered canvas.
func (v *View) Canvas() *Canvas {
	return v.canvas
}
