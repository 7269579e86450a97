package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Frame       int
	SimTime     float64
	Live        int
	Capacity    int
	Streams     int
	Overwritten int
	FPS         int32
	Paused      bool
	Ortho       bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("Flurry", 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Particles: %d/%d | Streams: %d | Overwritten: %d", data.Live, data.Capacity, data.Streams, data.Overwritten),
		10, 35, 16, rl.LightGray,
	)

	projection := "perspective"
	if data.Ortho {
		projection = "ortho"
	}
	rl.DrawText(
		fmt.Sprintf("Frame: %d | Time: %.1fs | FPS: %d | %s", data.Frame, data.SimTime, data.FPS, projection),
		10, 55, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 75, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the frame timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), x: x, y: y}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	r := p.renderer
	y := p.y

	y = r.DrawSectionHeader(p.x, y, "Frame Timing")
	y = r.DrawLabelValue(p.x, y, "avg", fmt.Sprintf("%dus", stats.AvgFrame.Microseconds()))
	for _, phase := range telemetry.Phases {
		pct, ok := stats.PhasePct[phase]
		if !ok {
			continue
		}
		color := rl.LightGray
		if pct > 50 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-16s %5.1f%%", phase, pct), p.x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}
