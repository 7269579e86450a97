package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/renderer"
	"github.com/pthm-cable/flurry/systems"
	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/texture"
	"github.com/pthm-cable/flurry/ui"
)

const (
	controlsHelp = "[SPACE] Pause  [+/-] Streams  [S] Star  [P] Sparks  [T] Trails  [O] Ortho  [H] HUD  [TAB] Panel  [F3] Perf  [Arrows] Orbit  [Wheel] Zoom  [HOME] Reset"

	bodyGlowScale  = 4  // body glow size in particle sizes
	bodySpikeScale = 10 // body spike length in particle sizes
)

// initGraphics creates the GPU resources and overlays. Requires an open window.
func (g *Game) initGraphics() {
	atlas := texture.Generate(g.cfg.Render.TextureSeed)
	g.smokeRenderer = renderer.NewSmokeRenderer(atlas, g.cfg.Render.ParticleSize)
	g.bodyRenderer = renderer.NewBodyRenderer(g.smokeRenderer.Atlas())
	g.hud = ui.NewHUD()
	g.controls = ui.NewControlsPanel(10, 240, g.cfg.Render.ShowControls)
	g.perfPanel = ui.NewPerfPanel(10, 100)
}

// Update handles input and advances the simulation by the last frame's wall time.
// Draw completes the frame.
func (g *Game) Update() {
	g.handleInput()

	g.perfCollector.StartFrame()
	if !g.paused {
		g.simulate(float64(rl.GetFrameTime()))
	}
}

// Draw renders the scene and overlays and closes the frame opened by Update.
func (g *Game) Draw() {
	g.perfCollector.StartPhase(telemetry.PhaseRender)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.camera.SetOrtho(g.toggles.IsEnabled(ui.ToggleOrtho))
	cam := renderer.Camera3D(g.camera)
	size := g.cfg.Render.ParticleSize

	rl.BeginMode3D(cam)
	for _, b := range g.VisibleBodies() {
		g.bodyRenderer.Draw(cam, b, size*bodyGlowScale, size*bodySpikeScale)
	}
	g.smokeRenderer.Draw(cam, g.Snapshot(), g.toggles.IsEnabled(ui.ToggleTrails))
	rl.EndMode3D()

	g.drawOverlays()

	rl.EndDrawing()

	g.perfCollector.EndFrame()
	g.perfCollector.RecordPresent()
}

// drawOverlays renders the HUD, controls panel and perf panel.
func (g *Game) drawOverlays() {
	if g.toggles.IsEnabled(ui.ToggleHUD) {
		g.hud.Draw(ui.HUDData{
			Frame:       g.frame,
			SimTime:     g.simTime,
			Live:        g.smoke.LiveCount(),
			Capacity:    systems.PoolCapacity,
			Streams:     g.smoke.NumStreams(),
			Overwritten: g.smoke.Counters().Overwritten,
			FPS:         rl.GetFPS(),
			Paused:      g.paused,
			Ortho:       g.camera.Ortho,
		})
		g.hud.DrawControls(int32(g.screenHeight), controlsHelp)
	}

	if streams := g.controls.Draw(int32(g.screenWidth), g.Streams(), g.toggles); streams != g.Streams() {
		g.SetStreams(streams)
	}

	if g.showPerf {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
}
