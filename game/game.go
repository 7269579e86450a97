// Package game composes the flurry: it owns the simulation systems, steps them in
// order each frame and connects them to telemetry and the front ends.
package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/flurry/camera"
	"github.com/pthm-cable/flurry/components"
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/renderer"
	"github.com/pthm-cable/flurry/systems"
	"github.com/pthm-cable/flurry/telemetry"
	"github.com/pthm-cable/flurry/ui"
)

// Options configures a Game.
type Options struct {
	Seed           int64   // RNG seed (0 = config seed)
	Streams        int     // initial stream count (0 = config)
	LogStats       bool    // log window stats via slog
	StatsWindowSec float64 // stats window in simulated seconds (0 = config)
	OutputDir      string  // directory for CSV logs and config snapshot (empty = off)
	Headless       bool    // no window; graphics resources are never created
	HeadlessDT     float64 // frame time for UpdateHeadless (0 = 1/target_fps)

	// Config overrides the global config when non-nil.
	Config *config.Config

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.FrameStats)
}

// Game holds the complete simulation state.
type Game struct {
	cfg *config.Config
	ctx *systems.Context

	star   *systems.Star
	sparks []*systems.Spark
	smoke  *systems.Smoke

	// State
	simTime    float64
	frame      int
	paused     bool
	headlessDT float64

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	statsCallback func(telemetry.FrameStats)
	lastStats     telemetry.FrameStats

	// Scratch buffers reused across frames
	snapshot []components.ParticleView
	speeds   []float64
	ages     []float64

	// Presentation
	toggles       *ui.ToggleRegistry
	camera        *camera.Camera
	smokeRenderer *renderer.SmokeRenderer
	bodyRenderer  *renderer.BodyRenderer
	hud           *ui.HUD
	controls      *ui.ControlsPanel
	perfPanel     *ui.PerfPanel
	showPerf      bool

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. Unless opts.Headless is set, a raylib window
// must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Flurry.Seed
	}

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:           cfg,
		ctx:           systems.NewContext(seed),
		collector:     telemetry.NewCollector(statsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		statsCallback: opts.StatsCallback,
		toggles:       ui.NewToggleRegistry(cfg.Render, cfg.Camera),
		headlessDT:    opts.HeadlessDT,
		screenWidth:   cfg.Derived.ScreenW32,
		screenHeight:  cfg.Derived.ScreenH32,
	}
	if g.headlessDT <= 0 {
		g.headlessDT = 1 / float64(max(1, cfg.Screen.TargetFPS))
	}

	// Bodies draw from the context before the smoke engine, so a seed fixes the
	// whole scene.
	pal := systems.PaletteFor(cfg)
	g.star = systems.NewStar(g.ctx, cfg.Star, pal)
	g.sparks = systems.NewSparks(g.ctx, cfg.Flurry.Sparks, cfg.Spark, pal)

	streams := cfg.Flurry.Streams
	if opts.Streams > 0 {
		streams = opts.Streams
	}
	g.smoke = systems.NewSmoke(g.ctx, g.star, systems.Attractors(g.sparks), streams, cfg.Smoke)

	g.camera = camera.New(cfg.Camera, float64(g.screenWidth), float64(g.screenHeight))
	g.camera.SetOrtho(g.toggles.IsEnabled(ui.ToggleOrtho))

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			slog.Error("failed to create output manager", "error", err)
		} else {
			g.outputManager = om
			if err := om.WriteConfig(cfg); err != nil {
				slog.Error("failed to write config", "error", err)
			}
		}
	}

	if !opts.Headless {
		g.initGraphics()
	}

	g.logStartup()
	return g
}

// simulate advances the scene by dt. The star and sparks move before the smoke engine
// reads them.
func (g *Game) simulate(dt float64) {
	g.perfCollector.StartPhase(telemetry.PhaseMotion)

	valid := dt > 0 && !math.IsInf(dt, 0)
	if valid {
		g.simTime += dt
	}
	t := g.simTime

	g.star.Update(dt, t)
	for _, s := range g.sparks {
		s.Update(dt, t)
	}

	g.perfCollector.StartPhase(telemetry.PhaseSpawnIntegrate)
	if valid {
		g.smoke.SetDrag(systems.DragFor(dt, g.cfg.Smoke))
	}
	g.smoke.Update(dt, t)
	g.frame++

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
}

// Step runs one frame of dt seconds without rendering. A paused game does not
// advance.
func (g *Game) Step(dt float64) {
	g.runFrame(dt, nil)
}

// runFrame runs one timed frame, optionally followed by render.
func (g *Game) runFrame(dt float64, render func()) {
	g.perfCollector.StartFrame()
	if !g.paused {
		g.simulate(dt)
	}
	if render != nil {
		g.perfCollector.StartPhase(telemetry.PhaseRender)
		render()
	}
	g.perfCollector.EndFrame()
}

// UpdateHeadless runs one frame at the fixed headless frame time.
func (g *Game) UpdateHeadless() {
	g.Step(g.headlessDT)
}

// Snapshot returns the live particles as of the last frame. The slice is reused
// by the next call.
func (g *Game) Snapshot() []components.ParticleView {
	g.snapshot = g.smoke.Snapshot(g.snapshot[:0])
	return g.snapshot
}

// VisibleBodies returns the bodies the display toggles currently show.
func (g *Game) VisibleBodies() []components.Body {
	var out []components.Body
	if g.toggles.IsEnabled(ui.ToggleStar) {
		out = append(out, g.star)
	}
	if g.toggles.IsEnabled(ui.ToggleSparks) {
		out = append(out, systems.Bodies(g.sparks)...)
	}
	return out
}

// SetStreams sets the active stream count, clamped to [1, config.MaxStreams].
func (g *Game) SetStreams(n int) {
	g.smoke.SetNumStreams(max(1, n))
}

// Streams returns the active stream count.
func (g *Game) Streams() int { return g.smoke.NumStreams() }

// SetPaused pauses or resumes the simulation.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Toggles returns the display toggles.
func (g *Game) Toggles() *ui.ToggleRegistry { return g.toggles }

// Frame returns the number of frames simulated.
func (g *Game) Frame() int { return g.frame }

// SimTime returns the simulated time in seconds.
func (g *Game) SimTime() float64 { return g.simTime }

// Star returns the emitter.
func (g *Game) Star() *systems.Star { return g.star }

// Sparks returns the attractors.
func (g *Game) Sparks() []*systems.Spark { return g.sparks }

// Smoke returns the particle engine.
func (g *Game) Smoke() *systems.Smoke { return g.smoke }

// LastStats returns the most recently flushed stats window.
func (g *Game) LastStats() telemetry.FrameStats { return g.lastStats }

// Unload releases all resources.
func (g *Game) Unload() {
	g.logShutdown()
	if g.smokeRenderer != nil {
		g.smokeRenderer.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
