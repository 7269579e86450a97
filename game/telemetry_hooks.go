package game

import (
	"log/slog"

	"github.com/pthm-cable/flurry/systems"
	"github.com/pthm-cable/flurry/telemetry"
)

// flushTelemetry emits a stats window when the current one has closed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.simTime) {
		return
	}

	g.speeds = g.smoke.Speeds(g.speeds[:0])
	g.ages = g.smoke.Ages(g.ages[:0])

	stats := g.collector.Flush(telemetry.Sample{
		Frame:    g.frame,
		SimTime:  g.simTime,
		Live:     g.smoke.LiveCount(),
		Streams:  g.smoke.NumStreams(),
		Counters: g.smoke.Counters(),
		Speeds:   g.speeds,
		Ages:     g.ages,
	})
	g.lastStats = stats
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.Frame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// logStartup records the scene composition.
func (g *Game) logStartup() {
	slog.Info("flurry created",
		"seed", g.ctx.Seed,
		"streams", g.smoke.NumStreams(),
		"sparks", len(g.sparks),
		"pool", systems.PoolCapacity,
		"spawn_interval", g.cfg.Derived.SpawnInterval,
		"star_mystery", g.star.Mystery(),
		"star_rot_speed", g.star.RotSpeed(),
	)
}

// logShutdown records cumulative engine counters.
func (g *Game) logShutdown() {
	c := g.smoke.Counters()
	slog.Info("flurry finished",
		"frames", g.frame,
		"sim_time", g.simTime,
		"spawn_events", c.SpawnEvents,
		"spawned", c.Spawned,
		"retired", c.Retired,
		"overwritten", c.Overwritten,
	)
}
