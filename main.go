package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	term := flag.Bool("term", false, "Render to the terminal instead of a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	logFile := flag.String("log-file", "", "Write logs to this file (terminal mode discards logs otherwise)")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in simulated seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = config seed, then time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	fps := flag.Int("fps", 0, "Frame rate for headless and terminal runs (0 = use config)")
	streams := flag.Int("streams", 0, "Initial stream count (0 = use config)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	var logOut io.Writer = os.Stdout
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			slog.Error("failed to open log file", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	} else if *term {
		logOut = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logOut, nil)))

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = cfg.Flurry.Seed
	}
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	frameRate := cfg.Screen.TargetFPS
	if *fps > 0 {
		frameRate = *fps
	}

	// Build game options
	opts := game.Options{
		Seed:           rngSeed,
		Streams:        *streams,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless || *term,
		HeadlessDT:     1 / float64(max(1, frameRate)),
	}

	switch {
	case *headless:
		// Headless mode - pure CPU simulation at a fixed frame time
		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		slog.Info("starting headless simulation",
			"seed", rngSeed,
			"fps", frameRate,
			"max_frames", *maxFrames,
		)

		for {
			g.UpdateHeadless()

			if *maxFrames > 0 && g.Frame() >= *maxFrames {
				slog.Info("max frames reached", "frame", g.Frame(), "sim_time", g.SimTime())
				return
			}
		}

	case *term:
		screen, err := tcell.NewScreen()
		if err != nil {
			slog.Error("failed to create terminal screen", "error", err)
			os.Exit(1)
		}
		if err := screen.Init(); err != nil {
			slog.Error("failed to initialise terminal screen", "error", err)
			os.Exit(1)
		}

		g := game.NewGameWithOptions(opts)
		err = g.RunTerminal(screen, frameRate, *maxFrames)
		screen.Fini()
		g.Unload()
		if err != nil {
			slog.Error("terminal run failed", "error", err)
			os.Exit(1)
		}

	default:
		// Graphical mode
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Flurry")
		defer rl.CloseWindow()

		rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

		g := game.NewGameWithOptions(opts)
		defer g.Unload()

		for !rl.WindowShouldClose() {
			g.Update()
			g.Draw()

			if *maxFrames > 0 && g.Frame() >= *maxFrames {
				break
			}
		}
	}
}
