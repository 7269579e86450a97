// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// MaxStreams is the upper bound on concurrent smoke streams.
const MaxStreams = 12

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Flurry    FlurryConfig    `yaml:"flurry"`
	Star      StarConfig      `yaml:"star"`
	Spark     SparkConfig     `yaml:"spark"`
	Smoke     SmokeConfig     `yaml:"smoke"`
	Render    RenderConfig    `yaml:"render"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// FlurryConfig holds the composition of the scene.
type FlurryConfig struct {
	Streams    int     `yaml:"streams"`     // active smoke streams, 1..12, adjustable at runtime
	Sparks     int     `yaml:"sparks"`      // spark count, fixed at construction
	Seed       int64   `yaml:"seed"`        // RNG seed (0 = time-based)
	ColorCycle float64 `yaml:"color_cycle"` // seconds per rainbow cycle
}

// StarConfig holds the emitter's orbit parameters.
type StarConfig struct {
	FieldSpeed  float64 `yaml:"field_speed"`   // angular speed in 1/16384 turns per second
	Radius      float64 `yaml:"radius"`        // orbital radius
	Bias        float64 `yaml:"bias"`          // pulse bias
	Depth       float64 `yaml:"depth"`         // z offset between the two rotations
	MinRotSpeed float64 `yaml:"min_rot_speed"` // rotation-speed scalar range
	MaxRotSpeed float64 `yaml:"max_rot_speed"`
	MaxMystery  float64 `yaml:"max_mystery"` // mystery drawn from [0, max_mystery)
	SpawnRange  float64 `yaml:"spawn_range"` // initial position in [-range, range]^3
}

// SparkConfig holds the attractors' orbit parameters.
type SparkConfig struct {
	FieldSpeed float64 `yaml:"field_speed"`
	Radius     float64 `yaml:"radius"`
	Bias       float64 `yaml:"bias"`
	Depth      float64 `yaml:"depth"`
	SpawnMin   float64 `yaml:"spawn_min"` // initial position range
	SpawnMax   float64 `yaml:"spawn_max"`
}

// SmokeConfig holds the particle engine tuning constants.
type SmokeConfig struct {
	SpawnRate        float64 `yaml:"spawn_rate"`        // spawn events per second
	StreamSpeed      float64 `yaml:"stream_speed"`      // launch speed toward the stream's spark
	Incohesion       float64 `yaml:"incohesion"`        // launch speed jitter
	ColorIncoherence float64 `yaml:"color_incoherence"` // per-channel color jitter
	BaseAlpha        float64 `yaml:"base_alpha"`        // alpha before jitter
	TrailGain        float64 `yaml:"trail_gain"`        // star displacement to launch velocity
	Gravity          float64 `yaml:"gravity"`           // attraction strength of each spark
	TargetFrameRate  float64 `yaml:"target_frame_rate"` // frame rate the gravity constant was tuned at
	DeathSpeed       float64 `yaml:"death_speed"`       // particles at or above this speed die
	DragBase         float64 `yaml:"drag_base"`         // drag = drag_base ^ (dt * drag_rate)
	DragRate         float64 `yaml:"drag_rate"`
	StartRange       float64 `yaml:"start_range"` // initial previous-star position range
}

// RenderConfig holds presentation toggles and sizes.
type RenderConfig struct {
	DisplayStar   bool    `yaml:"display_star"`
	DisplaySparks bool    `yaml:"display_sparks"`
	Trails        bool    `yaml:"trails"`
	ParticleSize  float64 `yaml:"particle_size"` // billboard edge length in world units
	ShowHUD       bool    `yaml:"show_hud"`
	ShowControls  bool    `yaml:"show_controls"`
	TextureSeed   int64   `yaml:"texture_seed"`
}

// CameraConfig holds the view parameters.
type CameraConfig struct {
	EyeZ        float64 `yaml:"eye_z"`
	Fovy        float64 `yaml:"fovy"` // vertical field of view in degrees
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Ortho       bool    `yaml:"ortho"`
	OrthoHeight float64 `yaml:"ortho_height"` // half-height of the orthographic view volume
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // simulated seconds per stats record
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	SpawnInterval float64 // 1 / Smoke.SpawnRate
	DeathSpeedSq  float64 // Smoke.DeathSpeed squared
	ScreenW32     float32 // Screen.Width as float32
	ScreenH32     float32 // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() (*Config, error) {
	return Load("")
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.Flurry.Streams < 1 || c.Flurry.Streams > MaxStreams:
		return fmt.Errorf("%w: flurry.streams %d outside [1, %d]", ErrInvalid, c.Flurry.Streams, MaxStreams)
	case c.Flurry.Sparks < 0:
		return fmt.Errorf("%w: flurry.sparks %d is negative", ErrInvalid, c.Flurry.Sparks)
	case c.Flurry.ColorCycle <= 0:
		return fmt.Errorf("%w: flurry.color_cycle must be positive", ErrInvalid)
	case c.Smoke.SpawnRate <= 0:
		return fmt.Errorf("%w: smoke.spawn_rate must be positive", ErrInvalid)
	case c.Smoke.DeathSpeed <= 0:
		return fmt.Errorf("%w: smoke.death_speed must be positive", ErrInvalid)
	case c.Smoke.DragBase <= 0 || c.Smoke.DragBase > 1:
		return fmt.Errorf("%w: smoke.drag_base %v outside (0, 1]", ErrInvalid, c.Smoke.DragBase)
	case c.Star.MinRotSpeed > c.Star.MaxRotSpeed:
		return fmt.Errorf("%w: star.min_rot_speed exceeds star.max_rot_speed", ErrInvalid)
	case c.Spark.SpawnMin > c.Spark.SpawnMax:
		return fmt.Errorf("%w: spark.spawn_min exceeds spark.spawn_max", ErrInvalid)
	case c.Telemetry.StatsWindow < 0 || math.IsNaN(c.Telemetry.StatsWindow):
		return fmt.Errorf("%w: telemetry.stats_window must be non-negative", ErrInvalid)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.SpawnInterval = 1 / c.Smoke.SpawnRate
	c.Derived.DeathSpeedSq = c.Smoke.DeathSpeed * c.Smoke.DeathSpeed
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
