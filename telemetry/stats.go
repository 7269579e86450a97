package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// FrameStats holds aggregated smoke statistics for one window of simulated time.
type FrameStats struct {
	WindowStart float64 `csv:"-"`
	Frame       int     `csv:"frame"`
	SimTime     float64 `csv:"sim_time"`

	// Population at window end
	Live    int `csv:"live"`
	Streams int `csv:"streams"`

	// Events during window
	SpawnEvents int `csv:"spawn_events"`
	Spawned     int `csv:"spawned"`
	Retired     int `csv:"retired"`
	Overwritten int `csv:"overwritten"` // live particles lost to pool wraparound

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Live time distribution (sampled at window end)
	AgeMean float64 `csv:"age_mean"`
	AgeMax  float64 `csv:"age_max"`
}

// Distribution summarises a sample.
type Distribution struct {
	Mean, Std     float64
	P50, P90, Max float64
}

// Summarize computes mean, standard deviation, median, 90th percentile and maximum
// of values. An empty sample yields the zero Distribution. values is not modified.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var d Distribution
	if len(sorted) > 1 {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	} else {
		d.Mean = sorted[0]
	}
	d.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	d.Max = sorted[len(sorted)-1]
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("frame", s.Frame),
		slog.Float64("sim_time", s.SimTime),
		slog.Int("live", s.Live),
		slog.Int("streams", s.Streams),
		slog.Int("spawn_events", s.SpawnEvents),
		slog.Int("spawned", s.Spawned),
		slog.Int("retired", s.Retired),
		slog.Int("overwritten", s.Overwritten),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("age_mean", s.AgeMean),
		slog.Float64("age_max", s.AgeMax),
	)
}

// LogStats logs the window stats using slog.
func (s FrameStats) LogStats() {
	slog.Info("stats",
		"frame", s.Frame,
		"sim_time", s.SimTime,
		"live", s.Live,
		"streams", s.Streams,
		"spawn_events", s.SpawnEvents,
		"spawned", s.Spawned,
		"retired", s.Retired,
		"overwritten", s.Overwritten,
		"speed_mean", s.SpeedMean,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"age_mean", s.AgeMean,
		"age_max", s.AgeMax,
	)
}
