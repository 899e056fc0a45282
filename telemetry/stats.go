package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	RunID           string  `csv:"run_id"`
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	WindowSec       float64 `csv:"window_sec"`

	// Population counts at window end
	Plants     int `csv:"plants"`
	Herbivores int `csv:"herbivores"`
	FullGrown  int `csv:"full_grown"`

	// Events during window
	SeedsPlaced int     `csv:"seeds_placed"`
	SeedsFailed int     `csv:"seeds_failed"`
	SuccessRate float64 `csv:"seed_success_rate"`
	StageUps    int     `csv:"stage_ups"`
	Matured     int     `csv:"matured"`

	// Reproduction delay factor across full-grown plants
	FactorMean float64 `csv:"factor_mean"`
	FactorStd  float64 `csv:"factor_std"`
	FactorP50  float64 `csv:"factor_p50"`
	FactorP90  float64 `csv:"factor_p90"`
	FactorMax  float64 `csv:"factor_max"`

	LevelMean float64 `csv:"level_mean"`
}

// Distribution summarizes a sample of values.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeDistribution calculates mean, sample std, empirical quantiles and max.
// Returns the zero Distribution for an empty slice.
func ComputeDistribution(values []float64) Distribution {
	n := len(values)
	if n == 0 {
		return Distribution{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var d Distribution
	if n == 1 {
		d.Mean = sorted[0]
	} else {
		d.Mean, d.Std = stat.MeanStdDev(sorted, nil)
	}
	d.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	d.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	d.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	d.Max = sorted[n-1]
	return d
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Float64("window_sec", s.WindowSec),
		slog.Int("plants", s.Plants),
		slog.Int("herbivores", s.Herbivores),
		slog.Int("full_grown", s.FullGrown),
		slog.Int("seeds_placed", s.SeedsPlaced),
		slog.Int("seeds_failed", s.SeedsFailed),
		slog.Float64("seed_success_rate", s.SuccessRate),
		slog.Int("stage_ups", s.StageUps),
		slog.Int("matured", s.Matured),
		slog.Float64("factor_mean", s.FactorMean),
		slog.Float64("factor_std", s.FactorStd),
		slog.Float64("factor_p50", s.FactorP50),
		slog.Float64("factor_p90", s.FactorP90),
		slog.Float64("factor_max", s.FactorMax),
		slog.Float64("level_mean", s.LevelMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
