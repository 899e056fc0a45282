package main

import (
	"math"

	"github.com/pthm-cable/evotales/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable plant parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Growth
			{Name: "max_growth_timer", Path: "plant.max_growth_timer", Min: 2.0, Max: 30.0, Default: 10.0},
			// Seed drop cadence and reach
			{Name: "reproduction_delay", Path: "plant.reproduction_delay", Min: 1.0, Max: 20.0, Default: 5.0},
			{Name: "seed_min_distance", Path: "plant.seed_min_distance", Min: 0.0, Max: 60.0, Default: 30.0},
			{Name: "seed_range", Path: "plant.seed_range", Min: 40.0, Max: 200.0, Default: 80.0},
			// Adaptive backoff
			{Name: "backoff_factor", Path: "plant.reproduction.factor", Min: 1.0, Max: 3.0, Default: 1.2},
			{Name: "max_fails", Path: "plant.reproduction.max_fails", Min: 1, Max: 10, Default: 3},
			{Name: "max_successes", Path: "plant.reproduction.max_successes", Min: 1, Max: 10, Default: 3},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order. seed_range never drops below seed_min_distance.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	p := &cfg.Plant

	p.MaxGrowthTimer = c[0]
	p.ReproductionDelay = c[1]
	p.SeedMinDistance = c[2]
	p.SeedRange = max(c[3], c[2])
	p.Reproduction.Factor = c[4]
	p.Reproduction.MaxFails = int(math.Round(c[5]))
	p.Reproduction.MaxSuccesses = int(math.Round(c[6]))
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	p := cfg.Plant
	return []float64{
		p.MaxGrowthTimer,
		p.ReproductionDelay,
		p.SeedMinDistance,
		p.SeedRange,
		p.Reproduction.Factor,
		float64(p.Reproduction.MaxFails),
		float64(p.Reproduction.MaxSuccesses),
	}
}
