package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/evotales/config"
)

func TestParamDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	got := pv.ExtractFromConfig(config.Defaults())
	for i, spec := range pv.Specs {
		if got[i] != spec.Default {
			t.Errorf("%s: config default %v, param default %v", spec.Path, got[i], spec.Default)
		}
		if spec.Default < spec.Min || spec.Default > spec.Max {
			t.Errorf("%s: default %v outside [%v, %v]", spec.Name, spec.Default, spec.Min, spec.Max)
		}
	}
}

func TestApplyToConfigClampsAndRounds(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Defaults()

	// seed_min_distance above seed_range, max_fails fractional, factor below 1
	pv.ApplyToConfig(cfg, []float64{10, 5, 55, 40, 0.5, 2.6, 100})

	p := cfg.Plant
	if p.SeedRange < p.SeedMinDistance {
		t.Errorf("seed_range %v below seed_min_distance %v", p.SeedRange, p.SeedMinDistance)
	}
	if p.Reproduction.Factor != 1 {
		t.Errorf("expected factor clamped to 1, got %v", p.Reproduction.Factor)
	}
	if p.Reproduction.MaxFails != 3 {
		t.Errorf("expected max_fails rounded to 3, got %d", p.Reproduction.MaxFails)
	}
	if p.Reproduction.MaxSuccesses != 10 {
		t.Errorf("expected max_successes clamped to 10, got %d", p.Reproduction.MaxSuccesses)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("applied config should validate: %v", err)
	}
}

func TestNormalizeInverse(t *testing.T) {
	pv := NewParamVector()
	raw := pv.DefaultVector()
	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-9 {
			t.Errorf("%s: %v -> %v", pv.Specs[i].Name, raw[i], back[i])
		}
	}
}
