package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

func reproConfig() config.PlantConfig {
	return config.PlantConfig{
		ReproductionDelay: 5,
		SeedMinDistance:   30,
		SeedRange:         80,
		Reproduction: config.ReproductionConfig{
			Factor:       1.2,
			MaxFails:     3,
			MaxSuccesses: 3,
		},
	}
}

func TestRecordOutcomeBackoff(t *testing.T) {
	cfg := reproConfig().Reproduction
	r := components.NewReproduction(5)

	RecordOutcome(&r, false, cfg)
	RecordOutcome(&r, false, cfg)
	if r.Factor != 1 || r.Fails != 2 {
		t.Fatalf("expected factor 1 with 2 fails, got %f / %d", r.Factor, r.Fails)
	}

	RecordOutcome(&r, false, cfg)
	if math.Abs(r.Factor-1.2) > 1e-9 {
		t.Errorf("expected factor 1.2 after 3 fails, got %f", r.Factor)
	}
	if r.Fails != 0 {
		t.Errorf("expected fail streak reset, got %d", r.Fails)
	}

	for i := 0; i < 3; i++ {
		RecordOutcome(&r, false, cfg)
	}
	if math.Abs(r.Factor-1.44) > 1e-9 {
		t.Errorf("expected factor 1.44 after 6 fails, got %f", r.Factor)
	}
}

func TestRecordOutcomeRecovery(t *testing.T) {
	cfg := reproConfig().Reproduction
	r := components.Reproduction{Factor: 3.5}

	RecordOutcome(&r, true, cfg)
	RecordOutcome(&r, true, cfg)
	if r.Factor != 3.5 {
		t.Fatalf("factor should hold until the streak completes, got %f", r.Factor)
	}
	RecordOutcome(&r, true, cfg)
	if r.Factor != 1 || r.Successes != 0 {
		t.Errorf("expected reset to factor 1 and 0 successes, got %f / %d", r.Factor, r.Successes)
	}
}

func TestRecordOutcomeStreaksReset(t *testing.T) {
	cfg := reproConfig().Reproduction
	r := components.NewReproduction(5)

	RecordOutcome(&r, false, cfg)
	RecordOutcome(&r, false, cfg)
	RecordOutcome(&r, true, cfg)
	if r.Fails != 0 || r.Successes != 1 {
		t.Errorf("success should reset fails, got fails %d successes %d", r.Fails, r.Successes)
	}
	RecordOutcome(&r, false, cfg)
	if r.Successes != 0 || r.Fails != 1 {
		t.Errorf("failure should reset successes, got fails %d successes %d", r.Fails, r.Successes)
	}
	if r.Factor != 1 {
		t.Errorf("interrupted streaks should not change factor, got %f", r.Factor)
	}
}

func TestRecordOutcomeCap(t *testing.T) {
	cfg := reproConfig().Reproduction
	cfg.Factor = 2
	cfg.MaxFactor = 5
	r := components.NewReproduction(5)

	for i := 0; i < 30; i++ {
		RecordOutcome(&r, false, cfg)
	}
	if r.Factor != 5 {
		t.Errorf("expected factor capped at 5, got %f", r.Factor)
	}
}

func TestAdvanceReproduction(t *testing.T) {
	cfg := reproConfig()
	rng := rand.New(rand.NewSource(11))
	r := components.NewReproduction(5)

	calls := 0
	drop := func() bool { calls++; return false }

	if out := AdvanceReproduction(&r, 2, cfg, rng, drop); out != ReproductionIdle {
		t.Errorf("expected idle before timer lapses, got %v", out)
	}
	if calls != 0 {
		t.Fatalf("drop called early")
	}

	if out := AdvanceReproduction(&r, 10, cfg, rng, drop); out != ReproductionFailed {
		t.Errorf("expected failed outcome, got %v", out)
	}
	if calls != 1 {
		t.Errorf("expected exactly one drop attempt, got %d", calls)
	}
	if r.Timer < 4 || r.Timer >= 6 {
		t.Errorf("expected timer reset to 5 * [0.8,1.2), got %f", r.Timer)
	}
}

func TestAdvanceReproductionDelayScalesWithFactor(t *testing.T) {
	cfg := reproConfig()
	rng := rand.New(rand.NewSource(11))
	r := components.Reproduction{Timer: 0, Factor: 1, Fails: 2}

	AdvanceReproduction(&r, 0.1, cfg, rng, func() bool { return false })

	// Third failure bumped factor to 1.2 before the reset
	lo, hi := 5*1.2*0.8, 5*1.2*1.2
	if r.Timer < lo || r.Timer >= hi {
		t.Errorf("expected timer in [%f,%f), got %f", lo, hi, r.Timer)
	}
}

func TestSeedOffsetRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		dx, dy := SeedOffset(rng, 30, 80)
		d := math.Hypot(dx, dy)
		if d < 30-1e-9 || d > 80+1e-9 {
			t.Fatalf("seed distance %f outside [30,80]", d)
		}
	}
}

func TestJitterRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 500; i++ {
		v := Jitter(rng, 10)
		if v < 8 || v >= 12 {
			t.Fatalf("jitter %f outside [8,12)", v)
		}
	}
}
