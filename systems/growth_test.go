package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

// spriteSet is a fixed set of available sprite names.
type spriteSet map[string]bool

func (s spriteSet) Has(name string) bool { return s[name] }

var allStages = spriteSet{"s1": true, "s2": true, "s3": true, "s4": true}

func growthConfig() config.PlantConfig {
	return config.PlantConfig{
		MaxGrowthLevel: 4,
		MaxGrowthTimer: 10,
		Stages:         []string{"s1", "s2", "s3", "s4"},
	}
}

func TestAdvanceGrowthOneStagePerExpiry(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	g := components.Growth{Level: 1, Timer: 10, Stage: "s1"}

	if !AdvanceGrowth(&g, 12, cfg, allStages, rng) {
		t.Fatal("expected a stage-up after the timer lapsed")
	}
	if g.Level != 2 {
		t.Errorf("expected level 2 after one large step, got %d", g.Level)
	}
	if g.Stage != "s2" {
		t.Errorf("expected stage s2, got %q", g.Stage)
	}
	// Overflow discarded: fresh timer within jitter range
	if g.Timer < 8 || g.Timer >= 12 {
		t.Errorf("expected fresh timer in [8,12), got %f", g.Timer)
	}
}

func TestAdvanceGrowthWaitsForTimer(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	g := components.Growth{Level: 1, Timer: 10, Stage: "s1"}

	if AdvanceGrowth(&g, 4, cfg, allStages, rng) {
		t.Error("did not expect a stage-up before the timer lapsed")
	}
	if g.Level != 1 || g.Timer != 6 {
		t.Errorf("expected level 1 with 6s left, got level %d with %f", g.Level, g.Timer)
	}
}

func TestAdvanceGrowthMonotonicAndCapped(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(3))
	g := NewGrowth(cfg, 1, allStages, rng)

	prev := g.Level
	for i := 0; i < 1000; i++ {
		dt := rng.Float64() * 30
		before := g.Level
		AdvanceGrowth(&g, dt, cfg, allStages, rng)
		if g.Level < prev {
			t.Fatalf("level decreased from %d to %d", prev, g.Level)
		}
		if g.Level-before > 1 {
			t.Fatalf("level jumped from %d to %d in one call", before, g.Level)
		}
		if g.Level > cfg.MaxGrowthLevel {
			t.Fatalf("level %d exceeds max %d", g.Level, cfg.MaxGrowthLevel)
		}
		prev = g.Level
	}
	if !g.FullGrown(cfg.MaxGrowthLevel) {
		t.Errorf("expected full growth after many steps, got level %d", g.Level)
	}
}

func TestAdvanceGrowthFullGrownIsTerminal(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	g := components.Growth{Level: 4, Timer: 5, Stage: "s4"}

	if AdvanceGrowth(&g, 100, cfg, allStages, rng) {
		t.Error("full grown plant should not advance")
	}
	if g.Level != 4 || g.Timer != 5 {
		t.Errorf("expected untouched state, got level %d timer %f", g.Level, g.Timer)
	}
}

func TestSetGrowthLevelClamps(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"below range", -3, 1},
		{"zero", 0, 1},
		{"in range", 3, 3},
		{"above range", 99, 4},
	}

	cfg := growthConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			g := components.Growth{Level: 2, Timer: 1, Stage: "s2"}
			SetGrowthLevel(&g, tt.requested, cfg, allStages, rng)
			if g.Level != tt.want {
				t.Errorf("SetGrowthLevel(%d) gave level %d, want %d", tt.requested, g.Level, tt.want)
			}
		})
	}
}

func TestSetGrowthLevelNoOpKeepsTimer(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	g := components.Growth{Level: 2, Timer: 3.5, Stage: "s2"}

	if SetGrowthLevel(&g, 2, cfg, allStages, rng) {
		t.Error("expected no-op for identical level and stage")
	}
	if g.Timer != 3.5 {
		t.Errorf("expected timer untouched, got %f", g.Timer)
	}
}

func TestSetGrowthLevelRefreshesStaleStage(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	g := components.Growth{Level: 2, Timer: 3.5, Stage: "s1"}

	if !SetGrowthLevel(&g, 2, cfg, allStages, rng) {
		t.Error("expected stage refresh when the shown stage differs")
	}
	if g.Stage != "s2" {
		t.Errorf("expected stage s2, got %q", g.Stage)
	}
}

func TestMissingSpriteStillAdvancesLevel(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(1))
	partial := spriteSet{"s1": true, "s2": true}
	g := components.Growth{Level: 2, Timer: 0.1, Stage: "s2"}

	AdvanceGrowth(&g, 1, cfg, partial, rng)

	if g.Level != 3 {
		t.Errorf("expected level 3 despite missing sprite, got %d", g.Level)
	}
	if g.Stage != "s2" {
		t.Errorf("expected previous stage kept, got %q", g.Stage)
	}
	if g.Timer < 8 || g.Timer >= 12 {
		t.Errorf("expected timer reset, got %f", g.Timer)
	}
}

func TestNewGrowth(t *testing.T) {
	cfg := growthConfig()
	rng := rand.New(rand.NewSource(5))

	for level := 1; level <= 4; level++ {
		g := NewGrowth(cfg, level, allStages, rng)
		if g.Level != level {
			t.Errorf("expected level %d, got %d", level, g.Level)
		}
		if g.Stage != StageName(cfg, level) {
			t.Errorf("expected stage %q, got %q", StageName(cfg, level), g.Stage)
		}
		if g.Timer < 8 || g.Timer >= 12 {
			t.Errorf("expected jittered timer, got %f", g.Timer)
		}
	}
}
