package telemetry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/world"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(10)

	for range 39 {
		c.Advance(0.25)
	}
	if c.ShouldFlush() {
		t.Error("should not flush before the window ends")
	}
	c.Advance(0.25)
	if !c.ShouldFlush() {
		t.Error("should flush at the window end")
	}
}

func TestCollectorWindowUsesSimulatedTime(t *testing.T) {
	tests := []struct {
		name string
		dts  []float64
	}{
		{"fixed headless step", []float64{1.0 / 60}},
		{"variable frame steps", []float64{0.1, 0.016, 0.033, 0.05}},
		{"long frames", []float64{0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCollector(2)
			ticks := int64(0)
			for !c.ShouldFlush() {
				c.Advance(tt.dts[ticks%int64(len(tt.dts))])
				ticks++
				if ticks > 10000 {
					t.Fatal("window never closed")
				}
			}
			stats := c.Flush(ticks, PopulationSample{})
			if stats.WindowSec < 2-1e-6 || stats.WindowSec > 2.1+1e-6 {
				t.Errorf("expected window of about 2s, got %f after %d ticks", stats.WindowSec, ticks)
			}
			if math.Abs(stats.SimTimeSec-stats.WindowSec) > 1e-9 {
				t.Errorf("first window sim time %f should equal its length %f", stats.SimTimeSec, stats.WindowSec)
			}
		})
	}
}

func TestCollectorIgnoresNonPositiveDT(t *testing.T) {
	c := NewCollector(1)
	c.Advance(-5)
	c.Advance(0)
	if c.SimTime() != 0 || c.ShouldFlush() {
		t.Errorf("expected no time recorded, got %f", c.SimTime())
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(1)
	for range 4 {
		c.Advance(0.25)
	}

	c.RecordSeed()
	c.RecordSeed()
	c.RecordSeed()
	c.RecordSeedFailed()
	c.RecordStageUp(2, 4)
	c.RecordStageUp(4, 4)

	pop := PopulationSample{
		Plants:    3,
		FullGrown: 2,
		Factors:   []float64{1, 1.44},
		Levels:    []float64{4, 4, 1},
	}
	stats := c.Flush(10, pop)

	if stats.SeedsPlaced != 3 || stats.SeedsFailed != 1 {
		t.Errorf("expected 3 placed / 1 failed, got %d / %d", stats.SeedsPlaced, stats.SeedsFailed)
	}
	if math.Abs(stats.SuccessRate-0.75) > 1e-9 {
		t.Errorf("expected success rate 0.75, got %f", stats.SuccessRate)
	}
	if stats.StageUps != 2 || stats.Matured != 1 {
		t.Errorf("expected 2 stage-ups and 1 matured, got %d and %d", stats.StageUps, stats.Matured)
	}
	if stats.FactorMax != 1.44 {
		t.Errorf("expected factor max 1.44, got %f", stats.FactorMax)
	}
	if math.Abs(stats.LevelMean-3) > 1e-9 {
		t.Errorf("expected level mean 3, got %f", stats.LevelMean)
	}
	if math.Abs(stats.SimTimeSec-1) > 1e-9 {
		t.Errorf("expected sim time 1s, got %f", stats.SimTimeSec)
	}

	// Counters and window time reset for the next window
	if c.ShouldFlush() {
		t.Error("expected window time reset after flush")
	}
	c.Advance(0.5)
	next := c.Flush(20, PopulationSample{})
	if next.SeedsPlaced != 0 || next.StageUps != 0 || next.SuccessRate != 0 {
		t.Errorf("expected reset counters, got %+v", next)
	}
	if next.WindowStartTick != 10 {
		t.Errorf("expected next window to start at 10, got %d", next.WindowStartTick)
	}
	if math.Abs(next.SimTimeSec-1.5) > 1e-9 || math.Abs(next.WindowSec-0.5) > 1e-9 {
		t.Errorf("expected sim time 1.5s and window 0.5s, got %f and %f", next.SimTimeSec, next.WindowSec)
	}
}

func TestSampleWorld(t *testing.T) {
	cfg := config.Defaults()
	cfg.Plant.InitialCount = 0
	cfg.Herbivore.InitialCount = 0
	w := world.New(cfg, nil, rand.New(rand.NewSource(3)))

	w.TryPlacePlant(500, 500, cfg.Plant.MaxGrowthLevel)
	w.TryPlacePlant(1000, 1000, 1)
	w.SpawnHerbivore(1500, 1500)

	pop := Sample(w, cfg.Plant.MaxGrowthLevel)
	if pop.Plants != 2 || pop.Herbivores != 1 {
		t.Errorf("expected 2 plants and 1 herbivore, got %d and %d", pop.Plants, pop.Herbivores)
	}
	if pop.FullGrown != 1 || len(pop.Factors) != 1 || pop.Factors[0] != 1 {
		t.Errorf("expected one full-grown plant at factor 1, got %+v", pop)
	}
	if len(pop.Levels) != 2 {
		t.Errorf("expected 2 levels, got %d", len(pop.Levels))
	}
}
