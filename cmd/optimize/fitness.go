package main

import (
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/renderer/atlas"
	"github.com/pthm-cable/evotales/telemetry"
	"github.com/pthm-cable/evotales/world"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params         *ParamVector
	maxTicks       int64
	seeds          []int64
	baseConfig     *config.Config
	sprites        *atlas.Atlas
	statsWindow    float64
	targetCoverage float64

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
// targetCoverage is the wanted fraction of the world's plant capacity.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, seeds []int64, baseCfg *config.Config, sprites *atlas.Atlas, targetCoverage float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:         params,
		maxTicks:       maxTicks,
		seeds:          seeds,
		baseConfig:     baseCfg,
		sprites:        sprites,
		statsWindow:    10.0,
		targetCoverage: targetCoverage,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean quality across seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	qualities := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			windows := fe.runSimulation(cfg, seed)
			qualities[i] = computeQuality(windows, plantCapacity(cfg), fe.targetCoverage)
		}()
	}
	wg.Wait()

	quality := stat.Mean(qualities, nil)

	fe.mu.Lock()
	fe.lastQuality = quality
	fe.mu.Unlock()

	return -quality
}

// runSimulation executes a single headless run and returns its stats windows.
// cfg is shared between seeds and only read.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) []telemetry.WindowStats {
	w := world.New(cfg, fe.sprites, rand.New(rand.NewSource(seed)))
	collector := telemetry.NewCollector(fe.statsWindow)
	maxLevel := cfg.Plant.MaxGrowthLevel
	w.SetHooks(world.Hooks{
		OnSeed:       func(_, _ float64) { collector.RecordSeed() },
		OnSeedFailed: func(_, _ float64) { collector.RecordSeedFailed() },
		OnStageUp:    func(level int) { collector.RecordStageUp(level, maxLevel) },
	})
	w.SeedInitialPopulation()

	var windows []telemetry.WindowStats
	for w.Tick() < fe.maxTicks {
		w.Update(cfg.Physics.DT)
		collector.Advance(cfg.Physics.DT)
		if collector.ShouldFlush() {
			windows = append(windows, collector.Flush(w.Tick(), telemetry.Sample(w, maxLevel)))
		}
	}
	return windows
}

// copyConfig returns a copy of the base config whose plant section can be
// modified freely.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Plant.Stages = append([]string(nil), fe.baseConfig.Plant.Stages...)
	return &cfg
}

// plantCapacity estimates how many plants fit in the padded world at
// hexagonal packing with min_spacing between centres.
func plantCapacity(cfg *config.Config) float64 {
	p := cfg.Plant
	w := cfg.World.Width - 2*p.BoundsPadding
	h := cfg.World.Height - 2*p.BoundsPadding
	if w <= 0 || h <= 0 || p.MinSpacing <= 0 {
		return 0
	}
	return w * h / (p.MinSpacing * p.MinSpacing * math.Sqrt(3) / 2)
}

// Quality component weights.
const (
	qualityWeightCoverage   = 0.5
	qualityWeightEfficiency = 0.3
	qualityWeightSpeed      = 0.2

	qualityWarmupWindows = 1 // skip first N windows when scoring efficiency
	coverageTolerance    = 0.15
)

// computeQuality scores a run in [0, 1] from its window stats.
//
//	coverage:   how close the final plant count is to target * capacity
//	efficiency: mean seed success rate after warmup
//	speed:      how early half the target coverage was reached
func computeQuality(windows []telemetry.WindowStats, capacity, target float64) float64 {
	if len(windows) == 0 || capacity <= 0 {
		return 0
	}

	final := float64(windows[len(windows)-1].Plants) / capacity
	coverageErr := (final - target) / coverageTolerance
	coverageScore := math.Exp(-coverageErr * coverageErr)

	var rates []float64
	for _, w := range windows[min(qualityWarmupWindows, len(windows)-1):] {
		if w.SeedsPlaced+w.SeedsFailed > 0 {
			rates = append(rates, w.SuccessRate)
		}
	}
	efficiencyScore := 0.0
	if len(rates) > 0 {
		efficiencyScore = stat.Mean(rates, nil)
	}

	speedScore := 0.0
	for i, w := range windows {
		if float64(w.Plants)/capacity >= target/2 {
			speedScore = 1 - float64(i)/float64(len(windows))
			break
		}
	}

	quality := qualityWeightCoverage*coverageScore +
		qualityWeightEfficiency*efficiencyScore +
		qualityWeightSpeed*speedScore

	return min(max(quality, 0), 1)
}
