package game

import (
	"log/slog"

	"github.com/pthm-cable/evotales/telemetry"
	"github.com/pthm-cable/evotales/world"
)

// setupTelemetryHooks routes world events into the stats collector and,
// in graphics mode, the particle effects.
func (g *Game) setupTelemetryHooks() {
	maxLevel := g.cfg.Plant.MaxGrowthLevel
	g.world.SetHooks(world.Hooks{
		OnSeed: func(x, y float64) {
			g.collector.RecordSeed()
			if g.particles != nil {
				g.particles.EmitSeed(x, y)
			}
		},
		OnSeedFailed: func(x, y float64) {
			g.collector.RecordSeedFailed()
			if g.particles != nil {
				g.particles.EmitSeedFailed(x, y)
			}
		},
		OnStageUp: func(level int) { g.collector.RecordStageUp(level, maxLevel) },
	})
}

// flushTelemetry closes the stats window when it has elapsed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}
	tick := g.world.Tick()

	pop := telemetry.Sample(g.world, g.cfg.Plant.MaxGrowthLevel)
	stats := g.collector.Flush(tick, pop)
	perfStats := g.perfCollector.Stats()
	g.lastStats = &stats

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WritePopulation(stats); err != nil {
			slog.Error("failed to write population stats", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
