package systems

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

// SpriteSet reports which visual stages can be shown.
type SpriteSet interface {
	Has(name string) bool
}

// StageName returns the sprite name configured for a growth level.
// Levels beyond the configured list reuse the last entry.
func StageName(cfg config.PlantConfig, level int) string {
	if len(cfg.Stages) == 0 {
		return ""
	}
	return cfg.Stages[clampInt(level-1, 0, len(cfg.Stages)-1)]
}

// NewGrowth returns growth state at the given level with a fresh jittered timer.
func NewGrowth(cfg config.PlantConfig, level int, sprites SpriteSet, rng *rand.Rand) components.Growth {
	g := components.Growth{Level: 1}
	if !SetGrowthLevel(&g, level, cfg, sprites, rng) {
		g.Timer = Jitter(rng, cfg.MaxGrowthTimer)
	}
	return g
}

// SetGrowthLevel clamps level into [1, max] and applies it.
// The stage sprite and timer only change when the level or shown stage
// would differ; otherwise the call is a no-op and returns false.
// A missing sprite keeps the previous stage and logs a warning, but the
// level is still applied.
func SetGrowthLevel(g *components.Growth, level int, cfg config.PlantConfig, sprites SpriteSet, rng *rand.Rand) bool {
	requested := clampInt(level, 1, cfg.MaxGrowthLevel)
	name := StageName(cfg, requested)
	available := name != "" && sprites != nil && sprites.Has(name)

	stage := g.Stage
	if available {
		stage = name
	}
	if requested == g.Level && stage == g.Stage {
		return false
	}

	if !available {
		slog.Warn("growth stage sprite missing", "level", requested, "sprite", name)
	}
	g.Level = requested
	g.Stage = stage
	g.Timer = Jitter(rng, cfg.MaxGrowthTimer)
	return true
}

// AdvanceGrowth counts down the growth timer and moves up one stage when it lapses.
// Time beyond the threshold is discarded, so a single call never advances
// more than one stage. Returns true if the level changed.
func AdvanceGrowth(g *components.Growth, dt float64, cfg config.PlantConfig, sprites SpriteSet, rng *rand.Rand) bool {
	if g.FullGrown(cfg.MaxGrowthLevel) {
		return false
	}
	g.Timer -= dt
	if g.Timer > 0 {
		return false
	}
	before := g.Level
	SetGrowthLevel(g, g.Level+1, cfg, sprites, rng)
	return g.Level != before
}
