package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

// ReproductionOutcome reports what a reproduction advance did this tick.
type ReproductionOutcome uint8

const (
	ReproductionIdle ReproductionOutcome = iota
	ReproductionPlaced
	ReproductionFailed
)

// NewReproductionState returns reproduction state with a jittered first delay.
func NewReproductionState(cfg config.PlantConfig, rng *rand.Rand) components.Reproduction {
	return components.NewReproduction(Jitter(rng, cfg.ReproductionDelay))
}

// AdvanceReproduction counts down the reproduction timer. When it lapses,
// drop is called exactly once, the outcome is recorded, and the timer is
// reset to the base delay scaled by the backoff factor and jitter.
func AdvanceReproduction(r *components.Reproduction, dt float64, cfg config.PlantConfig, rng *rand.Rand, drop func() bool) ReproductionOutcome {
	r.Timer -= dt
	if r.Timer > 0 {
		return ReproductionIdle
	}

	placed := drop()
	RecordOutcome(r, placed, cfg.Reproduction)
	r.Timer = Jitter(rng, cfg.ReproductionDelay*r.Factor)

	if placed {
		return ReproductionPlaced
	}
	return ReproductionFailed
}

// RecordOutcome updates the success/fail streaks and the delay factor.
// A run of max_successes resets the factor to 1; a run of max_fails
// multiplies it by the configured factor, up to max_factor when set.
func RecordOutcome(r *components.Reproduction, success bool, cfg config.ReproductionConfig) {
	if success {
		r.Successes++
		r.Fails = 0
	} else {
		r.Fails++
		r.Successes = 0
	}

	if r.Successes >= cfg.MaxSuccesses {
		r.Successes = 0
		r.Factor = 1
	}

	if r.Fails >= cfg.MaxFails {
		r.Fails = 0
		r.Factor *= cfg.Factor
		if cfg.MaxFactor > 0 {
			r.Factor = math.Min(r.Factor, cfg.MaxFactor)
		}
	}
}

// SeedOffset picks a uniform direction and a distance in [minDistance, maxRange].
func SeedOffset(rng *rand.Rand, minDistance, maxRange float64) (dx, dy float64) {
	direction := RandomAngle(rng)
	distance := Uniform(rng, minDistance, maxRange)
	return distance * math.Cos(direction), distance * math.Sin(direction)
}
