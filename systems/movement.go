package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

// NewWander returns wander state with a random heading and a full turn interval.
func NewWander(cfg config.HerbivoreConfig, rng *rand.Rand) components.Wander {
	return components.Wander{Angle: RandomAngle(rng), TurnTimer: cfg.TurnInterval}
}

// AdvanceWander counts down the turn timer, re-rolling the heading when it
// lapses, and returns the velocity and body orientation for this tick.
// Speed is constant; only the heading varies.
func AdvanceWander(w *components.Wander, dt float64, cfg config.HerbivoreConfig, rng *rand.Rand) (vx, vy, angle float64) {
	w.TurnTimer -= dt
	if w.TurnTimer <= 0 {
		w.Angle = RandomAngle(rng)
		w.TurnTimer = cfg.TurnInterval
	}

	vx = cfg.Speed * math.Cos(w.Angle)
	vy = cfg.Speed * math.Sin(w.Angle)
	return vx, vy, w.Angle
}
