package systems

import (
	"math"
	"math/rand"
)

// jitterVariability is the ± fraction applied to every randomized timer.
const jitterVariability = 0.2

// Jitter scales base by a uniform factor in [0.8, 1.2).
// Timers reset through Jitter so a population started together drifts apart.
func Jitter(rng *rand.Rand, base float64) float64 {
	return base * Uniform(rng, 1-jitterVariability, 1+jitterVariability)
}

// Uniform returns a uniform value in [lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// RandomAngle returns a uniform heading in [0, 2π).
func RandomAngle(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// clampInt clamps an int value between min and max.
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// distanceSq returns the squared distance between two points.
func distanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}
