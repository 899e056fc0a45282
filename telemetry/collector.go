package telemetry

// windowEpsilon absorbs float drift when summing frame times.
const windowEpsilon = 1e-9

// Collector accumulates population events within time windows and produces WindowStats.
// Windows are measured in simulated seconds, so variable frame steps and
// fixed headless steps produce comparable windows.
type Collector struct {
	windowDurationSec float64

	// Current window tracking
	simTimeSec      float64
	windowElapsed   float64
	windowStartTick int64

	// Event counters for current window
	seedsPlaced int
	seedsFailed int
	stageUps    int
	matured     int
}

// NewCollector creates a new stats collector whose windows last
// windowDurationSec simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDurationSec: windowDurationSec}
}

// Advance adds dt simulated seconds. Call once per world update with the
// same dt. Non-positive dt is ignored, matching World.Update.
func (c *Collector) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	c.simTimeSec += dt
	c.windowElapsed += dt
}

// RecordSeed records a seed that took root.
func (c *Collector) RecordSeed() {
	c.seedsPlaced++
}

// RecordSeedFailed records a seed drop rejected by placement.
func (c *Collector) RecordSeedFailed() {
	c.seedsFailed++
}

// RecordStageUp records a plant reaching a new growth level.
// Reaching maxLevel also counts as maturing.
func (c *Collector) RecordStageUp(level, maxLevel int) {
	c.stageUps++
	if level >= maxLevel {
		c.matured++
	}
}

// ShouldFlush returns true if the window's simulated time has elapsed.
func (c *Collector) ShouldFlush() bool {
	return c.windowElapsed >= c.windowDurationSec-windowEpsilon
}

// Flush produces a WindowStats and resets counters for the next window.
// pop is the population sampled at the window end.
func (c *Collector) Flush(currentTick int64, pop PopulationSample) WindowStats {
	var successRate float64
	if attempts := c.seedsPlaced + c.seedsFailed; attempts > 0 {
		successRate = float64(c.seedsPlaced) / float64(attempts)
	}

	factor := ComputeDistribution(pop.Factors)
	level := ComputeDistribution(pop.Levels)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      c.simTimeSec,
		WindowSec:       c.windowElapsed,

		Plants:     pop.Plants,
		Herbivores: pop.Herbivores,
		FullGrown:  pop.FullGrown,

		SeedsPlaced: c.seedsPlaced,
		SeedsFailed: c.seedsFailed,
		SuccessRate: successRate,
		StageUps:    c.stageUps,
		Matured:     c.matured,

		FactorMean: factor.Mean,
		FactorStd:  factor.Std,
		FactorP50:  factor.P50,
		FactorP90:  factor.P90,
		FactorMax:  factor.Max,

		LevelMean: level.Mean,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.windowElapsed = 0
	c.seedsPlaced = 0
	c.seedsFailed = 0
	c.stageUps = 0
	c.matured = 0

	return stats
}

// SimTime returns the total simulated seconds recorded so far.
func (c *Collector) SimTime() float64 {
	return c.simTimeSec
}
