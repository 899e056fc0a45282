package telemetry

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/evotales/systems"
)

// PhaseTelemetry times stats sampling and output at window boundaries.
const PhaseTelemetry = "telemetry"

// phaseOrder lists phases in the order they run each tick.
var phaseOrder = []string{
	systems.PhaseGrowth,
	systems.PhaseReproduction,
	systems.PhaseMovement,
	systems.PhasePhysics,
	PhaseTelemetry,
}

// tickSample holds timing data for a single tick.
type tickSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times world phases over a rolling window of ticks.
// It satisfies world.PhaseTimer.
type PerfCollector struct {
	ring  []tickSample
	next  int
	count int

	// Running sums over the samples currently in the ring
	tickSum  time.Duration
	phaseSum map[string]time.Duration

	current    tickSample
	tickStart  time.Time
	phaseStart time.Time
	phase      string

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		ring:     make([]tickSample, windowSize),
		phaseSum: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = tickSample{phases: make(map[string]time.Duration, len(phaseOrder))}
	p.phase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick finishes the current tick and pushes it into the window,
// evicting the oldest sample once the window is full.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""
	p.current.total = now.Sub(p.tickStart)

	if p.count == len(p.ring) {
		old := p.ring[p.next]
		p.tickSum -= old.total
		for name, d := range old.phases {
			p.phaseSum[name] -= d
		}
	} else {
		p.count++
	}

	p.ring[p.next] = p.current
	p.next = (p.next + 1) % len(p.ring)
	p.tickSum += p.current.total
	for name, d := range p.current.phases {
		p.phaseSum[name] += d
	}
}

// RecordFrame records frame timing for graphics mode.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	PhaseAvg        map[string]time.Duration
	PhasePct        map[string]float64 // Share of the average tick, 0-100
	TicksPerSecond  float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats averages the samples in the current window.
func (p *PerfCollector) Stats() PerfStats {
	stats := PerfStats{
		PhaseAvg:      make(map[string]time.Duration, len(p.phaseSum)),
		PhasePct:      make(map[string]float64, len(p.phaseSum)),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		stats.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.count == 0 {
		return stats
	}

	n := time.Duration(p.count)
	stats.AvgTickDuration = p.tickSum / n
	for name, sum := range p.phaseSum {
		avg := sum / n
		stats.PhaseAvg[name] = avg
		if stats.AvgTickDuration > 0 {
			stats.PhasePct[name] = float64(avg) / float64(stats.AvgTickDuration) * 100
		}
	}
	if stats.AvgTickDuration > 0 {
		stats.TicksPerSecond = float64(time.Second) / float64(stats.AvgTickDuration)
	}
	return stats
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "perf", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat row of perf.csv.
type PerfStatsCSV struct {
	RunID           string  `csv:"run_id"`
	WindowEnd       int64   `csv:"window_end"`
	AvgTickUS       int64   `csv:"avg_tick_us"`
	TicksPerSec     float64 `csv:"ticks_per_sec"`
	FPS             float64 `csv:"fps"`
	GrowthPct       float64 `csv:"growth_pct"`
	ReproductionPct float64 `csv:"reproduction_pct"`
	MovementPct     float64 `csv:"movement_pct"`
	PhysicsPct      float64 `csv:"physics_pct"`
	TelemetryPct    float64 `csv:"telemetry_pct"`
}

// ToCSV converts PerfStats to a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:       windowEnd,
		AvgTickUS:       s.AvgTickDuration.Microseconds(),
		TicksPerSec:     s.TicksPerSecond,
		FPS:             s.FPS,
		GrowthPct:       s.PhasePct[systems.PhaseGrowth],
		ReproductionPct: s.PhasePct[systems.PhaseReproduction],
		MovementPct:     s.PhasePct[systems.PhaseMovement],
		PhysicsPct:      s.PhasePct[systems.PhasePhysics],
		TelemetryPct:    s.PhasePct[PhaseTelemetry],
	}
}
