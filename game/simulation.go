package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/telemetry"
)

// maxFrameDT bounds the step taken after a long frame stall.
const maxFrameDT = 0.1

// step runs a single simulation tick of length dt.
func (g *Game) step(dt float64) {
	g.perfCollector.StartTick()
	g.world.Update(dt)
	g.collector.Advance(dt)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()
	g.perfCollector.EndTick()
}

// UpdateHeadless runs stepsPerUpdate fixed-length ticks without graphics.
func (g *Game) UpdateHeadless() {
	for range g.stepsPerUpdate {
		g.step(g.cfg.Physics.DT)
	}
}

// Update handles input and advances the simulation by the last frame time.
func (g *Game) Update() {
	g.perfCollector.RecordFrame()

	dt := min(float64(rl.GetFrameTime()), maxFrameDT)
	g.handleInput(dt)

	if g.paused {
		return
	}
	for range g.speed {
		g.step(dt)
	}
	g.particles.Update(dt)
}
