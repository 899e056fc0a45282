package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/systems"
	"github.com/pthm-cable/evotales/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title      string
	Plants     int
	Herbivores int
	Tick       int64
	Speed      int
	FPS        int32
	Zoom       float64
	Paused     bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Plants: %d | Herbivores: %d", data.Plants, data.Herbivores),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Zoom: %.2f", data.Tick, data.Speed, data.FPS, data.Zoom),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PopulationPanel shows the most recent telemetry window.
type PopulationPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPopulationPanel creates a population panel at the given position.
func NewPopulationPanel(x, y, width int32) *PopulationPanel {
	return &PopulationPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *PopulationPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel. A nil stats pointer shows a placeholder.
func (p *PopulationPanel) Draw(stats *telemetry.WindowStats) {
	r := p.renderer
	pad := r.Theme.Padding
	height := r.Theme.LineHeight*8 + pad*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + pad
	y := r.DrawSectionHeader(x, p.y+pad, "Population")
	if stats == nil {
		rl.DrawText("waiting for first window", x, y, r.Theme.FontSize, r.Theme.LabelColor)
		return
	}

	inner := p.width - pad*2
	y = r.DrawLabelValue(x, y, "Full grown", fmt.Sprintf("%d / %d", stats.FullGrown, stats.Plants))
	y = r.DrawLabelValue(x, y, "Seeds", fmt.Sprintf("%d placed, %d failed", stats.SeedsPlaced, stats.SeedsFailed))
	y = r.DrawBar(x, y, "Seed success", float32(stats.SuccessRate), inner)
	y = r.DrawLabelValue(x, y, "Delay factor", fmt.Sprintf("%.2f (p90 %.2f)", stats.FactorMean, stats.FactorP90))
	y = r.DrawLabelValue(x, y, "Max factor", fmt.Sprintf("%.2f", stats.FactorMax))
	r.DrawLabelValue(x, y, "Mean level", fmt.Sprintf("%.2f", stats.LevelMean))
}

// PerfPanel renders the per-phase timing breakdown.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32, registry *systems.SystemRegistry) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), registry: registry, x: x, y: y}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x, y := p.x, p.y

	rl.DrawText("Phase Timing", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s", stats.AvgTickDuration.Round(time.Microsecond)), x, y, 14, rl.Yellow)
	y += 16

	for _, cat := range p.registry.Categories() {
		rl.DrawText(cat, x, y, 10, rl.Gray)
		y += 12
		for _, info := range p.registry.ByCategory(cat) {
			avg := stats.PhaseAvg[info.ID]
			pct := stats.PhasePct[info.ID]

			color := rl.LightGray
			if pct > 50 {
				color = rl.Red
			} else if pct > 25 {
				color = rl.Orange
			}

			rl.DrawText(
				fmt.Sprintf("  %-12s %8s %5.1f%%", info.Name, avg.Round(time.Microsecond), pct),
				x, y, 12, color,
			)
			y += 14
		}
	}
}
