package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/renderer"
	"github.com/pthm-cable/evotales/systems"
	"github.com/pthm-cable/evotales/ui"
)

const (
	panelWidth   = 230
	panelMargin  = 10
	maxParticles = 600
)

const controlsLegend = "Arrows/Drag: Pan | X/Z/Wheel: Zoom | Space: Pause | +/-: Speed | R: Reset View | Click: Inspect"

// initRendering loads textures and builds the UI. Requires an open window.
func (g *Game) initRendering() {
	g.sprites = renderer.NewSpriteRenderer(g.atlas)
	g.sprites.Init()
	g.worldRenderer = renderer.NewWorldRenderer(g.sprites, g.cfg)
	g.overlayRenderer = renderer.NewOverlayRenderer(g.cfg)
	g.particleRenderer = renderer.NewParticleRenderer()
	g.particles = systems.NewParticleSystem(maxParticles, g.rng)

	g.overlays = ui.NewOverlayRegistry()
	g.input.Push(g.overlays.Bindings())

	g.hud = ui.NewHUD()
	g.controlsPanel = ui.NewControlsPanel(0, 0, panelWidth)
	g.popPanel = ui.NewPopulationPanel(0, 0, panelWidth)
	g.perfPanel = ui.NewPerfPanel(0, 0, g.registry)
	g.inspector = ui.NewInspector(panelMargin, 100, panelWidth)
	g.layoutPanels()
}

// layoutPanels stacks the side panels along the right edge.
func (g *Game) layoutPanels() {
	if g.controlsPanel == nil {
		return
	}
	x := int32(g.screenWidth) - panelWidth - panelMargin
	g.controlsPanel.SetPosition(x, panelMargin)
	g.popPanel.SetPosition(x, panelMargin+120)
	g.perfPanel.SetPosition(x, panelMargin+290)
}

// Draw renders the current frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.worldRenderer.Draw(g.camera, g.world)
	g.drawOverlays()
	g.particleRenderer.Draw(g.camera, g.particles.Particles)

	g.hud.Draw(ui.HUDData{
		Title:      g.cfg.Screen.Title,
		Plants:     g.world.Plants(),
		Herbivores: g.world.Herbivores(),
		Tick:       g.world.Tick(),
		Speed:      g.speed,
		FPS:        rl.GetFPS(),
		Zoom:       g.camera.Zoom,
		Paused:     g.paused,
	})
	g.hud.DrawControls(int32(g.screenHeight)-18, controlsLegend)
	g.hud.DrawControls(int32(g.screenHeight), g.overlays.Legend())

	state := ui.ControlsState{Paused: g.paused, Speed: g.speed}
	action := g.controlsPanel.Draw(&state)
	g.paused, g.speed = state.Paused, state.Speed
	if action.ResetCamera {
		g.camera.Reset()
	}

	if g.overlays.IsEnabled(ui.OverlayPopulation) {
		g.popPanel.Draw(g.lastStats)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	g.drawInspector()

	rl.EndDrawing()
}

// drawOverlays draws the enabled world-space debug overlays.
func (g *Game) drawOverlays() {
	if g.overlays.IsEnabled(ui.OverlaySpacing) {
		g.overlayRenderer.DrawSpacing(g.camera, g.world)
	}
	if g.overlays.IsEnabled(ui.OverlaySeedRange) {
		g.overlayRenderer.DrawSeedRange(g.camera, g.world)
	}
	if g.overlays.IsEnabled(ui.OverlayHeadings) {
		g.overlayRenderer.DrawHeadings(g.camera, g.world)
	}
	if g.overlays.IsEnabled(ui.OverlayBodies) {
		g.overlayRenderer.DrawBodies(g.camera, g.world)
	}
}

// drawInspector highlights and describes the selected organism.
// The selection is dropped once its entity is gone.
func (g *Game) drawInspector() {
	owner, ok := g.inspector.Selected()
	if !ok {
		return
	}
	in, alive := g.world.Inspect(owner)
	if !alive {
		g.inspector.Deselect()
		return
	}

	radius := g.cfg.Herbivore.BodyRadius
	if owner.Species == components.SpeciesPlant {
		radius = g.cfg.Plant.BodyRadius
	}
	g.overlayRenderer.DrawSelection(g.camera, in.Position.X, in.Position.Y, radius)
	g.inspector.Draw(in, g.cfg.Plant.MaxGrowthLevel)
}
