package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/camera"
	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/world"
)

var (
	spacingColor   = rl.Color{R: 255, G: 255, B: 255, A: 50}
	seedInnerColor = rl.Color{R: 255, G: 120, B: 80, A: 70}
	seedOuterColor = rl.Color{R: 140, G: 230, B: 120, A: 90}
	headingColor   = rl.Color{R: 250, G: 220, B: 120, A: 200}
	bodyColor      = rl.Color{R: 100, G: 180, B: 255, A: 160}
	selectColor    = rl.Yellow
)

// OverlayRenderer draws debug geometry in world space.
type OverlayRenderer struct {
	plant config.PlantConfig
	herb  config.HerbivoreConfig
}

// NewOverlayRenderer creates an overlay renderer for cfg's organism sizes.
func NewOverlayRenderer(cfg *config.Config) *OverlayRenderer {
	return &OverlayRenderer{plant: cfg.Plant, herb: cfg.Herbivore}
}

// DrawSpacing outlines the minimum spacing around every visible plant.
// No other plant centre lies strictly inside a ring.
func (o *OverlayRenderer) DrawSpacing(cam *camera.Camera, w *world.World) {
	r := o.plant.MinSpacing
	radius := float32(r * cam.Zoom)
	w.EachPlant(func(p world.PlantView) {
		if !cam.IsVisible(p.Position.X, p.Position.Y, r) {
			return
		}
		sx, sy := cam.WorldToScreen(p.Position.X, p.Position.Y)
		rl.DrawCircleLines(int32(sx), int32(sy), radius, spacingColor)
	})
}

// DrawSeedRange outlines the seed drop annulus of every visible full-grown plant.
func (o *OverlayRenderer) DrawSeedRange(cam *camera.Camera, w *world.World) {
	inner := float32(o.plant.SeedMinDistance * cam.Zoom)
	outer := float32(o.plant.SeedRange * cam.Zoom)
	w.EachPlant(func(p world.PlantView) {
		if !p.Growth.FullGrown(o.plant.MaxGrowthLevel) {
			return
		}
		if !cam.IsVisible(p.Position.X, p.Position.Y, o.plant.SeedRange) {
			return
		}
		sx, sy := cam.WorldToScreen(p.Position.X, p.Position.Y)
		rl.DrawCircleLines(int32(sx), int32(sy), inner, seedInnerColor)
		rl.DrawCircleLines(int32(sx), int32(sy), outer, seedOuterColor)
	})
}

// DrawHeadings draws a facing line from each visible herbivore.
func (o *OverlayRenderer) DrawHeadings(cam *camera.Camera, w *world.World) {
	length := o.herb.BodyRadius * 2.5
	w.EachHerbivore(func(h world.HerbivoreView) {
		if !cam.IsVisible(h.Position.X, h.Position.Y, length) {
			return
		}
		sx, sy := cam.WorldToScreen(h.Position.X, h.Position.Y)
		ex, ey := cam.WorldToScreen(
			h.Position.X+math.Cos(h.Heading)*length,
			h.Position.Y+math.Sin(h.Heading)*length,
		)
		rl.DrawLineEx(
			rl.Vector2{X: float32(sx), Y: float32(sy)},
			rl.Vector2{X: float32(ex), Y: float32(ey)},
			2, headingColor,
		)
	})
}

// DrawBodies outlines each organism's collision circle.
func (o *OverlayRenderer) DrawBodies(cam *camera.Camera, w *world.World) {
	plantR := float32(o.plant.BodyRadius * cam.Zoom)
	w.EachPlant(func(p world.PlantView) {
		if cam.IsVisible(p.Position.X, p.Position.Y, o.plant.BodyRadius) {
			sx, sy := cam.WorldToScreen(p.Position.X, p.Position.Y)
			rl.DrawCircleLines(int32(sx), int32(sy), plantR, bodyColor)
		}
	})
	herbR := float32(o.herb.BodyRadius * cam.Zoom)
	w.EachHerbivore(func(h world.HerbivoreView) {
		if cam.IsVisible(h.Position.X, h.Position.Y, o.herb.BodyRadius) {
			sx, sy := cam.WorldToScreen(h.Position.X, h.Position.Y)
			rl.DrawCircleLines(int32(sx), int32(sy), herbR, bodyColor)
		}
	})
}

// DrawSelection rings the organism at (x, y) with the given world radius.
func (o *OverlayRenderer) DrawSelection(cam *camera.Camera, x, y, radius float64) {
	sx, sy := cam.WorldToScreen(x, y)
	r := float32((radius + 4) * cam.Zoom)
	rl.DrawCircleLines(int32(sx), int32(sy), r, selectColor)
	rl.DrawCircleLines(int32(sx), int32(sy), r+1, selectColor)
}
