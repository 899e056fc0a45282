package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/camera"
	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/world"
)

var (
	groundColor    = rl.Color{R: 46, G: 64, B: 38, A: 255}
	outsideColor   = rl.Color{R: 18, G: 22, B: 18, A: 255}
	boundaryColor  = rl.Color{R: 90, G: 110, B: 80, A: 255}
	herbivoreColor = rl.Color{R: 196, G: 164, B: 110, A: 255}
)

// plantColors shade the fallback circle by growth level.
var plantColors = []rl.Color{
	{R: 120, G: 170, B: 90, A: 255},
	{R: 90, G: 160, B: 70, A: 255},
	{R: 60, G: 145, B: 55, A: 255},
	{R: 35, G: 120, B: 45, A: 255},
}

// WorldRenderer draws the ground, plants and herbivores through a camera.
type WorldRenderer struct {
	sprites     *SpriteRenderer
	plantRadius float32
	herbRadius  float32
	herbSprite  string
}

// NewWorldRenderer creates a renderer using the organism sizes from cfg.
func NewWorldRenderer(sprites *SpriteRenderer, cfg *config.Config) *WorldRenderer {
	return &WorldRenderer{
		sprites:     sprites,
		plantRadius: float32(cfg.Plant.BodyRadius),
		herbRadius:  float32(cfg.Herbivore.BodyRadius),
		herbSprite:  cfg.Herbivore.Sprite,
	}
}

// Draw renders every visible organism. Call between BeginDrawing and EndDrawing.
func (r *WorldRenderer) Draw(cam *camera.Camera, w *world.World) {
	rl.ClearBackground(outsideColor)
	r.drawGround(cam, w)

	view := visibleRect(cam)
	zoom := float32(cam.Zoom)
	plantR := float64(r.plantRadius)
	w.EachPlant(func(p world.PlantView) {
		if !view.contains(p.Position.X, p.Position.Y, plantR) {
			return
		}
		sx, sy := cam.WorldToScreen(p.Position.X, p.Position.Y)
		color := plantColors[min(max(p.Growth.Level-1, 0), len(plantColors)-1)]
		r.sprites.Draw(p.Growth.Stage, float32(sx), float32(sy), zoom, 0, r.plantRadius, color)
	})

	herbR := float64(r.herbRadius)
	w.EachHerbivore(func(h world.HerbivoreView) {
		if !view.contains(h.Position.X, h.Position.Y, herbR) {
			return
		}
		sx, sy := cam.WorldToScreen(h.Position.X, h.Position.Y)
		r.sprites.Draw(r.herbSprite, float32(sx), float32(sy), zoom, float32(h.Heading), r.herbRadius, herbivoreColor)
	})
}

// drawGround fills the world rectangle and outlines its edge.
func (r *WorldRenderer) drawGround(cam *camera.Camera, w *world.World) {
	b := w.Space().Bounds()
	x0, y0 := cam.WorldToScreen(0, 0)
	x1, y1 := cam.WorldToScreen(b.Width, b.Height)
	rect := rl.Rectangle{X: float32(x0), Y: float32(y0), Width: float32(x1 - x0), Height: float32(y1 - y0)}
	rl.DrawRectangleRec(rect, groundColor)
	rl.DrawRectangleLinesEx(rect, 2, boundaryColor)
}

// viewRect is the visible world area for one frame.
type viewRect struct {
	minX, minY, maxX, maxY float64
}

func visibleRect(cam *camera.Camera) viewRect {
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	return viewRect{minX, minY, maxX, maxY}
}

// contains reports whether a circle of radius r at (x, y) overlaps the view.
func (v viewRect) contains(x, y, r float64) bool {
	return x+r >= v.minX && x-r <= v.maxX && y+r >= v.minY && y-r <= v.maxY
}
