package renderer

import (
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/renderer/atlas"
)

// SpriteRenderer draws named atlas frames, falling back to plain circles
// when the sheet or a frame is unavailable.
type SpriteRenderer struct {
	atlas       *atlas.Atlas
	texture     rl.Texture2D
	initialized bool
	loaded      bool
}

// NewSpriteRenderer creates a renderer for the given atlas.
func NewSpriteRenderer(a *atlas.Atlas) *SpriteRenderer {
	return &SpriteRenderer{atlas: a}
}

// Init loads the sprite sheet (must be called after raylib window is created).
func (r *SpriteRenderer) Init() {
	if r.initialized {
		return
	}
	r.initialized = true

	sheet := r.atlas.Sheet()
	if _, err := os.Stat(sheet); err != nil {
		slog.Warn("sprite sheet unavailable, drawing shapes", "sheet", sheet, "error", err)
		return
	}
	r.texture = rl.LoadTexture(sheet)
	r.loaded = r.texture.ID != 0
}

// Draw renders sprite name centered on (sx, sy) in screen space.
// scale multiplies the frame size; rotation is in radians.
// Without a usable frame a circle of fallbackRadius*scale is drawn instead.
func (r *SpriteRenderer) Draw(name string, sx, sy, scale, rotation, fallbackRadius float32, fallback rl.Color) {
	if !r.initialized {
		r.Init()
	}

	frame, ok := r.atlas.Frame(name)
	if !r.loaded || !ok {
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, fallbackRadius*scale, fallback)
		return
	}

	w, h := frame.W*scale, frame.H*scale
	src := rl.Rectangle{X: frame.X, Y: frame.Y, Width: frame.W, Height: frame.H}
	dst := rl.Rectangle{X: sx, Y: sy, Width: w, Height: h}
	rl.DrawTexturePro(r.texture, src, dst, rl.Vector2{X: w / 2, Y: h / 2}, rotation*rl.Rad2deg, rl.White)
}

// Unload frees resources.
func (r *SpriteRenderer) Unload() {
	if r.loaded {
		rl.UnloadTexture(r.texture)
		r.loaded = false
	}
	r.initialized = false
}
