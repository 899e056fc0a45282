package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/camera"
	"github.com/pthm-cable/evotales/systems"
)

// ParticleRenderer renders effect particles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders all visible particles, fading them as they age.
func (r *ParticleRenderer) Draw(cam *camera.Camera, particles []systems.EffectParticle) {
	for i := range particles {
		p := &particles[i]
		if !cam.IsVisible(p.X, p.Y, p.Size) {
			continue
		}

		lifeRatio := float32(p.LifeRatio())

		var color rl.Color
		switch p.Type {
		case systems.ParticleSeed:
			color = rl.Color{R: 150, G: 230, B: 90, A: uint8(lifeRatio * 220)}
		case systems.ParticleSeedFailed:
			color = rl.Color{R: 120, G: 100, B: 80, A: uint8(lifeRatio * 160)}
		}

		size := max(float32(p.Size*cam.Zoom)*lifeRatio, 0.5)
		sx, sy := cam.WorldToScreen(p.X, p.Y)
		rl.DrawCircleV(rl.Vector2{X: float32(sx), Y: float32(sy)}, size, color)
	}
}
