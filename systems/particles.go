package systems

import (
	"math"
	"math/rand"
)

// ParticleType identifies the type of effect particle.
type ParticleType uint8

const (
	ParticleSeed       ParticleType = iota // a seed took root
	ParticleSeedFailed                     // a seed landed somewhere invalid
)

// EffectParticle is a short-lived visual cue in world coordinates.
type EffectParticle struct {
	X, Y       float64
	VelX, VelY float64 // world units per second
	Life       float64 // seconds remaining
	MaxLife    float64
	Type       ParticleType
	Size       float64
}

// LifeRatio returns remaining life in [0, 1].
func (p *EffectParticle) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return max(p.Life/p.MaxLife, 0)
}

// ParticleSystem manages effect particles for visual feedback.
type ParticleSystem struct {
	Particles    []EffectParticle
	maxParticles int
	rng          *rand.Rand
}

// NewParticleSystem creates a particle system holding at most maxParticles.
func NewParticleSystem(maxParticles int, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		Particles:    make([]EffectParticle, 0, maxParticles),
		maxParticles: maxParticles,
		rng:          rng,
	}
}

// Update ages and moves all particles, dropping expired ones.
func (s *ParticleSystem) Update(dt float64) {
	if dt <= 0 {
		return
	}
	drag := math.Pow(0.05, dt)

	alive := 0
	for i := range s.Particles {
		p := &s.Particles[i]

		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		p.VelX *= drag
		p.VelY *= drag
		p.X += p.VelX * dt
		p.Y += p.VelY * dt

		s.Particles[alive] = s.Particles[i]
		alive++
	}
	s.Particles = s.Particles[:alive]
}

// EmitSeed emits a radial burst of 6-9 particles where a seed took root.
func (s *ParticleSystem) EmitSeed(x, y float64) {
	count := 6 + s.rng.Intn(4)
	for range count {
		s.emit(x, y, ParticleSeed, Uniform(s.rng, 25, 50), Uniform(s.rng, 0.5, 0.9), Uniform(s.rng, 1.5, 2.5))
	}
}

// EmitSeedFailed emits a small slow puff where a seed was rejected.
func (s *ParticleSystem) EmitSeedFailed(x, y float64) {
	for range 3 {
		s.emit(x, y, ParticleSeedFailed, Uniform(s.rng, 5, 15), Uniform(s.rng, 0.4, 0.7), Uniform(s.rng, 1, 2))
	}
}

func (s *ParticleSystem) emit(x, y float64, ptype ParticleType, speed, life, size float64) {
	if len(s.Particles) >= s.maxParticles {
		return
	}
	angle := RandomAngle(s.rng)
	s.Particles = append(s.Particles, EffectParticle{
		X:       x,
		Y:       y,
		VelX:    math.Cos(angle) * speed,
		VelY:    math.Sin(angle) * speed,
		Life:    life,
		MaxLife: life,
		Type:    ptype,
		Size:    size,
	})
}

// Count returns the current number of active particles.
func (s *ParticleSystem) Count() int {
	return len(s.Particles)
}
