package systems

import (
	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/physics"
)

// PlacementRule describes where a species may be placed.
type PlacementRule struct {
	Species    components.Species
	MinSpacing float64 // Minimum distance to any same-species neighbor (0 = no spacing check)
	Padding    float64 // Distance kept from every world edge
}

// Spawner creates and registers one entity at the given position.
type Spawner func(x, y float64)

// Placer validates candidate positions against world bounds and
// same-species spacing, using the physics broad-phase as spatial index.
// It is the only path through which new organisms enter the world.
type Placer struct {
	space  *physics.Space
	bounds physics.Bounds
}

// NewPlacer creates a placement service backed by the given space.
func NewPlacer(space *physics.Space) *Placer {
	return &Placer{space: space, bounds: space.Bounds()}
}

// InBounds reports whether (x, y) lies within the padded world, edges included.
func (p *Placer) InBounds(x, y, padding float64) bool {
	return x >= padding && x <= p.bounds.Width-padding &&
		y >= padding && y <= p.bounds.Height-padding
}

// Clear reports whether no same-species body lies closer than minSpacing to (x, y).
func (p *Placer) Clear(x, y float64, species components.Species, minSpacing float64) bool {
	if minSpacing <= 0 {
		return true
	}
	minSq := minSpacing * minSpacing
	clear := true
	p.space.QueryBox(x, y, minSpacing, func(owner *physics.Owner, px, py float64) {
		if !clear || owner.Species != species {
			return
		}
		if distanceSq(x, y, px, py) < minSq {
			clear = false
		}
	})
	return clear
}

// TryPlace validates (x, y) against rule and, when valid, calls spawn exactly once.
// A rejected placement is a normal outcome, not an error.
func (p *Placer) TryPlace(x, y float64, rule PlacementRule, spawn Spawner) bool {
	if !p.InBounds(x, y, rule.Padding) {
		return false
	}
	if !p.Clear(x, y, rule.Species, rule.MinSpacing) {
		return false
	}
	spawn(x, y)
	return true
}
