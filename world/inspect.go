package world

import (
	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/physics"
)

// Inspection is a read-only copy of one organism for the inspector panel.
// Growth and Reproduction are set for plants, Heading for herbivores.
type Inspection struct {
	Owner        physics.Owner
	Position     components.Position
	Growth       components.Growth
	Reproduction components.Reproduction
	Heading      float64
}

// OrganismAt returns the organism whose body centre is nearest to (x, y)
// and no farther than radius.
func (w *World) OrganismAt(x, y, radius float64) (physics.Owner, bool) {
	var (
		best  physics.Owner
		found bool
	)
	bestDist := radius * radius
	w.space.QueryBox(x, y, radius, func(owner *physics.Owner, px, py float64) {
		dx, dy := px-x, py-y
		if d := dx*dx + dy*dy; d <= bestDist {
			best, bestDist, found = *owner, d, true
		}
	})
	return best, found
}

// Inspect reads the current state of owner's entity.
// It reports false once the entity no longer exists.
func (w *World) Inspect(owner physics.Owner) (Inspection, bool) {
	if !w.ecs.Alive(owner.Entity) {
		return Inspection{}, false
	}

	in := Inspection{Owner: owner, Position: *w.posMap.Get(owner.Entity)}
	switch owner.Species {
	case components.SpeciesPlant:
		in.Growth = *w.growthMap.Get(owner.Entity)
		in.Reproduction = *w.reproMap.Get(owner.Entity)
	case components.SpeciesHerbivore:
		in.Heading = w.headingMap.Get(owner.Entity).Angle
	}
	return in, true
}
