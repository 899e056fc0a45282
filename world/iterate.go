package world

import (
	"github.com/pthm-cable/evotales/components"
)

// PlantView is a read-only copy of one plant's state.
type PlantView struct {
	Position     components.Position
	Growth       components.Growth
	Reproduction components.Reproduction
}

// HerbivoreView is a read-only copy of one herbivore's state.
type HerbivoreView struct {
	Position components.Position
	Heading  float64
}

// EachPlant calls fn for every live plant.
// fn must not create entities.
func (w *World) EachPlant(fn func(p PlantView)) {
	query := w.plantFilter.Query()
	for query.Next() {
		pos, _, growth, repro, _ := query.Get()
		fn(PlantView{Position: *pos, Growth: *growth, Reproduction: *repro})
	}
}

// EachHerbivore calls fn for every live herbivore.
// fn must not create entities.
func (w *World) EachHerbivore(fn func(h HerbivoreView)) {
	query := w.herbFilter.Query()
	for query.Next() {
		pos, _, _, heading, _ := query.Get()
		fn(HerbivoreView{Position: *pos, Heading: heading.Angle})
	}
}

// Snapshot returns copies of every live plant and herbivore.
func (w *World) Snapshot() ([]PlantView, []HerbivoreView) {
	plants := make([]PlantView, 0, w.numPlants)
	w.EachPlant(func(p PlantView) { plants = append(plants, p) })

	herbivores := make([]HerbivoreView, 0, w.numHerbivores)
	w.EachHerbivore(func(h HerbivoreView) { herbivores = append(herbivores, h) })

	return plants, herbivores
}
