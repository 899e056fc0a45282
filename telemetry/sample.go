package telemetry

import "github.com/pthm-cable/evotales/world"

// PopulationSample is the population state at a window boundary.
type PopulationSample struct {
	Plants     int
	Herbivores int
	FullGrown  int
	Factors    []float64 // reproduction delay factor of each full-grown plant
	Levels     []float64 // growth level of each plant
}

// Sample reads the current population from w.
func Sample(w *world.World, maxLevel int) PopulationSample {
	pop := PopulationSample{
		Plants:     w.Plants(),
		Herbivores: w.Herbivores(),
		Levels:     make([]float64, 0, w.Plants()),
	}
	w.EachPlant(func(p world.PlantView) {
		pop.Levels = append(pop.Levels, float64(p.Growth.Level))
		if p.Growth.FullGrown(maxLevel) {
			pop.FullGrown++
			pop.Factors = append(pop.Factors, p.Reproduction.Factor)
		}
	})
	return pop
}
