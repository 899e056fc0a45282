// Package components defines ECS components for the simulation.
package components

// Species tags which population an entity belongs to.
// Placement spacing is enforced between entities of the same species only.
type Species uint8

const (
	SpeciesPlant Species = iota + 1
	SpeciesHerbivore
)

// String returns the display name for a Species.
func (s Species) String() string {
	switch s {
	case SpeciesPlant:
		return "plant"
	case SpeciesHerbivore:
		return "herbivore"
	default:
		return "unknown"
	}
}

// Position represents an entity's world position.
// For dynamic bodies it is mirrored from the physics body after each step.
type Position struct {
	X, Y float64
}

// Heading is the body orientation in radians, mirrored for rendering.
type Heading struct {
	Angle float64
}

// Plant tag component for efficient querying.
type Plant struct{}

// Herbivore tag component for efficient querying.
type Herbivore struct{}
