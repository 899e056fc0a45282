package components

// Growth holds a plant's discrete growth stage.
// Level is always within [1, max]; Timer counts seconds until the next stage.
type Growth struct {
	Level int
	Timer float64
	Stage string // Sprite name currently shown for this plant
}

// FullGrown reports whether the plant has reached the terminal stage.
func (g *Growth) FullGrown(maxLevel int) bool {
	return g.Level >= maxLevel
}

// Reproduction holds a plant's seed-drop timer and backoff history.
type Reproduction struct {
	Timer     float64 // seconds until the next seed-drop attempt
	Successes int     // consecutive successful drops
	Fails     int     // consecutive failed drops
	Factor    float64 // delay multiplier, always >= 1
}

// NewReproduction returns reproduction state at baseline cadence.
func NewReproduction(delay float64) Reproduction {
	return Reproduction{Timer: delay, Factor: 1}
}

// Wander holds a herbivore's random-walk heading.
type Wander struct {
	Angle     float64 // facing angle in radians, [0, 2π)
	TurnTimer float64 // seconds until the next heading change
}
