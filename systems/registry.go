package systems

// Phase IDs, shared by the update loop and the perf collector.
const (
	PhaseGrowth       = "growth"
	PhaseReproduction = "reproduction"
	PhaseMovement     = "movement"
	PhasePhysics      = "physics"
)

// SystemInfo describes a simulation phase for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this phase does
	Category    string // Grouping (e.g., "flora", "fauna")
}

// SystemRegistry holds metadata about all phases.
// This centralizes naming so the HUD and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known phases.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds the phases in the order they run each tick.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: PhaseGrowth, Name: "Growth", Description: "Advances plant growth stages", Category: "flora"})
	r.Register(SystemInfo{ID: PhaseReproduction, Name: "Reproduction", Description: "Drops seeds and adapts delay", Category: "flora"})
	r.Register(SystemInfo{ID: PhaseMovement, Name: "Movement", Description: "Steers wandering herbivores", Category: "fauna"})
	r.Register(SystemInfo{ID: PhasePhysics, Name: "Physics", Description: "Steps the rigid-body space", Category: "core"})
}

// Register adds a phase to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	if _, exists := r.byID[info.ID]; exists {
		return
	}
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns phase info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// ByCategory returns phases filtered by category.
func (r *SystemRegistry) ByCategory(category string) []SystemInfo {
	var result []SystemInfo
	for _, info := range r.systems {
		if info.Category == category {
			result = append(result, info)
		}
	}
	return result
}

// Categories returns the distinct categories in registration order.
func (r *SystemRegistry) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, info := range r.systems {
		if !seen[info.Category] {
			seen[info.Category] = true
			cats = append(cats, info.Category)
		}
	}
	return cats
}

// IDs returns all phase IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
