package ui

import (
	"strings"

	"github.com/pthm-cable/evotales/input"
)

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlaySpacing    OverlayID = "spacing"
	OverlaySeedRange  OverlayID = "seed_range"
	OverlayHeadings   OverlayID = "headings"
	OverlayBodies     OverlayID = "bodies"
	OverlayPopulation OverlayID = "population"
	OverlayPerf       OverlayID = "perf"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID          OverlayID   // Unique identifier
	Name        string      // Display name
	Description string      // What this overlay shows
	Key         input.Key   // Key that toggles it (KeyUnknown = none)
	KeyLabel    string      // Key label for display
	Category    string      // Grouping (e.g., "debug", "panels")
	Exclusive   []OverlayID // Other overlays to disable when this is enabled
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
// The population panel starts enabled.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	reg.SetEnabled(OverlayPopulation, true)
	return reg
}

func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:          OverlaySpacing,
		Name:        "Spacing",
		Description: "Minimum spacing ring around each plant",
		Key:         input.KeyG,
		KeyLabel:    "G",
		Category:    "debug",
		Exclusive:   []OverlayID{OverlaySeedRange},
	})
	r.Register(OverlayDescriptor{
		ID:          OverlaySeedRange,
		Name:        "Seed Range",
		Description: "Seed drop annulus around full-grown plants",
		Key:         input.KeyK,
		KeyLabel:    "K",
		Category:    "debug",
		Exclusive:   []OverlayID{OverlaySpacing},
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayHeadings,
		Name:        "Headings",
		Description: "Herbivore facing direction",
		Key:         input.KeyH,
		KeyLabel:    "H",
		Category:    "debug",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayBodies,
		Name:        "Bodies",
		Description: "Physics body outlines",
		Key:         input.KeyB,
		KeyLabel:    "B",
		Category:    "debug",
	})

	r.Register(OverlayDescriptor{
		ID:          OverlayPopulation,
		Name:        "Population",
		Description: "Latest telemetry window",
		Key:         input.KeyT,
		KeyLabel:    "T",
		Category:    "panels",
	})
	r.Register(OverlayDescriptor{
		ID:          OverlayPerf,
		Name:        "Phase Timing",
		Description: "Per-phase tick timing",
		Key:         input.KeyP,
		KeyLabel:    "P",
		Category:    "panels",
	})
}

// Register adds an overlay to the registry. Duplicate IDs are ignored.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	if _, exists := r.byID[desc.ID]; exists {
		return
	}
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.byID[id]
	if !ok {
		return
	}

	r.enabled[id] = enabled
	if enabled {
		for _, excl := range desc.Exclusive {
			r.enabled[excl] = false
		}
	}
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// All returns all registered overlays in registration order.
func (r *OverlayRegistry) All() []OverlayDescriptor {
	return r.descriptors
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Bindings returns an input mode that toggles each overlay on its key.
func (r *OverlayRegistry) Bindings() *input.BindingsMode {
	mode := input.NewBindingsMode("overlays")
	for _, desc := range r.descriptors {
		if desc.Key == input.KeyUnknown {
			continue
		}
		mode.Bind(desc.Key, func() { r.Toggle(desc.ID) })
	}
	return mode
}

// Categories returns the distinct overlay categories in registration order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// Legend lists overlay keys grouped by category, marking enabled overlays
// with "*", e.g. "debug: G Spacing* K Seed Range || panels: T Population*".
func (r *OverlayRegistry) Legend() string {
	var groups []string
	for _, cat := range r.Categories() {
		var keys []string
		for _, desc := range r.ByCategory(cat) {
			if desc.KeyLabel == "" {
				continue
			}
			mark := ""
			if r.enabled[desc.ID] {
				mark = "*"
			}
			keys = append(keys, desc.KeyLabel+" "+desc.Name+mark)
		}
		if len(keys) > 0 {
			groups = append(groups, cat+": "+strings.Join(keys, " "))
		}
	}
	return strings.Join(groups, " || ")
}
