package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
)

// ToggleID uniquely identifies a display toggle.
type ToggleID string

// Display toggles.
const (
	ToggleStar   ToggleID = "display_star"
	ToggleSparks ToggleID = "display_sparks"
	ToggleTrails ToggleID = "trails"
	ToggleOrtho  ToggleID = "ortho"
	ToggleHUD    ToggleID = "hud"
)

// ToggleDescriptor defines a display setting that can be switched on and off.
type ToggleDescriptor struct {
	ID       ToggleID
	Name     string // Display name
	Key      int32  // Keyboard key to toggle (0 = no key)
	KeyLabel string // Key label for display (e.g., "S")
	Category string // Grouping ("scene" or "view")
}

// ToggleRegistry manages toggle state and metadata.
type ToggleRegistry struct {
	descriptors []ToggleDescriptor
	byID        map[ToggleID]ToggleDescriptor
	enabled     map[ToggleID]bool
}

// NewToggleRegistry creates a registry with the standard toggles, initialised from
// the render and camera config.
func NewToggleRegistry(render config.RenderConfig, cam config.CameraConfig) *ToggleRegistry {
	r := &ToggleRegistry{
		byID:    make(map[ToggleID]ToggleDescriptor),
		enabled: make(map[ToggleID]bool),
	}

	r.Register(ToggleDescriptor{ID: ToggleStar, Name: "Display Star", Key: rl.KeyS, KeyLabel: "S", Category: "scene"}, render.DisplayStar)
	r.Register(ToggleDescriptor{ID: ToggleSparks, Name: "Display Sparks", Key: rl.KeyP, KeyLabel: "P", Category: "scene"}, render.DisplaySparks)
	r.Register(ToggleDescriptor{ID: ToggleTrails, Name: "Trails", Key: rl.KeyT, KeyLabel: "T", Category: "scene"}, render.Trails)
	r.Register(ToggleDescriptor{ID: ToggleOrtho, Name: "Orthographic", Key: rl.KeyO, KeyLabel: "O", Category: "view"}, cam.Ortho)
	r.Register(ToggleDescriptor{ID: ToggleHUD, Name: "HUD", Key: rl.KeyH, KeyLabel: "H", Category: "view"}, render.ShowHUD)

	return r
}

// Register adds a toggle with its initial state.
func (r *ToggleRegistry) Register(desc ToggleDescriptor, enabled bool) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = enabled
}

// Toggle flips a toggle and returns its new state.
func (r *ToggleRegistry) Toggle(id ToggleID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets a toggle's state.
func (r *ToggleRegistry) SetEnabled(id ToggleID, enabled bool) {
	if _, ok := r.byID[id]; ok {
		r.enabled[id] = enabled
	}
}

// IsEnabled returns whether a toggle is on.
func (r *ToggleRegistry) IsEnabled(id ToggleID) bool {
	return r.enabled[id]
}

// All returns all toggles in registration order.
func (r *ToggleRegistry) All() []ToggleDescriptor {
	return r.descriptors
}

// ByCategory returns toggles filtered by category.
func (r *ToggleRegistry) ByCategory(category string) []ToggleDescriptor {
	var result []ToggleDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *ToggleRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles the setting bound to key.
// Returns the toggle ID, its new state and whether a toggle occurred.
func (r *ToggleRegistry) HandleKeyPress(key int32) (ToggleID, bool, bool) {
	for _, desc := range r.descriptors {
		if desc.Key == key {
			return desc.ID, r.Toggle(desc.ID), true
		}
	}
	return "", false, false
}
