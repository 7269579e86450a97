package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flurry/config"
)

// ControlsPanel renders the right-side panel with the streams slider and display
// toggles.
type ControlsPanel struct {
	renderer *Renderer
	y        int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(y, width int32, visible bool) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		y:        y,
		width:    width,
		visible:  visible,
	}
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel against the right edge of the screen and returns the
// stream count selected on the slider. Checkbox changes are written straight to
// toggles.
func (c *ControlsPanel) Draw(screenW int32, streams int, toggles *ToggleRegistry) int {
	if !c.visible {
		return streams
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	x := screenW - c.width - padding

	rows := int32(len(toggles.All()) + len(toggles.Categories()) + 3)
	r.DrawPanel(x, c.y, c.width, rows*lineHeight+padding*2)

	y := c.y + padding
	rl.DrawText("Flurry", x+padding, y, 16, rl.White)
	y += lineHeight + 4

	// Streams slider
	inner := float32(c.width - padding*2)
	value := gui.SliderBar(
		rl.Rectangle{X: float32(x + padding + 50), Y: float32(y), Width: inner - 80, Height: 14},
		"Streams", fmt.Sprintf("%d", streams),
		float32(streams), 1, config.MaxStreams,
	)
	streams = int(value + 0.5)
	y += lineHeight

	for _, category := range toggles.Categories() {
		y = r.DrawSectionHeader(x+padding, y, categoryLabel(category))
		for _, desc := range toggles.ByCategory(category) {
			label := fmt.Sprintf("%s [%s]", desc.Name, desc.KeyLabel)
			bounds := rl.Rectangle{X: float32(x + padding), Y: float32(y), Width: 12, Height: 12}
			checked := gui.CheckBox(bounds, label, toggles.IsEnabled(desc.ID))
			toggles.SetEnabled(desc.ID, checked)
			y += lineHeight
		}
	}

	return streams
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "scene":
		return "Scene"
	case "view":
		return "View"
	default:
		return cat
	}
}
