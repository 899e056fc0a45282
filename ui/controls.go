package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// MaxSpeed is the highest simulation speed multiplier offered by the panel.
const MaxSpeed = 10

// ControlsState is what the controls panel edits.
type ControlsState struct {
	Paused bool
	Speed  int
}

// ControlsAction reports one-shot requests made through the panel this frame.
type ControlsAction struct {
	ResetCamera bool
}

// ControlsPanel renders simulation controls with raygui widgets.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Contains reports whether a screen point lies on the panel.
// Mouse drags starting here should not pan the camera.
func (c *ControlsPanel) Contains(px, py float32) bool {
	return rl.CheckCollisionPointRec(rl.Vector2{X: px, Y: py}, c.bounds())
}

func (c *ControlsPanel) bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: float32(c.width), Height: 110}
}

// Draw renders the panel and applies widget input to state.
func (c *ControlsPanel) Draw(state *ControlsState) ControlsAction {
	r := c.renderer
	b := c.bounds()
	r.DrawPanel(c.x, c.y, c.width, int32(b.Height))

	pad := float32(r.Theme.Padding)
	x := b.X + pad
	y := b.Y + pad
	w := b.Width - pad*2

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: w/2 - 4, Height: 24}, label) {
		state.Paused = !state.Paused
	}

	var action ControlsAction
	if gui.Button(rl.Rectangle{X: x + w/2 + 4, Y: y, Width: w/2 - 4, Height: 24}, "Reset View") {
		action.ResetCamera = true
	}
	y += 34

	rl.DrawText("Speed", int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
	y += 16
	speed := gui.SliderBar(
		rl.Rectangle{X: x + 10, Y: y, Width: w - 50, Height: 16},
		"1", fmt.Sprintf("%dx", state.Speed),
		float32(state.Speed), 1, MaxSpeed,
	)
	state.Speed = min(max(int(speed+0.5), 1), MaxSpeed)

	return action
}
