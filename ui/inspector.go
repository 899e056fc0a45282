package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/physics"
	"github.com/pthm-cable/evotales/world"
)

// Inspector shows the state of one selected organism.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32

	selected    physics.Owner
	hasSelected bool
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Select makes owner the inspected organism.
func (ins *Inspector) Select(owner physics.Owner) {
	ins.selected = owner
	ins.hasSelected = true
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
}

// Selected returns the currently selected organism.
func (ins *Inspector) Selected() (physics.Owner, bool) {
	return ins.selected, ins.hasSelected
}

// Draw renders the panel for in. maxLevel is the terminal growth level.
func (ins *Inspector) Draw(in world.Inspection, maxLevel int) {
	r := ins.renderer
	pad := r.Theme.Padding

	lines := int32(4)
	if in.Owner.Species == components.SpeciesPlant {
		lines = 8
	}
	r.DrawPanel(ins.x, ins.y, ins.width, r.Theme.LineHeight*lines+pad*2)

	x := ins.x + pad
	y := r.DrawSectionHeader(x, ins.y+pad, in.Owner.Species.String())
	y = r.DrawLabelValue(x, y, "Entity", fmt.Sprintf("%d", in.Owner.Entity.ID()))
	y = r.DrawLabelValue(x, y, "Position", fmt.Sprintf("(%.0f, %.0f)", in.Position.X, in.Position.Y))

	switch in.Owner.Species {
	case components.SpeciesPlant:
		g, rep := in.Growth, in.Reproduction
		inner := ins.width - pad*2
		y = r.DrawBar(x, y, "Growth", float32(g.Level)/float32(maxLevel), inner)
		y = r.DrawLabelValue(x, y, "Stage", fmt.Sprintf("%d / %d (%s)", g.Level, maxLevel, g.Stage))
		if g.FullGrown(maxLevel) {
			y = r.DrawLabelValue(x, y, "Next seed", fmt.Sprintf("%.1fs", rep.Timer))
		} else {
			y = r.DrawLabelValue(x, y, "Next stage", fmt.Sprintf("%.1fs", g.Timer))
		}
		y = r.DrawLabelValue(x, y, "Delay factor", fmt.Sprintf("%.2f", rep.Factor))
		r.DrawLabelValue(x, y, "Streak", fmt.Sprintf("+%d / -%d", rep.Successes, rep.Fails))
	case components.SpeciesHerbivore:
		deg := math.Mod(in.Heading*180/math.Pi+360, 360)
		r.DrawLabelValue(x, y, "Heading", fmt.Sprintf("%.0f°", deg))
	}
}
