package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evotales/input"
)

// keyMap translates raylib keys into input keys.
var keyMap = map[int32]input.Key{
	rl.KeyLeft:       input.KeyLeft,
	rl.KeyRight:      input.KeyRight,
	rl.KeyUp:         input.KeyUp,
	rl.KeyDown:       input.KeyDown,
	rl.KeyX:          input.KeyX,
	rl.KeyZ:          input.KeyZ,
	rl.KeySpace:      input.KeySpace,
	rl.KeyEqual:      input.KeyEqual,
	rl.KeyKpAdd:      input.KeyEqual,
	rl.KeyMinus:      input.KeyMinus,
	rl.KeyKpSubtract: input.KeyMinus,
	rl.KeyR:          input.KeyR,
	rl.KeyEscape:     input.KeyEscape,
	rl.KeyB:          input.KeyB,
	rl.KeyG:          input.KeyG,
	rl.KeyH:          input.KeyH,
	rl.KeyK:          input.KeyK,
	rl.KeyP:          input.KeyP,
	rl.KeyT:          input.KeyT,
}

var buttonMap = map[rl.MouseButton]input.MouseButton{
	rl.MouseButtonLeft:   input.MouseLeft,
	rl.MouseButtonRight:  input.MouseRight,
	rl.MouseButtonMiddle: input.MouseMiddle,
}

// handleInput polls raylib and feeds the events into the mode stack.
func (g *Game) handleInput(dt float64) {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	mods := currentModifiers()
	for rlKey, key := range keyMap {
		if rl.IsKeyPressed(rlKey) {
			g.input.OnKeyPress(key, mods)
		}
		if rl.IsKeyReleased(rlKey) {
			g.input.OnKeyRelease(key, mods)
		}
	}

	g.handleMouse(mods)
	g.input.Update(dt)
}

// handleMouse forwards button, drag and wheel events.
func (g *Game) handleMouse(mods input.Modifier) {
	mouse := rl.GetMousePosition()
	mx, my := float64(mouse.X), float64(mouse.Y)

	var held []input.MouseButton
	for rlButton, button := range buttonMap {
		if rl.IsMouseButtonPressed(rlButton) {
			switch button {
			case input.MouseLeft:
				g.dragBlocked = g.controlsPanel != nil && g.controlsPanel.Contains(mouse.X, mouse.Y)
				g.pressX, g.pressY = mouse.X, mouse.Y
			case input.MouseRight:
				g.inspector.Deselect()
			}
			g.input.OnMousePress(button, mx, my)
		}
		if rl.IsMouseButtonReleased(rlButton) {
			if button == input.MouseLeft && !g.dragBlocked && isClick(g.pressX, g.pressY, mouse.X, mouse.Y) {
				g.selectAt(mx, my)
			}
			g.input.OnMouseRelease(button, mx, my)
		}
		if rl.IsMouseButtonDown(rlButton) {
			held = append(held, button)
		}
	}

	delta := rl.GetMouseDelta()
	if len(held) > 0 && (delta.X != 0 || delta.Y != 0) && !g.dragBlocked {
		g.input.OnMouseDrag(input.DragEvent{
			X:       mx,
			Y:       my,
			DX:      float64(delta.X),
			DY:      float64(delta.Y),
			Buttons: held,
			Mods:    mods,
		})
	}

	if wheel := rl.GetMouseWheelMoveV(); wheel.X != 0 || wheel.Y != 0 {
		g.input.OnMouseScroll(input.ScrollEvent{
			X:       mx,
			Y:       my,
			ScrollX: float64(wheel.X),
			ScrollY: float64(wheel.Y),
		})
	}
}

// clickSlop is how far in pixels the cursor may move for a press to count as a click.
const clickSlop = 4

func isClick(x0, y0, x1, y1 float32) bool {
	dx, dy := x1-x0, y1-y0
	return dx*dx+dy*dy <= clickSlop*clickSlop
}

// selectAt inspects the organism under a screen point, if any.
func (g *Game) selectAt(sx, sy float64) {
	wx, wy := g.camera.ScreenToWorld(sx, sy)
	radius := max(g.cfg.Plant.BodyRadius, g.cfg.Herbivore.BodyRadius) + 4
	if owner, ok := g.world.OrganismAt(wx, wy, radius); ok {
		g.inspector.Select(owner)
	}
}

func currentModifiers() input.Modifier {
	var mods input.Modifier
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		mods |= input.ModShift
	}
	if rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) {
		mods |= input.ModCtrl
	}
	if rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt) {
		mods |= input.ModAlt
	}
	return mods
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.HandleResize(float64(w), float64(h))
	g.layoutPanels()
}
