// Package input routes device events through an ordered stack of modes.
// Events bubble from the top mode downward until one reports them consumed.
package input

// Key identifies a keyboard key independent of the window backend.
type Key int32

const (
	KeyUnknown Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyX
	KeyZ
	KeySpace
	KeyEqual
	KeyMinus
	KeyR
	KeyEscape
	KeyB
	KeyG
	KeyH
	KeyK
	KeyP
	KeyT
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// State is the device state shared by every mode.
type State struct {
	Pressed   map[Key]bool
	Buttons   map[MouseButton]bool
	MouseX    float64
	MouseY    float64
	Modifiers Modifier
}

func newState() *State {
	return &State{
		Pressed: make(map[Key]bool),
		Buttons: make(map[MouseButton]bool),
	}
}

// Held reports whether key is currently down.
func (s *State) Held(key Key) bool {
	return s.Pressed[key]
}

// DragEvent is a mouse move while at least one button is held.
type DragEvent struct {
	X, Y    float64 // cursor position in screen pixels
	DX, DY  float64 // movement since the last event
	Buttons []MouseButton
	Mods    Modifier
}

// ScrollEvent is a mouse wheel movement.
type ScrollEvent struct {
	X, Y             float64
	ScrollX, ScrollY float64
}

// Mode handles events for one interaction context.
// Handlers return true when the event is consumed.
type Mode interface {
	Name() string
	OnEnter(s *State)
	OnExit(s *State)
	OnKeyPress(key Key, mods Modifier, s *State) bool
	OnKeyRelease(key Key, mods Modifier, s *State) bool
	OnMouseDrag(ev DragEvent, s *State) bool
	OnMouseScroll(ev ScrollEvent, s *State) bool
	Update(dt float64, s *State)
}

// BaseMode implements Mode with handlers that consume nothing.
// Embed it and override the handlers a mode cares about.
type BaseMode struct{}

func (BaseMode) Name() string { return "base" }
func (BaseMode) OnEnter(*State) {}
func (BaseMode) OnExit(*State) {}
func (BaseMode) OnKeyPress(Key, Modifier, *State) bool { return false }
func (BaseMode) OnKeyRelease(Key, Modifier, *State) bool { return false }
func (BaseMode) OnMouseDrag(DragEvent, *State) bool { return false }
func (BaseMode) OnMouseScroll(ScrollEvent, *State) bool { return false }
func (BaseMode) Update(float64, *State) {}
