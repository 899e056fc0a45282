package input

// Stack is an ordered set of modes with a permanent base at the bottom.
type Stack struct {
	modes []Mode
	state *State
}

// NewStack creates a stack with base as its bottom mode and enters it.
func NewStack(base Mode) *Stack {
	s := &Stack{modes: []Mode{base}, state: newState()}
	base.OnEnter(s.state)
	return s
}

// State returns the shared device state.
func (s *Stack) State() *State {
	return s.state
}

// Len returns the number of modes on the stack.
func (s *Stack) Len() int {
	return len(s.modes)
}

// Top returns the mode that receives events first.
func (s *Stack) Top() Mode {
	return s.modes[len(s.modes)-1]
}

// Push places m on top of the stack and enters it.
func (s *Stack) Push(m Mode) {
	s.modes = append(s.modes, m)
	m.OnEnter(s.state)
}

// Pop removes and exits the top mode. The base mode is never removed;
// popping a single-element stack is a no-op and returns nil.
func (s *Stack) Pop() Mode {
	if len(s.modes) <= 1 {
		return nil
	}
	top := s.Top()
	s.modes = s.modes[:len(s.modes)-1]
	top.OnExit(s.state)
	return top
}

// dispatch calls fn on each mode from the top down until one consumes.
func (s *Stack) dispatch(fn func(m Mode) bool) bool {
	for i := len(s.modes) - 1; i >= 0; i-- {
		if fn(s.modes[i]) {
			return true
		}
	}
	return false
}

// OnKeyPress records the key and dispatches it. Returns true if consumed.
func (s *Stack) OnKeyPress(key Key, mods Modifier) bool {
	s.state.Modifiers = mods
	s.state.Pressed[key] = true
	return s.dispatch(func(m Mode) bool { return m.OnKeyPress(key, mods, s.state) })
}

// OnKeyRelease clears the key and dispatches it. Returns true if consumed.
func (s *Stack) OnKeyRelease(key Key, mods Modifier) bool {
	s.state.Modifiers = mods
	delete(s.state.Pressed, key)
	return s.dispatch(func(m Mode) bool { return m.OnKeyRelease(key, mods, s.state) })
}

// OnMousePress records a held button.
func (s *Stack) OnMousePress(button MouseButton, x, y float64) {
	s.state.Buttons[button] = true
	s.state.MouseX, s.state.MouseY = x, y
}

// OnMouseRelease clears a held button.
func (s *Stack) OnMouseRelease(button MouseButton, x, y float64) {
	delete(s.state.Buttons, button)
	s.state.MouseX, s.state.MouseY = x, y
}

// OnMouseDrag records the cursor and dispatches the drag. Returns true if consumed.
func (s *Stack) OnMouseDrag(ev DragEvent) bool {
	s.state.MouseX, s.state.MouseY = ev.X, ev.Y
	s.state.Modifiers = ev.Mods
	return s.dispatch(func(m Mode) bool { return m.OnMouseDrag(ev, s.state) })
}

// OnMouseScroll records the cursor and dispatches the scroll. Returns true if consumed.
func (s *Stack) OnMouseScroll(ev ScrollEvent) bool {
	s.state.MouseX, s.state.MouseY = ev.X, ev.Y
	return s.dispatch(func(m Mode) bool { return m.OnMouseScroll(ev, s.state) })
}

// Update ticks every mode, top first.
func (s *Stack) Update(dt float64) {
	for i := len(s.modes) - 1; i >= 0; i-- {
		s.modes[i].Update(dt, s.state)
	}
}
