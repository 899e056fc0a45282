package input

import "github.com/pthm-cable/evotales/camera"

// CameraController is the part of the camera a CameraMode drives.
type CameraController interface {
	Ready() bool
	ApplyZoom(dir camera.ZoomDirection)
	HandleDrag(dx, dy float64)
	UpdatePanning(keys camera.PanKeys, dt float64)
}

// CameraMode pans and zooms the camera.
//
//	X / wheel up:    zoom in
//	Z / wheel down:  zoom out
//	drag:            pan
//	arrow keys:      pan while held
type CameraMode struct {
	BaseMode
	cam CameraController
}

// NewCameraMode creates a mode bound to cam.
func NewCameraMode(cam CameraController) *CameraMode {
	return &CameraMode{cam: cam}
}

func (m *CameraMode) Name() string { return "camera" }

// OnKeyPress handles the zoom keys. Before the camera is set up every key
// is swallowed.
func (m *CameraMode) OnKeyPress(key Key, _ Modifier, _ *State) bool {
	if !m.cam.Ready() {
		return true
	}
	switch key {
	case KeyX:
		m.cam.ApplyZoom(camera.ZoomIn)
		return true
	case KeyZ:
		m.cam.ApplyZoom(camera.ZoomOut)
		return true
	}
	return false
}

func (m *CameraMode) OnMouseDrag(ev DragEvent, _ *State) bool {
	if m.cam.Ready() {
		m.cam.HandleDrag(ev.DX, ev.DY)
	}
	return true
}

func (m *CameraMode) OnMouseScroll(ev ScrollEvent, _ *State) bool {
	if !m.cam.Ready() {
		return true
	}
	switch {
	case ev.ScrollY > 0:
		m.cam.ApplyZoom(camera.ZoomIn)
	case ev.ScrollY < 0:
		m.cam.ApplyZoom(camera.ZoomOut)
	}
	return true
}

func (m *CameraMode) Update(dt float64, s *State) {
	if !m.cam.Ready() {
		return
	}
	m.cam.UpdatePanning(camera.PanKeys{
		Left:  s.Held(KeyLeft),
		Right: s.Held(KeyRight),
		Up:    s.Held(KeyUp),
		Down:  s.Held(KeyDown),
	}, dt)
}

// BindingsMode runs an action for each bound key press and lets every
// other event fall through to the modes below.
type BindingsMode struct {
	BaseMode
	name     string
	bindings map[Key]func()
}

// NewBindingsMode creates a named mode with no bindings.
func NewBindingsMode(name string) *BindingsMode {
	return &BindingsMode{name: name, bindings: make(map[Key]func())}
}

// Bind sets the action for key, replacing any earlier one.
func (m *BindingsMode) Bind(key Key, action func()) *BindingsMode {
	m.bindings[key] = action
	return m
}

func (m *BindingsMode) Name() string { return m.name }

func (m *BindingsMode) OnKeyPress(key Key, _ Modifier, _ *State) bool {
	action, ok := m.bindings[key]
	if !ok {
		return false
	}
	action()
	return true
}
