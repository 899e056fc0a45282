// Package atlas maps sprite names to rectangles on a sprite sheet.
package atlas

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/evotales/config"
)

// Frame is a sprite rectangle within the sheet, in pixels.
type Frame struct {
	X, Y, W, H float32
}

// Atlas maps sprite names to their rectangles on a single sheet.
// It does not touch the GPU, so the simulation can consult it headless.
type Atlas struct {
	sheet  string
	frames map[string]Frame
}

// New builds an atlas from the sprite config.
func New(cfg config.SpritesConfig) (*Atlas, error) {
	a := &Atlas{sheet: cfg.Sheet, frames: make(map[string]Frame, len(cfg.Frames))}
	for name, f := range cfg.Frames {
		if f.W <= 0 || f.H <= 0 {
			return nil, fmt.Errorf("sprite %q has empty frame %dx%d", name, f.W, f.H)
		}
		if f.X < 0 || f.Y < 0 {
			return nil, fmt.Errorf("sprite %q has negative origin (%d, %d)", name, f.X, f.Y)
		}
		a.frames[name] = Frame{X: float32(f.X), Y: float32(f.Y), W: float32(f.W), H: float32(f.H)}
	}
	return a, nil
}

// Sheet returns the sprite sheet path.
func (a *Atlas) Sheet() string {
	return a.sheet
}

// Has reports whether a sprite with this name exists.
func (a *Atlas) Has(name string) bool {
	_, ok := a.frames[name]
	return ok
}

// Frame returns the rectangle for a sprite.
func (a *Atlas) Frame(name string) (Frame, bool) {
	f, ok := a.frames[name]
	return f, ok
}

// Names returns all sprite names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.frames))
	for name := range a.frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
