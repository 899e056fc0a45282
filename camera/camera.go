// Package camera provides a 2D camera for viewing a bounded world.
// The view is clamped so that at most Padding world units beyond the map
// edges are ever visible, and the map is centered when it is smaller than
// the view.
package camera

import (
	"fmt"

	"github.com/pthm-cable/evotales/config"
)

// ZoomDirection selects whether ApplyZoom magnifies or shrinks the view.
type ZoomDirection int

const (
	ZoomIn ZoomDirection = iota + 1
	ZoomOut
)

// String returns the config token for a direction.
func (d ZoomDirection) String() string {
	switch d {
	case ZoomIn:
		return "in"
	case ZoomOut:
		return "out"
	default:
		return fmt.Sprintf("ZoomDirection(%d)", int(d))
	}
}

// ParseZoomDirection converts "in" or "out" into a ZoomDirection.
func ParseZoomDirection(s string) (ZoomDirection, error) {
	switch s {
	case "in":
		return ZoomIn, nil
	case "out":
		return ZoomOut, nil
	default:
		return 0, fmt.Errorf("invalid zoom direction %q: only \"in\" or \"out\" are allowed", s)
	}
}

// PanKeys holds which directional keys are held this frame.
type PanKeys struct {
	Left, Right, Up, Down bool
}

// Camera controls the viewport into the simulation world.
// World y grows downward, matching screen space.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// World dimensions, set by Setup
	WorldW, WorldH float64

	// MinZoom is recomputed from the viewport; it never drops below the configured floor
	MinZoom, MaxZoom float64

	cfg   config.CameraConfig
	ready bool
}

// New creates a camera for the given viewport. Call Setup once the world
// size is known; until then movement and zoom are ignored.
func New(viewportW, viewportH float64, cfg config.CameraConfig) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   cfg.MinZoom,
		MaxZoom:   cfg.MaxZoom,
		cfg:       cfg,
	}
}

// Ready reports whether Setup has been called.
func (c *Camera) Ready() bool {
	return c.ready
}

// Setup binds the camera to a world and centers it.
func (c *Camera) Setup(worldW, worldH float64) {
	c.WorldW = worldW
	c.WorldH = worldH
	c.ready = true
	c.updateMinZoom()
	c.X, c.Y = worldW/2, worldH/2
	c.ClampPosition(c.X, c.Y)
}

// updateMinZoom fits the padded world into the viewport, never below the
// floor and never above MaxZoom. A world smaller than the viewport at
// MaxZoom pins both bounds to MaxZoom.
func (c *Camera) updateMinZoom() {
	fullW := c.WorldW + 2*c.cfg.Padding
	fullH := c.WorldH + 2*c.cfg.Padding
	fit := min(c.ViewportW/fullW, c.ViewportH/fullH)
	c.MinZoom = min(max(fit, c.cfg.MinZoom), c.MaxZoom)
	c.Zoom = clamp(c.Zoom, c.MinZoom, c.MaxZoom)
}

// HandleResize updates the viewport and re-clamps the view.
func (c *Camera) HandleResize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if !c.ready {
		return
	}
	c.updateMinZoom()
	c.ClampPosition(c.X, c.Y)
}

// Projection returns the visible rectangle relative to the camera center,
// in world units.
func (c *Camera) Projection() (left, right, top, bottom float64) {
	halfW := c.ViewportW / 2 / c.Zoom
	halfH := c.ViewportH / 2 / c.Zoom
	return -halfW, halfW, -halfH, halfH
}

// ApplyZoom multiplies or divides the zoom by the configured factor,
// keeping it within [MinZoom, MaxZoom]. It panics on an unknown direction.
func (c *Camera) ApplyZoom(dir ZoomDirection) {
	switch dir {
	case ZoomIn:
		c.Zoom = min(c.Zoom*c.cfg.ZoomFactor, c.MaxZoom)
	case ZoomOut:
		c.Zoom = max(c.Zoom/c.cfg.ZoomFactor, c.MinZoom)
	default:
		panic(fmt.Sprintf("camera: invalid zoom direction %v", dir))
	}
	c.ClampPosition(c.X, c.Y)
}

// HandleDrag moves the view by a screen-space delta.
// Dragging right reveals what lies to the left.
func (c *Camera) HandleDrag(dx, dy float64) {
	if !c.ready {
		return
	}
	c.ClampPosition(c.X-dx/c.Zoom, c.Y-dy/c.Zoom)
}

// UpdatePanning moves the view at PanRate world units per second
// for every held direction key.
func (c *Camera) UpdatePanning(keys PanKeys, dt float64) {
	if !c.ready {
		return
	}
	step := c.cfg.PanRate * dt
	var dx, dy float64
	if keys.Left {
		dx -= step
	}
	if keys.Right {
		dx += step
	}
	if keys.Up {
		dy -= step
	}
	if keys.Down {
		dy += step
	}
	if dx != 0 || dy != 0 {
		c.ClampPosition(c.X+dx, c.Y+dy)
	}
}

// ClampPosition moves the camera to (x, y), limited so the view stays
// within the padded world. An axis whose visible extent exceeds the padded
// world is pinned to the world center.
func (c *Camera) ClampPosition(x, y float64) {
	if !c.ready {
		c.X, c.Y = x, y
		return
	}
	left, right, top, bottom := c.Projection()
	pad := c.cfg.Padding
	c.X = clampAxis(x, right-left, -pad, c.WorldW+pad)
	c.Y = clampAxis(y, bottom-top, -pad, c.WorldH+pad)
}

// clampAxis keeps a view of the given extent inside [lo, hi].
func clampAxis(v, visible, lo, hi float64) float64 {
	if visible > hi-lo {
		return (lo + hi) / 2
	}
	return clamp(v, lo+visible/2, hi-visible/2)
}

// Reset re-centers the camera at the minimum zoom.
func (c *Camera) Reset() {
	c.Zoom = c.MinZoom
	c.ClampPosition(c.WorldW/2, c.WorldH/2)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	left, right, top, bottom := c.Projection()
	return c.X + left, c.Y + top, c.X + right, c.Y + bottom
}

// absf returns the absolute value of a float64.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
