package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evotales/config"
)

func testConfig() config.CameraConfig {
	return config.CameraConfig{
		ZoomFactor: 1.2,
		PanRate:    300,
		MinZoom:    0.1,
		MaxZoom:    4,
		Padding:    20,
	}
}

func newTestCamera() *Camera {
	cam := New(800, 600, testConfig())
	cam.Setup(3000, 3000)
	return cam
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSetup(t *testing.T) {
	cam := newTestCamera()

	// Centered on world
	if cam.X != 1500 || cam.Y != 1500 {
		t.Errorf("expected camera at (1500, 1500), got (%f, %f)", cam.X, cam.Y)
	}

	want := math.Min(800.0/3040.0, 600.0/3040.0)
	if !near(cam.MinZoom, want) {
		t.Errorf("expected MinZoom %f, got %f", want, cam.MinZoom)
	}
	if !cam.Ready() {
		t.Error("expected camera ready after Setup")
	}
}

func TestMinZoomFloor(t *testing.T) {
	cam := New(100, 100, testConfig())
	cam.Setup(3000, 3000)

	// 100/3040 is below the configured floor
	if cam.MinZoom != 0.1 {
		t.Errorf("expected MinZoom clamped to floor 0.1, got %f", cam.MinZoom)
	}
}

func TestZoomOutStopsAtMinZoom(t *testing.T) {
	cam := newTestCamera()

	for i := 0; i < 50; i++ {
		cam.ApplyZoom(ZoomOut)
	}
	if !near(cam.Zoom, cam.MinZoom) {
		t.Fatalf("expected zoom at MinZoom %f, got %f", cam.MinZoom, cam.Zoom)
	}

	before := cam.Zoom
	cam.ApplyZoom(ZoomOut)
	if cam.Zoom != before {
		t.Errorf("zoom changed past MinZoom: %f -> %f", before, cam.Zoom)
	}
}

func TestZoomInStopsAtMaxZoom(t *testing.T) {
	cam := newTestCamera()

	for i := 0; i < 50; i++ {
		cam.ApplyZoom(ZoomIn)
	}
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom at MaxZoom %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestZoomBoundsRandomSequence(t *testing.T) {
	cam := newTestCamera()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		if rng.Intn(2) == 0 {
			cam.ApplyZoom(ZoomIn)
		} else {
			cam.ApplyZoom(ZoomOut)
		}
		if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
			t.Fatalf("zoom %f outside [%f, %f]", cam.Zoom, cam.MinZoom, cam.MaxZoom)
		}
	}
}

func TestZoomBoundsSmallWorld(t *testing.T) {
	tests := []struct {
		name           string
		worldW, worldH float64
		viewW, viewH   float64
	}{
		{"world smaller than viewport", 100, 100, 800, 600},
		{"tiny world", 10, 10, 800, 600},
		{"narrow world", 50, 3000, 800, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := New(tt.viewW, tt.viewH, testConfig())
			cam.Setup(tt.worldW, tt.worldH)

			check := func(step string) {
				t.Helper()
				if cam.MinZoom > cam.MaxZoom {
					t.Fatalf("%s: MinZoom %f above MaxZoom %f", step, cam.MinZoom, cam.MaxZoom)
				}
				if cam.Zoom < cam.MinZoom || cam.Zoom > cam.MaxZoom {
					t.Fatalf("%s: zoom %f outside [%f, %f]", step, cam.Zoom, cam.MinZoom, cam.MaxZoom)
				}
			}

			check("setup")
			for i := 0; i < 5; i++ {
				cam.ApplyZoom(ZoomIn)
				check("zoom in")
			}
			for i := 0; i < 10; i++ {
				cam.ApplyZoom(ZoomOut)
				check("zoom out")
			}
			cam.HandleResize(tt.viewW*2, tt.viewH*2)
			check("resize")
		})
	}
}

func TestApplyZoomInvalidPanics(t *testing.T) {
	cam := newTestCamera()
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid zoom direction")
		}
	}()
	cam.ApplyZoom(ZoomDirection(99))
}

func TestParseZoomDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    ZoomDirection
		wantErr bool
	}{
		{"in", ZoomIn, false},
		{"out", ZoomOut, false},
		{"sideways", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseZoomDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseZoomDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseZoomDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClampPositionIdempotent(t *testing.T) {
	cam := newTestCamera()
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			cam.ApplyZoom(ZoomIn)
		} else {
			cam.ApplyZoom(ZoomOut)
		}
		cam.ClampPosition(rng.Float64()*6000-1500, rng.Float64()*6000-1500)
		x, y := cam.X, cam.Y
		cam.ClampPosition(x, y)
		if cam.X != x || cam.Y != y {
			t.Fatalf("clamp not idempotent: (%f,%f) -> (%f,%f)", x, y, cam.X, cam.Y)
		}
	}
}

func TestClampKeepsViewInPaddedWorld(t *testing.T) {
	cam := newTestCamera()
	cam.ApplyZoom(ZoomIn)

	cam.ClampPosition(-1000, 5000)
	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if minX < -20-1e-9 || maxY > 3020+1e-9 {
		t.Errorf("view (%f,%f)-(%f,%f) extends past padded world", minX, minY, maxX, maxY)
	}
	if !near(minX, -20) {
		t.Errorf("expected view pinned to left padded edge, got minX %f", minX)
	}
	if !near(maxY, 3020) {
		t.Errorf("expected view pinned to bottom padded edge, got maxY %f", maxY)
	}
}

func TestClampCentersSmallWorld(t *testing.T) {
	cam := New(800, 600, testConfig())
	cam.Setup(200, 1000)

	// Width fits entirely, so the x axis is pinned to center
	cam.ClampPosition(0, 0)
	if cam.X != 100 {
		t.Errorf("expected x pinned to center 100, got %f", cam.X)
	}
}

func TestHandleDrag(t *testing.T) {
	cam := newTestCamera()
	cam.ApplyZoom(ZoomIn)
	cam.ApplyZoom(ZoomIn)
	zoom := cam.Zoom

	cam.HandleDrag(100, -50)

	// Drag right moves view left
	if !near(cam.X, 1500-100/zoom) {
		t.Errorf("expected X %f, got %f", 1500-100/zoom, cam.X)
	}
	if !near(cam.Y, 1500+50/zoom) {
		t.Errorf("expected Y %f, got %f", 1500+50/zoom, cam.Y)
	}
}

func TestUpdatePanning(t *testing.T) {
	cam := newTestCamera()
	cam.ApplyZoom(ZoomIn)

	cam.UpdatePanning(PanKeys{Right: true, Up: true}, 0.5)
	if !near(cam.X, 1650) || !near(cam.Y, 1350) {
		t.Errorf("expected (1650, 1350), got (%f, %f)", cam.X, cam.Y)
	}

	// Opposite keys cancel
	cam.UpdatePanning(PanKeys{Left: true, Right: true}, 1)
	if !near(cam.X, 1650) {
		t.Errorf("expected X unchanged, got %f", cam.X)
	}
}

func TestUnreadyCameraIgnoresMovement(t *testing.T) {
	cam := New(800, 600, testConfig())
	cam.HandleDrag(100, 100)
	cam.UpdatePanning(PanKeys{Left: true}, 1)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected no movement before Setup, got (%f, %f)", cam.X, cam.Y)
	}
}

func TestHandleResize(t *testing.T) {
	cam := newTestCamera()

	cam.HandleResize(1600, 1200)

	want := math.Min(1600.0/3040.0, 1200.0/3040.0)
	if !near(cam.MinZoom, want) {
		t.Errorf("expected MinZoom %f, got %f", want, cam.MinZoom)
	}
	if cam.Zoom < cam.MinZoom {
		t.Errorf("zoom %f below new MinZoom %f", cam.Zoom, cam.MinZoom)
	}
	left, right, top, bottom := cam.Projection()
	if !near(right-left, 1600/cam.Zoom) || !near(bottom-top, 1200/cam.Zoom) {
		t.Errorf("projection %fx%f does not match viewport / zoom", right-left, bottom-top)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := newTestCamera()

	sx, sy := cam.WorldToScreen(cam.X, cam.Y)
	if !near(sx, 400) || !near(sy, 300) {
		t.Errorf("expected screen center (400, 300), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := newTestCamera()
	cam.ApplyZoom(ZoomIn)

	testCases := []struct{ sx, sy float64 }{
		{400, 300},
		{10, 10},
		{790, 590},
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(sx-tc.sx) > 1e-6 || math.Abs(sy-tc.sy) > 1e-6 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestIsVisible(t *testing.T) {
	cam := newTestCamera()
	cam.Zoom = 1
	cam.ClampPosition(1500, 1500)

	if !cam.IsVisible(1500, 1500, 0) {
		t.Error("camera center should be visible")
	}
	if cam.IsVisible(2000, 1500, 10) {
		t.Error("point 500 units right at zoom 1 should be culled")
	}
	if !cam.IsVisible(1905, 1500, 10) {
		t.Error("circle overlapping the right edge should be visible")
	}
}
