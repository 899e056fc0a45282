package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/physics"
)

type placed struct{ x, y float64 }

// newPlacementFixture returns a placer over a 3000x3000 world whose spawner
// registers static plant bodies and records their positions.
func newPlacementFixture() (*Placer, *physics.Space, *[]placed, Spawner) {
	space := physics.NewSpace(physics.Bounds{Width: 3000, Height: 3000}, config.PhysicsConfig{Damping: 1, WallThickness: 2})
	var out []placed
	spawn := func(x, y float64) {
		space.AddStatic(x, y, 5, &physics.Owner{Species: components.SpeciesPlant})
		out = append(out, placed{x, y})
	}
	return NewPlacer(space), space, &out, spawn
}

var plantRule = PlacementRule{Species: components.SpeciesPlant, MinSpacing: 30, Padding: 20}

func TestTryPlaceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		points [][2]float64
		want   []bool
	}{
		{"outside padding", [][2]float64{{15, 1500}}, []bool{false}},
		{"on padding edge", [][2]float64{{20, 1500}, {2980, 2980}}, []bool{true, true}},
		{"too close", [][2]float64{{1500, 1500}, {1510, 1500}}, []bool{true, false}},
		{"far enough", [][2]float64{{1500, 1500}, {1540, 1500}}, []bool{true, true}},
		{"exactly min spacing", [][2]float64{{1500, 1500}, {1530, 1500}}, []bool{true, true}},
		{"diagonal too close", [][2]float64{{1500, 1500}, {1520, 1520}}, []bool{true, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, out, spawn := newPlacementFixture()
			for i, pt := range tt.points {
				got := p.TryPlace(pt[0], pt[1], plantRule, spawn)
				if got != tt.want[i] {
					t.Errorf("TryPlace(%v) = %v, want %v", pt, got, tt.want[i])
				}
			}
			wantCount := 0
			for _, w := range tt.want {
				if w {
					wantCount++
				}
			}
			if len(*out) != wantCount {
				t.Errorf("expected %d spawns, got %d", wantCount, len(*out))
			}
		})
	}
}

func TestTryPlaceIgnoresOtherSpecies(t *testing.T) {
	p, space, out, spawn := newPlacementFixture()
	space.AddDynamic(1500, 1500, 5, 1, &physics.Owner{Species: components.SpeciesHerbivore})

	if !p.TryPlace(1505, 1500, plantRule, spawn) {
		t.Error("expected plant placement next to a herbivore to succeed")
	}
	if len(*out) != 1 {
		t.Errorf("expected 1 spawn, got %d", len(*out))
	}
}

func TestTryPlaceSpacingInvariant(t *testing.T) {
	p, _, out, spawn := newPlacementFixture()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 3000; i++ {
		x := rng.Float64() * 600
		y := rng.Float64() * 600
		p.TryPlace(x, y, plantRule, spawn)
	}

	pts := *out
	if len(pts) < 10 {
		t.Fatalf("expected a meaningful number of placements, got %d", len(pts))
	}
	for i := range pts {
		a := pts[i]
		if a.x < plantRule.Padding || a.y < plantRule.Padding || a.x > 3000-plantRule.Padding || a.y > 3000-plantRule.Padding {
			t.Errorf("placement %v violates bounds", a)
		}
		for j := i + 1; j < len(pts); j++ {
			b := pts[j]
			d := math.Hypot(a.x-b.x, a.y-b.y)
			if d < plantRule.MinSpacing {
				t.Fatalf("placements %v and %v are %f apart, below %f", a, b, d, plantRule.MinSpacing)
			}
		}
	}
}

func TestClearWithoutSpacing(t *testing.T) {
	p, space, _, _ := newPlacementFixture()
	space.AddStatic(100, 100, 5, &physics.Owner{Species: components.SpeciesHerbivore})

	if !p.Clear(100, 100, components.SpeciesHerbivore, 0) {
		t.Error("zero spacing should always be clear")
	}
}
