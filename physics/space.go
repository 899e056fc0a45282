// Package physics adapts the Chipmunk2D rigid-body space to the simulation.
// It is the only place that touches the engine: body creation, bounding-box
// queries, owner lookup, motion writes and the per-tick step.
package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
)

// CollisionWall is the collision type of the world boundary segments.
// Entity shapes use their species value as collision type.
const CollisionWall cp.CollisionType = 100

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float64
}

// Center returns the midpoint of the world.
func (b Bounds) Center() (x, y float64) {
	return b.Width / 2, b.Height / 2
}

// Owner maps a body back to the entity that owns it.
// Stored in the body's UserData.
type Owner struct {
	Entity  ecs.Entity
	Species components.Species
}

// Space wraps a cp.Space with the world boundary already in place.
type Space struct {
	space  *cp.Space
	bounds Bounds
	bodies int
}

// NewSpace creates a physics space enclosing the given bounds with static walls.
func NewSpace(bounds Bounds, cfg config.PhysicsConfig) *Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	if cfg.Damping > 0 {
		space.SetDamping(cfg.Damping)
	}

	s := &Space{space: space, bounds: bounds}
	s.addWalls(cfg.WallThickness)
	return s
}

// addWalls encloses the world in four static segments.
func (s *Space) addWalls(radius float64) {
	w, h := s.bounds.Width, s.bounds.Height
	corners := []cp.Vector{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%len(corners)]
		wall := s.space.AddShape(cp.NewSegment(s.space.StaticBody, a, b, radius))
		wall.SetElasticity(0.5)
		wall.SetFriction(0.5)
		wall.SetCollisionType(CollisionWall)
	}
}

// Bounds returns the world bounds the space was built for.
func (s *Space) Bounds() Bounds {
	return s.bounds
}

// BodyCount returns the number of entity bodies added to the space.
func (s *Space) BodyCount() int {
	return s.bodies
}

// AddStatic creates an immovable circular body at (x, y).
func (s *Space) AddStatic(x, y, radius float64, owner *Owner) *cp.Body {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: x, Y: y})
	return s.attach(body, radius, owner)
}

// AddDynamic creates a movable circular body at (x, y).
func (s *Space) AddDynamic(x, y, radius, mass float64, owner *Owner) *cp.Body {
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	return s.attach(body, radius, owner)
}

func (s *Space) attach(body *cp.Body, radius float64, owner *Owner) *cp.Body {
	body.UserData = owner
	s.space.AddBody(body)
	shape := s.space.AddShape(cp.NewCircle(body, radius, cp.Vector{}))
	shape.SetCollisionType(cp.CollisionType(owner.Species))
	shape.SetFriction(0.7)
	s.bodies++
	return body
}

// QueryBox calls fn for every entity body whose shape bounding box intersects
// the square of the given half-width centered on (x, y).
// Wall segments are skipped. Candidates are not distance-filtered.
func (s *Space) QueryBox(x, y, halfWidth float64, fn func(owner *Owner, px, py float64)) {
	bb := cp.NewBBForExtents(cp.Vector{X: x, Y: y}, halfWidth, halfWidth)
	s.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		body := shape.Body()
		owner, ok := body.UserData.(*Owner)
		if !ok {
			return
		}
		p := body.Position()
		fn(owner, p.X, p.Y)
	}, nil)
}

// OwnerOf returns the entity owner stored on a body, if any.
func OwnerOf(body *cp.Body) (*Owner, bool) {
	if body == nil {
		return nil, false
	}
	owner, ok := body.UserData.(*Owner)
	return owner, ok
}

// SetMotion writes velocity and orientation into a dynamic body.
func SetMotion(body *cp.Body, vx, vy, angle float64) {
	body.SetVelocity(vx, vy)
	body.SetAngle(angle)
}

// Step advances every body in the space by dt seconds.
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}
