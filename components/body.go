package components

import "github.com/jakecoffman/cp"

// Body links an entity to its rigid body in the physics space.
type Body struct {
	Handle *cp.Body
}
