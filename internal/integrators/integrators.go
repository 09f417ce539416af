// Package integrators advances bodies through one timestep. All
// integrators here are stateless: every step is a pure function of the
// bodies, the acceleration field, and dt.
package integrators

import (
	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/geometry"
)

// AccelFunc reports the acceleration at a position. ok is false where
// the field is undefined, in which case the velocity update is skipped
// for that body and the position still advances.
type AccelFunc func(pos geometry.Vec) (geometry.Vec, bool)

// Integrator advances every body in the store by one timestep.
type Integrator interface {
	Name() string
	Step(bodies *body.Store, accel AccelFunc, dt float64)
}
