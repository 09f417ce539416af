// Package newton is the embedding surface of the simulation engine:
// an opaque handle over a gravity field, made for hosts that drive the
// simulation across a binary boundary.
//
// The handle never panics and never returns an error. Invalid
// construction yields a nil handle, invalid mutations are silent
// no-ops, and queries for unknown bodies return the origin. A nil or
// destroyed handle behaves like an empty, inert field, so a host that
// ignores the nil check cannot crash.
//
// A handle is not safe for concurrent use. Distinct handles share
// nothing and may be driven from different goroutines.
package newton

import "github.com/johnxnguyen/newton/internal/field"

// Field is a handle to one simulation: bodies orbiting a fixed
// central mass at the origin.
type Field struct {
	f *field.Field
}

// NewField creates a simulation with the given gravitational constant,
// central mass, and force-distance clamp bounds. It returns nil unless
// g > 0, solarMass > 0, and 0 < minDist < maxDist.
func NewField(g, solarMass, minDist, maxDist float64) *Field {
	f, err := field.New(g, solarMass, minDist, maxDist)
	if err != nil {
		return nil
	}
	return &Field{f: f}
}

// Destroy releases the field and every body it owns. The handle stays
// valid to call but every later operation is a no-op.
func (h *Field) Destroy() {
	if h != nil {
		h.f = nil
	}
}

func (h *Field) alive() bool {
	return h != nil && h.f != nil
}

// SetTimestep changes the simulated time each Step advances. The
// default is 1. Non-positive values are ignored.
func (h *Field) SetTimestep(dt float64) {
	if h.alive() {
		h.f.SetTimestep(dt)
	}
}

// AddBody inserts a body with the given id, mass, position, and
// velocity. Duplicate ids and non-positive masses are ignored.
func (h *Field) AddBody(id uint32, mass, x, y, dx, dy float64) {
	if h.alive() {
		h.f.AddBody(id, mass, x, y, dx, dy)
	}
}

// DistributeBodies generates n bodies on random near-circular orbits
// with radii in [minDist, maxDist], adding dy to each velocity's y
// component. Ids continue from the largest id already present. The
// seed fully determines the result; equal calls generate equal bodies.
// Bounds outside 0 < minDist <= maxDist are ignored.
func (h *Field) DistributeBodies(n uint32, minDist, maxDist, dy float64, seed int64) {
	if h.alive() {
		h.f.DistributeBodies(n, minDist, maxDist, dy, seed)
	}
}

// Step advances every body by one timestep.
func (h *Field) Step() {
	if h.alive() {
		h.f.Step()
	}
}

// StepN advances the simulation n steps.
func (h *Field) StepN(n int) {
	if !h.alive() {
		return
	}
	for i := 0; i < n; i++ {
		h.f.Step()
	}
}

// BodyPos returns the position of the body with the given id. Unknown
// ids report the origin (0, 0).
func (h *Field) BodyPos(id uint32) (x, y float64) {
	if !h.alive() {
		return 0, 0
	}
	pos, err := h.f.BodyPos(id)
	if err != nil {
		return 0, 0
	}
	return pos.X, pos.Y
}

// BodyXPos returns the x coordinate of the body, or 0 for unknown ids.
func (h *Field) BodyXPos(id uint32) float64 {
	x, _ := h.BodyPos(id)
	return x
}

// BodyYPos returns the y coordinate of the body, or 0 for unknown ids.
func (h *Field) BodyYPos(id uint32) float64 {
	_, y := h.BodyPos(id)
	return y
}

// Len returns the number of bodies, 0 for nil or destroyed handles.
func (h *Field) Len() int {
	if !h.alive() {
		return 0
	}
	return h.f.Len()
}
