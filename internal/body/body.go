// Package body holds the point masses of a simulation and the store
// that keys them by id.
package body

import "github.com/johnxnguyen/newton/internal/geometry"

// Body is a point mass moving through a gravity field.
type Body struct {
	ID   uint32
	Mass float64
	Pos  geometry.Vec
	Vel  geometry.Vec
}

// New builds a body, rejecting non-positive masses.
func New(id uint32, mass, x, y, dx, dy float64) (Body, error) {
	if mass <= 0 {
		return Body{}, ErrNonPositiveMass
	}
	return Body{
		ID:   id,
		Mass: mass,
		Pos:  geometry.Vec{X: x, Y: y},
		Vel:  geometry.Vec{X: dx, Y: dy},
	}, nil
}
