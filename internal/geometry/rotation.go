package geometry

import "math"

// Rotation rotates vectors counterclockwise about the origin.
type Rotation struct {
	sin float64
	cos float64
}

// NewRotation builds a rotation by theta radians.
func NewRotation(theta float64) Rotation {
	return Rotation{sin: math.Sin(theta), cos: math.Cos(theta)}
}

func (r Rotation) Apply(v Vec) Vec {
	return Vec{
		X: v.X*r.cos - v.Y*r.sin,
		Y: v.X*r.sin + v.Y*r.cos,
	}
}
