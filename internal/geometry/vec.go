package geometry

import "math"

// Vec is a two-dimensional euclidean vector.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Norm returns the unit vector pointing along v. The zero vector has
// no direction, so ok is false and the result is the zero vector.
func (v Vec) Norm() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{X: v.X / l, Y: v.Y / l}, true
}

// IsValid reports whether both components are finite.
func (v Vec) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
