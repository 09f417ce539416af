package field

import "github.com/johnxnguyen/newton/internal/geometry"

// centralGravity is the acceleration field of a fixed point mass at
// the origin. The distance used for the force magnitude is clamped to
// [minDist, maxDist]; the direction always follows the true position,
// so the clamp softens close passes and caps far-field decay without
// ever bending the force vector.
type centralGravity struct {
	mu      float64 // g * solarMass
	minDist float64
	maxDist float64
}

func (cg centralGravity) Accel(pos geometry.Vec) (geometry.Vec, bool) {
	raw := pos.Len()
	if raw == 0 {
		return geometry.Vec{}, false
	}
	d := clamp(raw, cg.minDist, cg.maxDist)
	mag := cg.mu / (d * d)
	return pos.Scale(-mag / raw), true
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
