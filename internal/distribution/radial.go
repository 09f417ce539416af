// Package distribution generates initial body populations for a
// field. Every generator is deterministic: the caller supplies the
// seed, and equal inputs always yield equal bodies.
package distribution

import (
	"errors"
	"math"
	"math/rand"

	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/geometry"
)

// GeneratedMass is the mass assigned to every generated body. The
// bodies are test masses; they feel the central field and nothing
// else, so their mass only scales energy and momentum readouts.
const GeneratedMass = 0.1

// ErrBounds is returned unless 0 < min <= max.
var ErrBounds = errors.New("distribution: bounds must satisfy 0 < min <= max")

// Radial places bodies at uniform random angles and radii, each with
// the circular-orbit speed for its radius applied tangentially,
// counterclockwise. DY is then added to the velocity's y component,
// giving the whole population a vertical drift.
type Radial struct {
	Count   uint32
	MinDist float64
	MaxDist float64
	DY      float64
	Seed    int64
}

// Generate produces the bodies for a field with gravitational constant
// g and central mass solarMass, assigning sequential ids starting at
// firstID.
func (r Radial) Generate(g, solarMass float64, firstID uint32) ([]body.Body, error) {
	if r.MinDist <= 0 || r.MinDist > r.MaxDist {
		return nil, ErrBounds
	}

	rng := rand.New(rand.NewSource(r.Seed))
	mu := g * solarMass
	bodies := make([]body.Body, 0, r.Count)
	for i := uint32(0); i < r.Count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		dist := r.MinDist + rng.Float64()*(r.MaxDist-r.MinDist)

		pos := geometry.Vec{
			X: dist * math.Cos(theta),
			Y: dist * math.Sin(theta),
		}
		speed := math.Sqrt(mu / dist)
		vel := geometry.Vec{
			X: -speed * math.Sin(theta),
			Y: speed*math.Cos(theta) + r.DY,
		}

		b, err := body.New(firstID+i, GeneratedMass, pos.X, pos.Y, vel.X, vel.Y)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}
