package distribution

import (
	"math"
	"math/rand"
)

// Gen yields a deterministic stream of values. Scene files use gens to
// override the mass or spread of generated groups.
type Gen interface {
	Next() float64
}

// Fixed yields the same value forever.
type Fixed struct {
	V float64
}

func (g *Fixed) Next() float64 {
	return g.V
}

// Uniform yields values in [Lo, Hi) from its own seeded source.
type Uniform struct {
	Lo, Hi float64
	rng    *rand.Rand
}

func NewUniform(lo, hi float64, seed int64) *Uniform {
	return &Uniform{Lo: lo, Hi: hi, rng: rand.New(rand.NewSource(seed))}
}

func (g *Uniform) Next() float64 {
	return g.Lo + g.rng.Float64()*(g.Hi-g.Lo)
}

// NewAngle yields uniform angles in [0, 2pi).
func NewAngle(seed int64) *Uniform {
	return NewUniform(0, 2*math.Pi, seed)
}
