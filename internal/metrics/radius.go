package metrics

import (
	"math"

	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/field"
)

// RadiusBounds tracks how much of the population stays inside the
// field's clamp window. Value is the fraction of body-samples whose
// distance from the origin fell within [minDist, maxDist]; 1.0 means
// nothing ever strayed.
type RadiusBounds struct {
	name    string
	min     float64
	max     float64
	inside  int
	samples int
}

func NewRadiusBounds() *RadiusBounds {
	return &RadiusBounds{name: "radius_bounds", min: math.Inf(1), max: math.Inf(-1)}
}

func (r *RadiusBounds) Name() string { return r.name }

func (r *RadiusBounds) Observe(f *field.Field) {
	lo, hi := f.MinDist(), f.MaxDist()
	f.Each(func(b body.Body) {
		radius := b.Pos.Len()
		r.samples++
		if radius >= lo && radius <= hi {
			r.inside++
		}
		r.min = math.Min(r.min, radius)
		r.max = math.Max(r.max, radius)
	})
}

func (r *RadiusBounds) Value() float64 {
	if r.samples == 0 {
		return 1
	}
	return float64(r.inside) / float64(r.samples)
}

func (r *RadiusBounds) Reset() {
	r.min = math.Inf(1)
	r.max = math.Inf(-1)
	r.inside = 0
	r.samples = 0
}

// Min returns the smallest radius observed, or +Inf before any sample.
func (r *RadiusBounds) Min() float64 { return r.min }

// Max returns the largest radius observed, or -Inf before any sample.
func (r *RadiusBounds) Max() float64 { return r.max }
