package field

import (
	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/distribution"
	"github.com/johnxnguyen/newton/internal/geometry"
	"github.com/johnxnguyen/newton/internal/integrators"
)

// DefaultTimestep is the step size a new field starts with.
const DefaultTimestep = 1.0

// Field is one simulation: a set of bodies orbiting a fixed central
// mass at the origin. A Field is not safe for concurrent use; distinct
// fields are fully independent.
type Field struct {
	g         float64
	solarMass float64
	minDist   float64
	maxDist   float64
	dt        float64

	steps uint64
	time  float64

	bodies  *body.Store
	gravity centralGravity
	integ   integrators.Integrator
}

// New validates the physical constants and returns an empty field
// stepping with DefaultTimestep.
func New(g, solarMass, minDist, maxDist float64) (*Field, error) {
	if g <= 0 {
		return nil, ErrNonPositiveG
	}
	if solarMass <= 0 {
		return nil, ErrNonPositiveSolarMass
	}
	if minDist <= 0 || minDist >= maxDist {
		return nil, ErrDistanceBounds
	}
	return &Field{
		g:         g,
		solarMass: solarMass,
		minDist:   minDist,
		maxDist:   maxDist,
		dt:        DefaultTimestep,
		bodies:    body.NewStore(),
		gravity:   centralGravity{mu: g * solarMass, minDist: minDist, maxDist: maxDist},
		integ:     integrators.NewSymplecticEuler(),
	}, nil
}

// SetTimestep replaces the step size used by Step.
func (f *Field) SetTimestep(dt float64) error {
	if dt <= 0 {
		return ErrInvalidTimestep
	}
	f.dt = dt
	return nil
}

// SetIntegrator swaps the stepping scheme. Meant for comparison runs;
// the default symplectic scheme is the one to trust for long orbits.
func (f *Field) SetIntegrator(integ integrators.Integrator) {
	if integ != nil {
		f.integ = integ
	}
}

// AddBody validates and inserts one body. Duplicate ids and
// non-positive masses are rejected and leave the field unchanged.
func (f *Field) AddBody(id uint32, mass, x, y, dx, dy float64) error {
	b, err := body.New(id, mass, x, y, dx, dy)
	if err != nil {
		return err
	}
	return f.bodies.Insert(b)
}

// NextID returns the id the next generated body would receive: one
// past the largest id present, or zero for an empty field.
func (f *Field) NextID() uint32 {
	if max, ok := f.bodies.MaxID(); ok {
		return max + 1
	}
	return 0
}

// DistributeBodies generates n bodies on random circular orbits with
// radii in [minDist, maxDist], adds dy to each velocity's y component,
// and inserts them with sequential ids. The same arguments on the same
// field always produce the same bodies.
func (f *Field) DistributeBodies(n uint32, minDist, maxDist, dy float64, seed int64) error {
	radial := distribution.Radial{
		Count:   n,
		MinDist: minDist,
		MaxDist: maxDist,
		DY:      dy,
		Seed:    seed,
	}
	generated, err := radial.Generate(f.g, f.solarMass, f.NextID())
	if err != nil {
		return err
	}
	for _, b := range generated {
		if err := f.bodies.Insert(b); err != nil {
			return err
		}
	}
	return nil
}

// Step advances every body by one timestep in insertion order.
func (f *Field) Step() {
	f.integ.Step(f.bodies, f.gravity.Accel, f.dt)
	f.steps++
	f.time += f.dt
}

// BodyPos returns the position of the body with the given id.
func (f *Field) BodyPos(id uint32) (geometry.Vec, error) {
	b, err := f.bodies.Get(id)
	if err != nil {
		return geometry.Vec{}, err
	}
	return b.Pos, nil
}

// Each visits a value copy of every body in insertion order.
func (f *Field) Each(fn func(body.Body)) {
	f.bodies.Each(func(b *body.Body) {
		fn(*b)
	})
}

func (f *Field) Len() int           { return f.bodies.Len() }
func (f *Field) Steps() uint64      { return f.steps }
func (f *Field) Time() float64      { return f.time }
func (f *Field) Timestep() float64  { return f.dt }
func (f *Field) G() float64         { return f.g }
func (f *Field) SolarMass() float64 { return f.solarMass }
func (f *Field) MinDist() float64   { return f.minDist }
func (f *Field) MaxDist() float64   { return f.maxDist }

// KineticEnergy sums 0.5*m*v^2 over all bodies.
func (f *Field) KineticEnergy() float64 {
	var ke float64
	f.bodies.Each(func(b *body.Body) {
		v2 := b.Vel.X*b.Vel.X + b.Vel.Y*b.Vel.Y
		ke += 0.5 * b.Mass * v2
	})
	return ke
}

// PotentialEnergy sums -g*M*m/r over all bodies using the true,
// unclamped distance. A body sitting exactly on the origin contributes
// nothing rather than a singularity.
func (f *Field) PotentialEnergy() float64 {
	mu := f.g * f.solarMass
	var pe float64
	f.bodies.Each(func(b *body.Body) {
		r := b.Pos.Len()
		if r == 0 {
			return
		}
		pe -= mu * b.Mass / r
	})
	return pe
}

func (f *Field) TotalEnergy() float64 {
	return f.KineticEnergy() + f.PotentialEnergy()
}

// AngularMomentum sums m*(x*dy - y*dx), the z component of L, over
// all bodies. Central gravity conserves it exactly in the continuum;
// the integrator conserves it to rounding.
func (f *Field) AngularMomentum() float64 {
	var l float64
	f.bodies.Each(func(b *body.Body) {
		l += b.Mass * (b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X)
	})
	return l
}
