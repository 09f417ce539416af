package integrators

import "github.com/johnxnguyen/newton/internal/body"

// SymplecticEuler updates velocity from the acceleration at the
// current position, then position from the new velocity. The scheme is
// first order but conserves orbital energy far better than the
// explicit variant, which is why the engine uses it.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

func (e *SymplecticEuler) Name() string {
	return "symplectic-euler"
}

func (e *SymplecticEuler) Step(bodies *body.Store, accel AccelFunc, dt float64) {
	bodies.Each(func(b *body.Body) {
		if a, ok := accel(b.Pos); ok {
			b.Vel = b.Vel.Add(a.Scale(dt))
		}
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	})
}

// ExplicitEuler advances position with the velocity from the start of
// the step. Kept for comparison runs; it pumps energy into orbits.
type ExplicitEuler struct{}

func NewExplicitEuler() *ExplicitEuler {
	return &ExplicitEuler{}
}

func (e *ExplicitEuler) Name() string {
	return "explicit-euler"
}

func (e *ExplicitEuler) Step(bodies *body.Store, accel AccelFunc, dt float64) {
	bodies.Each(func(b *body.Body) {
		old := b.Vel
		if a, ok := accel(b.Pos); ok {
			b.Vel = b.Vel.Add(a.Scale(dt))
		}
		b.Pos = b.Pos.Add(old.Scale(dt))
	})
}
