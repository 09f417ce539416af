// Package metrics provides the standard observables attached to runs.
// Each metric implements sim.Metric and reduces a whole run to one
// number.
package metrics

import (
	"math"

	"github.com/johnxnguyen/newton/internal/field"
)

// TotalEnergy reports the mean total mechanical energy over the run.
type TotalEnergy struct {
	name    string
	sum     float64
	samples int
}

func NewTotalEnergy() *TotalEnergy {
	return &TotalEnergy{name: "total_energy"}
}

func (e *TotalEnergy) Name() string { return e.name }

func (e *TotalEnergy) Observe(f *field.Field) {
	e.sum += f.TotalEnergy()
	e.samples++
}

func (e *TotalEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

func (e *TotalEnergy) Reset() {
	e.sum = 0
	e.samples = 0
}

// EnergyDrift reports the worst relative deviation of total energy
// from its value at the first observation. Near zero means the
// integrator held the orbits together.
type EnergyDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{name: "energy_drift"}
}

func (e *EnergyDrift) Name() string { return e.name }

func (e *EnergyDrift) Observe(f *field.Field) {
	energy := f.TotalEnergy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// AngularMomentumDrift reports the worst relative deviation of total
// angular momentum from its initial value. The integrator conserves L
// exactly for central forces, so anything beyond rounding indicates a
// stepping bug.
type AngularMomentumDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewAngularMomentumDrift() *AngularMomentumDrift {
	return &AngularMomentumDrift{name: "angular_momentum_drift"}
}

func (a *AngularMomentumDrift) Name() string { return a.name }

func (a *AngularMomentumDrift) Observe(f *field.Field) {
	l := f.AngularMomentum()
	if a.samples == 0 {
		a.initial = l
	}
	a.samples++

	if a.initial != 0 {
		drift := math.Abs(l-a.initial) / math.Abs(a.initial)
		a.maxDrift = math.Max(a.maxDrift, drift)
	}
}

func (a *AngularMomentumDrift) Value() float64 {
	return a.maxDrift
}

func (a *AngularMomentumDrift) Reset() {
	a.initial = 0
	a.maxDrift = 0
	a.samples = 0
}
