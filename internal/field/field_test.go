package field

import (
	"errors"
	"math"
	"testing"

	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/distribution"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		g       float64
		mass    float64
		min     float64
		max     float64
		wantErr error
	}{
		{"valid", 1, 100, 1, 10, nil},
		{"valid si", 6.674e-11, 1.989e30, 1e6, 1e12, nil},
		{"zero g", 0, 100, 1, 10, ErrNonPositiveG},
		{"negative g", -1, 100, 1, 10, ErrNonPositiveG},
		{"zero mass", 1, 0, 1, 10, ErrNonPositiveSolarMass},
		{"negative mass", 1, -5, 1, 10, ErrNonPositiveSolarMass},
		{"zero min", 1, 100, 0, 10, ErrDistanceBounds},
		{"negative min", 1, 100, -1, 10, ErrDistanceBounds},
		{"min equals max", 1, 100, 10, 10, ErrDistanceBounds},
		{"min above max", 1, 100, 20, 10, ErrDistanceBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.g, tt.mass, tt.min, tt.max)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("New() error = %v", err)
				}
				if f.Len() != 0 {
					t.Errorf("new field has %d bodies", f.Len())
				}
				if f.Timestep() != DefaultTimestep {
					t.Errorf("Timestep() = %v, want %v", f.Timestep(), DefaultTimestep)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if f != nil {
				t.Error("New() returned a field alongside an error")
			}
		})
	}
}

func TestSetTimestep(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	if err := f.SetTimestep(0.25); err != nil {
		t.Fatalf("SetTimestep() error = %v", err)
	}
	if f.Timestep() != 0.25 {
		t.Errorf("Timestep() = %v", f.Timestep())
	}

	for _, dt := range []float64{0, -1} {
		if err := f.SetTimestep(dt); !errors.Is(err, ErrInvalidTimestep) {
			t.Errorf("SetTimestep(%v) error = %v, want ErrInvalidTimestep", dt, err)
		}
	}
	if f.Timestep() != 0.25 {
		t.Errorf("rejected timestep changed dt to %v", f.Timestep())
	}
}

func TestAddBody(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	if err := f.AddBody(1, 2, 5, 0, 0, 1); err != nil {
		t.Fatalf("AddBody() error = %v", err)
	}
	pos, err := f.BodyPos(1)
	if err != nil {
		t.Fatalf("BodyPos() error = %v", err)
	}
	if pos.X != 5 || pos.Y != 0 {
		t.Errorf("BodyPos() = %v", pos)
	}

	if err := f.AddBody(1, 3, -5, -5, 0, 0); !errors.Is(err, body.ErrDuplicateID) {
		t.Errorf("duplicate AddBody() error = %v", err)
	}
	if pos, _ := f.BodyPos(1); pos.X != 5 {
		t.Errorf("duplicate insert moved body to %v", pos)
	}

	if err := f.AddBody(2, 0, 1, 1, 0, 0); !errors.Is(err, body.ErrNonPositiveMass) {
		t.Errorf("zero-mass AddBody() error = %v", err)
	}
	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
}

func TestBodyPosUnknown(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	if _, err := f.BodyPos(99); !errors.Is(err, body.ErrUnknownBody) {
		t.Errorf("BodyPos() error = %v, want ErrUnknownBody", err)
	}
}

// A body closer than minDist feels the force evaluated at minDist, not
// the diverging true value.
func TestStepClampsNearForce(t *testing.T) {
	f, _ := New(1, 10000, 10, 1000) // mu = 1e4, accel at clamp = 100
	f.SetTimestep(0.001)
	f.AddBody(1, 1, 1, 0, 0, 0)

	f.Step()

	b := findBody(t, f, 1)
	if got, want := b.Vel.X, -0.1; math.Abs(got-want) > 1e-12 {
		t.Errorf("clamped velocity = %v, want %v", got, want)
	}
}

func TestStepClampsFarForce(t *testing.T) {
	f, _ := New(1, 10000, 1, 10) // accel at far clamp = 100
	f.SetTimestep(0.001)
	f.AddBody(1, 1, 100, 0, 0, 0)

	f.Step()

	b := findBody(t, f, 1)
	if got, want := b.Vel.X, -0.1; math.Abs(got-want) > 1e-12 {
		t.Errorf("far-clamped velocity = %v, want %v", got, want)
	}
}

// The clamp affects magnitude only; direction follows the true
// position even inside minDist.
func TestStepDirectionUnclamped(t *testing.T) {
	f, _ := New(1, 10000, 10, 1000)
	f.SetTimestep(0.001)
	f.AddBody(1, 1, 0.6, 0.8, 0, 0)

	f.Step()

	b := findBody(t, f, 1)
	if b.Vel.X >= 0 || b.Vel.Y >= 0 {
		t.Fatalf("velocity not inward: %v", b.Vel)
	}
	if got, want := b.Vel.Y/b.Vel.X, 0.8/0.6; math.Abs(got-want) > 1e-9 {
		t.Errorf("velocity direction ratio = %v, want %v", got, want)
	}
}

func TestStepAtOrigin(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	f.AddBody(1, 1, 0, 0, 3, 4)

	f.Step()

	b := findBody(t, f, 1)
	if !b.Pos.IsValid() || !b.Vel.IsValid() {
		t.Fatalf("origin body went non-finite: pos %v vel %v", b.Pos, b.Vel)
	}
	if b.Vel.X != 3 || b.Vel.Y != 4 {
		t.Errorf("velocity changed at origin: %v", b.Vel)
	}
	if b.Pos.X != 3 || b.Pos.Y != 4 {
		t.Errorf("position after drift = %v", b.Pos)
	}
}

// A body released at rest on the x axis falls straight in: x shrinks
// every step and y never leaves zero.
func TestRadialInfall(t *testing.T) {
	f, _ := New(1, 1e5, 1, 1000)
	f.SetTimestep(0.1)
	f.AddBody(1, 1, 1000, 0, 0, 0)

	prev := 1000.0
	for i := 0; i < 500; i++ {
		f.Step()
		b := findBody(t, f, 1)
		if b.Pos.Y != 0 {
			t.Fatalf("step %d: y = %v, want exactly 0", i, b.Pos.Y)
		}
		if !b.Pos.IsValid() {
			t.Fatalf("step %d: position not finite", i)
		}
		if b.Pos.X >= prev {
			t.Fatalf("step %d: x = %v did not decrease from %v", i, b.Pos.X, prev)
		}
		prev = b.Pos.X
	}
}

func TestDistributeBodies(t *testing.T) {
	f, _ := New(1, 1e6, 1, 1e6)
	f.AddBody(5, 1, 10, 0, 0, 0)

	if err := f.DistributeBodies(100, 50, 500, 0, 42); err != nil {
		t.Fatalf("DistributeBodies() error = %v", err)
	}
	if f.Len() != 101 {
		t.Fatalf("Len() = %d, want 101", f.Len())
	}

	// ids continue after the existing maximum
	for id := uint32(6); id < 106; id++ {
		pos, err := f.BodyPos(id)
		if err != nil {
			t.Fatalf("BodyPos(%d) error = %v", id, err)
		}
		r := pos.Len()
		if r < 50 || r > 500 {
			t.Errorf("body %d radius %v outside [50, 500]", id, r)
		}
	}

	// matches a direct generator call with the same inputs
	want, err := distribution.Radial{Count: 100, MinDist: 50, MaxDist: 500, Seed: 42}.Generate(1, 1e6, 6)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, wb := range want {
		pos, _ := f.BodyPos(wb.ID)
		if pos != wb.Pos {
			t.Errorf("body %d at %v, want %v", wb.ID, pos, wb.Pos)
		}
	}
}

func TestDistributeBodiesBadBounds(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	if err := f.DistributeBodies(5, 0, 10, 0, 1); !errors.Is(err, distribution.ErrBounds) {
		t.Errorf("DistributeBodies() error = %v, want ErrBounds", err)
	}
	if f.Len() != 0 {
		t.Errorf("failed distribute inserted %d bodies", f.Len())
	}
}

func TestEnergyAccounting(t *testing.T) {
	f, _ := New(10, 100, 1, 100) // mu = 1000
	f.AddBody(1, 2, 10, 0, 0, 10)

	if got := f.KineticEnergy(); got != 100 {
		t.Errorf("KineticEnergy() = %v, want 100", got)
	}
	if got := f.PotentialEnergy(); got != -200 {
		t.Errorf("PotentialEnergy() = %v, want -200", got)
	}
	if got := f.TotalEnergy(); got != -100 {
		t.Errorf("TotalEnergy() = %v, want -100", got)
	}
	if got := f.AngularMomentum(); got != 200 {
		t.Errorf("AngularMomentum() = %v, want 200", got)
	}
}

func TestPotentialEnergyAtOrigin(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	f.AddBody(1, 1, 0, 0, 0, 0)
	if got := f.PotentialEnergy(); got != 0 {
		t.Errorf("PotentialEnergy() = %v, want 0 for origin body", got)
	}
}

// Semi-implicit Euler conserves angular momentum exactly for central
// forces; only rounding should show up.
func TestAngularMomentumConserved(t *testing.T) {
	f, _ := New(1, 1000, 0.1, 1e6)
	f.SetTimestep(0.001)
	f.AddBody(1, 1, 10, 0, 0, 10)

	l0 := f.AngularMomentum()
	for i := 0; i < 1000; i++ {
		f.Step()
	}
	drift := math.Abs((f.AngularMomentum() - l0) / l0)
	if drift > 1e-9 {
		t.Errorf("angular momentum drift = %v", drift)
	}
}

func TestStepCounters(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	f.SetTimestep(0.5)
	for i := 0; i < 4; i++ {
		f.Step()
	}
	if f.Steps() != 4 {
		t.Errorf("Steps() = %d, want 4", f.Steps())
	}
	if f.Time() != 2 {
		t.Errorf("Time() = %v, want 2", f.Time())
	}
}

func TestEachCopies(t *testing.T) {
	f, _ := New(1, 100, 1, 10)
	f.AddBody(1, 1, 5, 0, 0, 0)

	f.Each(func(b body.Body) {
		b.Pos.X = -1
	})

	if pos, _ := f.BodyPos(1); pos.X != 5 {
		t.Errorf("Each leaked a mutable reference, pos = %v", pos)
	}
}

func findBody(t *testing.T, f *Field, id uint32) body.Body {
	t.Helper()
	var found *body.Body
	f.Each(func(b body.Body) {
		if b.ID == id {
			c := b
			found = &c
		}
	})
	if found == nil {
		t.Fatalf("body %d not found", id)
	}
	return *found
}
