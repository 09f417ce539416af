package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/johnxnguyen/newton/internal/sim"
)

func sine(n int, dt, freq, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + math.Sin(2*math.Pi*freq*float64(i)*dt)
	}
	return out
}

func TestDominantPeriodSine(t *testing.T) {
	// 5 Hz sine sampled at 100 Hz for 512 samples
	series := sine(512, 0.01, 5, 100)
	period, err := DominantPeriod(series, 0.01)
	if err != nil {
		t.Fatalf("DominantPeriod() error = %v", err)
	}
	// bin resolution is 1/(512*0.01) ~ 0.2 Hz
	if math.Abs(period-0.2) > 0.02 {
		t.Errorf("period = %v, want ~0.2", period)
	}
}

func TestDominantPeriodIgnoresOffset(t *testing.T) {
	// a large DC offset must not win over the oscillation
	series := sine(256, 0.1, 0.5, 1e6)
	period, err := DominantPeriod(series, 0.1)
	if err != nil {
		t.Fatalf("DominantPeriod() error = %v", err)
	}
	if math.Abs(period-2.0) > 0.2 {
		t.Errorf("period = %v, want ~2", period)
	}
}

func TestDominantPeriodErrors(t *testing.T) {
	if _, err := DominantPeriod([]float64{1, 2}, 0.1); !errors.Is(err, ErrTooShort) {
		t.Errorf("short series error = %v", err)
	}
	if _, err := DominantPeriod(make([]float64, 64), 0.1); !errors.Is(err, ErrNoPeak) {
		t.Errorf("flat series error = %v", err)
	}
	if _, err := DominantPeriod(sine(64, 0.1, 1, 0), 0); err == nil {
		t.Error("zero dt accepted")
	}
}

func TestPowerSpectrumPeakBin(t *testing.T) {
	// 8 cycles over 256 samples peak at bin 8
	series := sine(256, 1, 8.0/256.0, 0)
	power := PowerSpectrum(series)

	best := 0
	for k := range power {
		if power[k] > power[best] {
			best = k
		}
	}
	if best != 8 {
		t.Errorf("peak bin = %d, want 8", best)
	}
}

func TestEccentricity(t *testing.T) {
	circle := []float64{10, 10, 10, 10}
	e, err := Eccentricity(circle)
	if err != nil || e != 0 {
		t.Errorf("circular eccentricity = %v, %v", e, err)
	}

	// rmin 50, rmax 150 -> e = 0.5
	ellipse := []float64{50, 80, 120, 150, 120, 80}
	e, err = Eccentricity(ellipse)
	if err != nil {
		t.Fatalf("Eccentricity() error = %v", err)
	}
	if math.Abs(e-0.5) > 1e-12 {
		t.Errorf("eccentricity = %v, want 0.5", e)
	}

	if _, err := Eccentricity(nil); !errors.Is(err, ErrTooShort) {
		t.Errorf("empty series error = %v", err)
	}
}

func TestRadiusSeries(t *testing.T) {
	result := &sim.Result{
		Frames: []sim.Frame{
			{Step: 0, Bodies: []sim.BodyState{{ID: 1, X: 3, Y: 4}, {ID: 2, X: 1, Y: 0}}},
			{Step: 1, Bodies: []sim.BodyState{{ID: 1, X: 0, Y: 5}, {ID: 2, X: 0, Y: 2}}},
			{Step: 2, Bodies: []sim.BodyState{{ID: 2, X: 3, Y: 0}}},
		},
	}

	got := RadiusSeries(result, 1)
	if len(got) != 2 || got[0] != 5 || got[1] != 5 {
		t.Errorf("RadiusSeries(1) = %v", got)
	}
	if got := RadiusSeries(result, 2); len(got) != 3 {
		t.Errorf("RadiusSeries(2) = %v", got)
	}
	if got := RadiusSeries(result, 9); len(got) != 0 {
		t.Errorf("RadiusSeries(9) = %v", got)
	}
}

// Radial period of an eccentric orbit recovered end to end.
func TestDominantPeriodOrbit(t *testing.T) {
	// Kepler: mu=1000, a=10 -> T = 2*pi*sqrt(a^3/mu) = 2*pi.
	// Start at perihelion r=8 with the vis-viva speed for a=10 and
	// record 16 full periods, so the peak lands on a bin center.
	mu := 1000.0
	r0 := 8.0
	v0 := math.Sqrt(mu * (2/r0 - 1.0/10.0))

	want := 2 * math.Pi
	dt := want / 512
	x, y := r0, 0.0
	vx, vy := 0.0, v0
	series := make([]float64, 16*512)
	for i := range series {
		r := math.Hypot(x, y)
		series[i] = r
		a := mu / (r * r)
		vx += -a * x / r * dt
		vy += -a * y / r * dt
		x += vx * dt
		y += vy * dt
	}

	period, err := DominantPeriod(series, dt)
	if err != nil {
		t.Fatalf("DominantPeriod() error = %v", err)
	}
	if math.Abs(period-want)/want > 0.05 {
		t.Errorf("radial period = %v, want ~%v", period, want)
	}
}
