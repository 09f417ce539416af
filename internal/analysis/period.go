// Package analysis extracts orbital characteristics from recorded
// runs: radius series, dominant periods, eccentricity estimates.
package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/johnxnguyen/newton/internal/sim"
)

var (
	// ErrTooShort is returned when a series has too few samples to say
	// anything about.
	ErrTooShort = errors.New("analysis: series too short")

	// ErrNoPeak is returned when the spectrum is flat, typically a
	// constant series.
	ErrNoPeak = errors.New("analysis: no dominant frequency")
)

// RadiusSeries extracts one body's distance from the origin per frame.
func RadiusSeries(result *sim.Result, id uint32) []float64 {
	series := make([]float64, 0, len(result.Frames))
	for _, frame := range result.Frames {
		for _, b := range frame.Bodies {
			if b.ID == id {
				series = append(series, math.Hypot(b.X, b.Y))
				break
			}
		}
	}
	return series
}

// PowerSpectrum returns the magnitude of each positive-frequency bin
// of the mean-removed series. Bin k corresponds to frequency
// k/(N*dt) when the series was sampled at interval dt.
func PowerSpectrum(series []float64) []float64 {
	centered := make([]float64, len(series))
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	if len(series) > 0 {
		mean /= float64(len(series))
	}
	for i, v := range series {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	power := make([]float64, len(series)/2)
	for k := range power {
		power[k] = cmplx.Abs(spectrum[k])
	}
	return power
}

// DominantPeriod estimates the strongest oscillation period of a
// series sampled at interval dt. For an orbit's radius series this is
// the radial (perihelion-to-perihelion) period.
func DominantPeriod(series []float64, dt float64) (float64, error) {
	if len(series) < 4 {
		return 0, ErrTooShort
	}
	if dt <= 0 {
		return 0, errors.New("analysis: sample interval must be positive")
	}

	power := PowerSpectrum(series)

	// skip DC; the mean is already removed but rounding leaves residue
	best := 0
	bestPower := 0.0
	for k := 1; k < len(power); k++ {
		if power[k] > bestPower {
			bestPower = power[k]
			best = k
		}
	}
	if best == 0 || bestPower == 0 {
		return 0, ErrNoPeak
	}

	freq := float64(best) / (float64(len(series)) * dt)
	return 1 / freq, nil
}

// Eccentricity estimates orbital eccentricity from the radius extrema:
// (rmax - rmin) / (rmax + rmin). Zero for a circle, approaching one as
// the orbit degenerates.
func Eccentricity(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, ErrTooShort
	}
	rmin, rmax := series[0], series[0]
	for _, r := range series[1:] {
		rmin = math.Min(rmin, r)
		rmax = math.Max(rmax, r)
	}
	if rmax+rmin == 0 {
		return 0, ErrNoPeak
	}
	return (rmax - rmin) / (rmax + rmin), nil
}
