package geometry

import (
	"math"
	"testing"
)

const eps = 1e-12

func close(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 1, Y: 2}
	b := Vec{X: -3, Y: 0.5}

	if got := a.Add(b); got != (Vec{X: -2, Y: 2.5}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Vec{X: 4, Y: 1.5}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(-2); got != (Vec{X: -2, Y: -4}) {
		t.Errorf("Scale = %v", got)
	}
}

func TestVecLen(t *testing.T) {
	tests := []struct {
		name string
		v    Vec
		want float64
	}{
		{"zero", Vec{}, 0},
		{"unit x", Vec{X: 1}, 1},
		{"3-4-5", Vec{X: 3, Y: 4}, 5},
		{"negative", Vec{X: -3, Y: -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Len(); !close(got, tt.want) {
				t.Errorf("Len() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVecNorm(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	n, ok := v.Norm()
	if !ok {
		t.Fatal("Norm() not ok for nonzero vector")
	}
	if !close(n.X, 0.6) || !close(n.Y, 0.8) {
		t.Errorf("Norm() = %v", n)
	}
	if !close(n.Len(), 1) {
		t.Errorf("normalized length = %v", n.Len())
	}
}

func TestVecNormZero(t *testing.T) {
	n, ok := Vec{}.Norm()
	if ok {
		t.Error("Norm() ok for zero vector")
	}
	if n != (Vec{}) {
		t.Errorf("Norm() of zero = %v", n)
	}
}

func TestVecIsValid(t *testing.T) {
	if !(Vec{X: 1, Y: -2}).IsValid() {
		t.Error("finite vector reported invalid")
	}
	if (Vec{X: math.NaN()}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec{Y: math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	r := NewRotation(math.Pi / 2)
	got := r.Apply(Vec{X: 1, Y: 0})
	if !close(got.X, 0) || !close(got.Y, 1) {
		t.Errorf("quarter turn of (1,0) = %v", got)
	}
}

func TestRotationComposition(t *testing.T) {
	// two quarter turns flip the vector
	r := NewRotation(math.Pi / 2)
	got := r.Apply(r.Apply(Vec{X: 2, Y: 1}))
	if !close(got.X, -2) || !close(got.Y, -1) {
		t.Errorf("half turn of (2,1) = %v", got)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec{X: 3.7, Y: -1.2}
	for _, theta := range []float64{0, 0.3, 1, math.Pi, 5} {
		got := NewRotation(theta).Apply(v)
		if !close(got.Len(), v.Len()) {
			t.Errorf("rotation by %v changed length: %v -> %v", theta, v.Len(), got.Len())
		}
	}
}

func TestRotationIdentity(t *testing.T) {
	v := Vec{X: 0.5, Y: -4}
	got := NewRotation(0).Apply(v)
	if !close(got.X, v.X) || !close(got.Y, v.Y) {
		t.Errorf("zero rotation moved %v to %v", v, got)
	}
}
