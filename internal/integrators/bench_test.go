package integrators

import (
	"fmt"
	"math"
	"testing"

	"github.com/johnxnguyen/newton/internal/body"
)

func benchStore(n int) *body.Store {
	s := body.NewStore()
	for i := 0; i < n; i++ {
		radius := 10 + float64(i)
		speed := math.Sqrt(1000 / radius)
		b, _ := body.New(uint32(i), 1, radius, 0, 0, speed)
		s.Insert(b)
	}
	return s
}

func BenchmarkSymplecticEuler(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("bodies-%d", n), func(b *testing.B) {
			s := benchStore(n)
			accel := centralAccel(1000)
			integ := NewSymplecticEuler()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				integ.Step(s, accel, 0.001)
			}
		})
	}
}

func BenchmarkExplicitEuler(b *testing.B) {
	s := benchStore(100)
	accel := centralAccel(1000)
	integ := NewExplicitEuler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		integ.Step(s, accel, 0.001)
	}
}
