package distribution_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/johnxnguyen/newton/internal/distribution"
)

var _ = Describe("Radial", func() {
	const (
		g         = 1.0
		solarMass = 1.0e6
	)

	Describe("bounds validation", func() {
		It("rejects a zero minimum", func() {
			r := distribution.Radial{Count: 1, MinDist: 0, MaxDist: 10}
			_, err := r.Generate(g, solarMass, 0)
			Expect(err).To(MatchError(distribution.ErrBounds))
		})

		It("rejects a negative minimum", func() {
			r := distribution.Radial{Count: 1, MinDist: -5, MaxDist: 10}
			_, err := r.Generate(g, solarMass, 0)
			Expect(err).To(MatchError(distribution.ErrBounds))
		})

		It("rejects min above max", func() {
			r := distribution.Radial{Count: 1, MinDist: 20, MaxDist: 10}
			_, err := r.Generate(g, solarMass, 0)
			Expect(err).To(MatchError(distribution.ErrBounds))
		})

		It("accepts min equal to max", func() {
			r := distribution.Radial{Count: 50, MinDist: 10, MaxDist: 10, Seed: 1}
			bodies, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, b := range bodies {
				Expect(b.Pos.Len()).To(BeNumerically("~", 10, 1e-9))
			}
		})
	})

	Describe("generation", func() {
		It("produces the requested count with sequential ids", func() {
			r := distribution.Radial{Count: 5, MinDist: 10, MaxDist: 100, Seed: 7}
			bodies, err := r.Generate(g, solarMass, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(HaveLen(5))
			for i, b := range bodies {
				Expect(b.ID).To(Equal(uint32(100 + i)))
				Expect(b.Mass).To(Equal(distribution.GeneratedMass))
			}
		})

		It("produces nothing for a zero count", func() {
			r := distribution.Radial{Count: 0, MinDist: 10, MaxDist: 100, Seed: 7}
			bodies, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(bodies).To(BeEmpty())
		})

		It("keeps 10000 radii inside the bounds", func() {
			r := distribution.Radial{Count: 10000, MinDist: 25, MaxDist: 4000, Seed: 42}
			bodies, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, b := range bodies {
				radius := b.Pos.Len()
				Expect(radius).To(BeNumerically(">=", 25))
				Expect(radius).To(BeNumerically("<=", 4000))
			}
		})

		It("is deterministic for a fixed seed", func() {
			r := distribution.Radial{Count: 200, MinDist: 10, MaxDist: 100, DY: 3, Seed: 42}
			first, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			second, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("varies with the seed", func() {
			a, err := distribution.Radial{Count: 10, MinDist: 10, MaxDist: 100, Seed: 1}.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			b, err := distribution.Radial{Count: 10, MinDist: 10, MaxDist: 100, Seed: 2}.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).NotTo(Equal(b))
		})
	})

	Describe("orbital velocity", func() {
		It("gives each body the circular speed for its radius", func() {
			r := distribution.Radial{Count: 100, MinDist: 10, MaxDist: 1000, Seed: 9}
			bodies, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, b := range bodies {
				radius := b.Pos.Len()
				want := math.Sqrt(g * solarMass / radius)
				Expect(b.Vel.Len()).To(BeNumerically("~", want, want*1e-9))
			}
		})

		It("points the velocity tangentially, counterclockwise", func() {
			r := distribution.Radial{Count: 100, MinDist: 10, MaxDist: 1000, Seed: 9}
			bodies, err := r.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			for _, b := range bodies {
				dot := b.Pos.X*b.Vel.X + b.Pos.Y*b.Vel.Y
				scale := b.Pos.Len() * b.Vel.Len()
				Expect(math.Abs(dot)).To(BeNumerically("<", scale*1e-9))

				lz := b.Pos.X*b.Vel.Y - b.Pos.Y*b.Vel.X
				Expect(lz).To(BeNumerically(">", 0))
			}
		})

		It("adds DY to the velocity's y component only", func() {
			base := distribution.Radial{Count: 50, MinDist: 10, MaxDist: 100, DY: 0, Seed: 42}
			drifted := base
			drifted.DY = 5

			a, err := base.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())
			b, err := drifted.Generate(g, solarMass, 0)
			Expect(err).NotTo(HaveOccurred())

			for i := range a {
				Expect(b[i].Pos).To(Equal(a[i].Pos))
				Expect(b[i].Vel.X).To(Equal(a[i].Vel.X))
				Expect(b[i].Vel.Y - a[i].Vel.Y).To(BeNumerically("~", 5, 1e-9))
			}
		})
	})
})

var _ = Describe("Gens", func() {
	It("Fixed repeats its value", func() {
		gen := &distribution.Fixed{V: 2.5}
		for i := 0; i < 5; i++ {
			Expect(gen.Next()).To(Equal(2.5))
		}
	})

	It("Uniform stays inside its bounds", func() {
		gen := distribution.NewUniform(2, 8, 11)
		for i := 0; i < 1000; i++ {
			v := gen.Next()
			Expect(v).To(BeNumerically(">=", 2))
			Expect(v).To(BeNumerically("<", 8))
		}
	})

	It("Uniform repeats for a fixed seed", func() {
		a := distribution.NewUniform(0, 1, 3)
		b := distribution.NewUniform(0, 1, 3)
		for i := 0; i < 100; i++ {
			Expect(a.Next()).To(Equal(b.Next()))
		}
	})

	It("NewAngle covers [0, 2pi)", func() {
		gen := distribution.NewAngle(5)
		for i := 0; i < 1000; i++ {
			v := gen.Next()
			Expect(v).To(BeNumerically(">=", 0))
			Expect(v).To(BeNumerically("<", 2*math.Pi))
		}
	})
})
