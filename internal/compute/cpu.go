package compute

import (
	"math"
	"runtime"
	"sync"
)

// Below this count the goroutine fan-out costs more than it saves.
const parallelThreshold = 1024

type CPUStepper struct {
	params  Params
	workers int
}

func NewCPUStepper(p Params) *CPUStepper {
	return &CPUStepper{
		params:  p,
		workers: runtime.NumCPU(),
	}
}

func (c *CPUStepper) Name() string    { return "cpu" }
func (c *CPUStepper) Available() bool { return true }
func (c *CPUStepper) Cleanup()        {}

// Step advances every particle one semi-implicit Euler step. Particles
// are independent under a central force, so workers split the swarm
// into disjoint ranges with nothing to reduce afterwards.
func (c *CPUStepper) Step(s *Swarm, dt float32) {
	if s.N < parallelThreshold || c.workers < 2 {
		c.stepRange(s, dt, 0, s.N)
		return
	}

	var wg sync.WaitGroup
	chunk := (s.N + c.workers - 1) / c.workers
	for w := 0; w < c.workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > s.N {
			end = s.N
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			c.stepRange(s, dt, start, end)
		}(start, end)
	}
	wg.Wait()
}

func (c *CPUStepper) stepRange(s *Swarm, dt float32, start, end int) {
	mu, lo, hi := c.params.Mu, c.params.MinDist, c.params.MaxDist

	for i := start; i < end; i++ {
		p := s.Data[i*4 : i*4+4 : i*4+4]
		x, y := p[0], p[1]

		raw := float32(math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y)))
		if raw > 0 {
			dist := raw
			if dist < lo {
				dist = lo
			} else if dist > hi {
				dist = hi
			}
			// Magnitude from the clamped distance, direction from the
			// raw position.
			mag := mu / (dist * dist)
			p[2] -= mag / raw * x * dt
			p[3] -= mag / raw * y * dt
		}
		p[0] += p[2] * dt
		p[1] += p[3] * dt
	}
}
