package compute

import "github.com/johnxnguyen/newton/internal/distribution"

// Swarm is a flat float32 particle buffer laid out x, y, vx, vy per
// particle, the same layout the compute shader sees. Particles are
// massless test bodies; only the central mass pulls on them.
type Swarm struct {
	N    int
	Data []float32
}

func NewSwarm(n int) *Swarm {
	return &Swarm{N: n, Data: make([]float32, n*4)}
}

// RingSwarm seeds n particles on circular orbits between minDist and
// maxDist, downconverting the radial distribution to float32. Equal
// seeds yield equal swarms.
func RingSwarm(count uint32, g, solarMass, minDist, maxDist, dy float64, seed int64) (*Swarm, error) {
	radial := distribution.Radial{
		Count:   count,
		MinDist: minDist,
		MaxDist: maxDist,
		DY:      dy,
		Seed:    seed,
	}
	bodies, err := radial.Generate(g, solarMass, 0)
	if err != nil {
		return nil, err
	}

	s := NewSwarm(len(bodies))
	for i, b := range bodies {
		s.Data[i*4+0] = float32(b.Pos.X)
		s.Data[i*4+1] = float32(b.Pos.Y)
		s.Data[i*4+2] = float32(b.Vel.X)
		s.Data[i*4+3] = float32(b.Vel.Y)
	}
	return s, nil
}

func (s *Swarm) Pos(i int) (float32, float32) {
	return s.Data[i*4], s.Data[i*4+1]
}

func (s *Swarm) Vel(i int) (float32, float32) {
	return s.Data[i*4+2], s.Data[i*4+3]
}
