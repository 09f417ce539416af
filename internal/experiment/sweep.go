package experiment

import (
	"context"
	"fmt"

	"github.com/johnxnguyen/newton/internal/config"
)

// Axis names the config knob a sweep varies.
type Axis string

const (
	AxisDY    Axis = "dy"    // distribution drift
	AxisDt    Axis = "dt"    // timestep
	AxisSeed  Axis = "seed"  // distribution seed
	AxisCount Axis = "count" // distribution size
)

// Point is one sweep sample: the value applied to the axis and the
// metrics the run produced.
type Point struct {
	Value   float64
	Metrics map[string]float64
}

// Sweep runs the base configuration once per value, varying a single
// axis. Everything else, including the seed, stays fixed, so metric
// differences are attributable to the axis alone.
type Sweep struct {
	Base   *config.Config
	Axis   Axis
	Values []float64
}

func (s *Sweep) Run(ctx context.Context) ([]Point, error) {
	points := make([]Point, 0, len(s.Values))
	for _, v := range s.Values {
		select {
		case <-ctx.Done():
			return points, ctx.Err()
		default:
		}

		cfg := s.Base.Clone()
		if err := apply(cfg, s.Axis, v); err != nil {
			return points, err
		}

		result, err := New(cfg).Run(ctx)
		if err != nil {
			return points, fmt.Errorf("sweep %s=%v: %w", s.Axis, v, err)
		}
		points = append(points, Point{Value: v, Metrics: result.Metrics})
	}
	return points, nil
}

func apply(cfg *config.Config, axis Axis, v float64) error {
	switch axis {
	case AxisDY:
		cfg.Distribute.DY = v
	case AxisDt:
		cfg.Dt = v
	case AxisSeed:
		cfg.Seed = int64(v)
	case AxisCount:
		if v < 0 {
			return fmt.Errorf("sweep: count cannot be negative, got %v", v)
		}
		cfg.Distribute.Count = uint32(v)
	default:
		return fmt.Errorf("unknown sweep axis: %s", axis)
	}
	return nil
}

// Best returns the point that minimizes the named metric. ok is false
// when no point carries it.
func Best(points []Point, metric string) (Point, bool) {
	var best Point
	found := false
	for _, p := range points {
		v, ok := p.Metrics[metric]
		if !ok {
			continue
		}
		if !found || v < best.Metrics[metric] {
			best = p
			found = true
		}
	}
	return best, found
}
