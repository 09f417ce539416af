// Package sim drives fields through timed runs, sampling frames and
// feeding metrics along the way.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/johnxnguyen/newton/internal/field"
)

// Runner executes a fixed number of steps on one field. Frames are
// sampled every SampleEvery steps (plus the initial state); metrics
// observe every step.
type Runner struct {
	Field       *field.Field
	Steps       int
	SampleEvery int

	metrics   []Metric
	observers []Observer
}

func NewRunner(f *field.Field, steps int) *Runner {
	return &Runner{Field: f, Steps: steps, SampleEvery: 1}
}

func (r *Runner) AddMetric(m Metric) {
	r.metrics = append(r.metrics, m)
}

func (r *Runner) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

func (r *Runner) validate() error {
	if r.Field == nil {
		return fmt.Errorf("sim: runner needs a field")
	}
	if r.Steps <= 0 {
		return fmt.Errorf("sim: steps must be positive, got %d", r.Steps)
	}
	return nil
}

// Run steps the field to completion or until ctx is done. On
// cancellation the partial result comes back alongside ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	sample := r.SampleEvery
	if sample <= 0 {
		sample = 1
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	result := &Result{
		Frames:  make([]Frame, 0, r.Steps/sample+1),
		Metrics: make(map[string]float64),
	}

	start := time.Now()
	result.Frames = append(result.Frames, Snapshot(0, r.Field))
	for _, m := range r.metrics {
		m.Observe(r.Field)
	}

	for i := 1; i <= r.Steps; i++ {
		select {
		case <-ctx.Done():
			result.Duration = time.Since(start)
			r.collect(result)
			return result, ctx.Err()
		default:
		}

		r.Field.Step()
		result.Steps++

		for _, m := range r.metrics {
			m.Observe(r.Field)
		}
		for _, o := range r.observers {
			o.OnStep(i, r.Field)
		}
		if i%sample == 0 {
			result.Frames = append(result.Frames, Snapshot(i, r.Field))
		}
	}

	result.Duration = time.Since(start)
	r.collect(result)
	return result, nil
}

func (r *Runner) collect(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
