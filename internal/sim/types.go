package sim

import (
	"time"

	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/field"
	"github.com/johnxnguyen/newton/internal/geometry"
)

// Metric watches a field once per step and reduces what it saw to a
// single value at the end of a run.
type Metric interface {
	Name() string
	Observe(f *field.Field)
	Value() float64
	Reset()
}

// Observer receives the field after every step. Observers are for side
// channels like live views; anything that produces a number should be
// a Metric instead.
type Observer interface {
	OnStep(step int, f *field.Field)
}

// BodyState is one body's recorded state inside a frame.
type BodyState struct {
	ID uint32  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

// Frame is a sampled snapshot of every body at one step.
type Frame struct {
	Step   int         `json:"step"`
	Time   float64     `json:"time"`
	Bodies []BodyState `json:"bodies"`
}

// Snapshot copies the field's bodies into a frame.
func Snapshot(step int, f *field.Field) Frame {
	frame := Frame{
		Step:   step,
		Time:   f.Time(),
		Bodies: make([]BodyState, 0, f.Len()),
	}
	f.Each(func(b body.Body) {
		frame.Bodies = append(frame.Bodies, BodyState{
			ID: b.ID,
			X:  b.Pos.X,
			Y:  b.Pos.Y,
			DX: b.Vel.X,
			DY: b.Vel.Y,
		})
	})
	return frame
}

// Result is everything a finished run produced.
type Result struct {
	Steps    int
	Duration time.Duration
	Frames   []Frame
	Metrics  map[string]float64
}

// Trajectory returns one body's recorded positions in frame order.
// Frames where the id is absent are skipped.
func (r *Result) Trajectory(id uint32) []geometry.Vec {
	points := make([]geometry.Vec, 0, len(r.Frames))
	for _, frame := range r.Frames {
		for _, b := range frame.Bodies {
			if b.ID == id {
				points = append(points, geometry.Vec{X: b.X, Y: b.Y})
				break
			}
		}
	}
	return points
}

// IDs returns the body ids present in the first frame, in frame order.
func (r *Result) IDs() []uint32 {
	if len(r.Frames) == 0 {
		return nil
	}
	ids := make([]uint32, 0, len(r.Frames[0].Bodies))
	for _, b := range r.Frames[0].Bodies {
		ids = append(ids, b.ID)
	}
	return ids
}
