package viz

import (
	"github.com/johnxnguyen/newton/internal/geometry"
	"github.com/johnxnguyen/newton/internal/sim"
)

// RenderTrajectories draws every recorded body path onto one braille
// canvas, with the central mass marked at the origin.
func RenderTrajectories(result *sim.Result, width, height int) string {
	c := NewCanvas(width, height)

	var points []geometry.Vec
	trajectories := make(map[uint32][]geometry.Vec)
	for _, id := range result.IDs() {
		traj := result.Trajectory(id)
		trajectories[id] = traj
		points = append(points, traj...)
	}
	points = append(points, geometry.Vec{})

	vp := FitViewport(c, points, 0.1)
	for _, id := range result.IDs() {
		traj := trajectories[id]
		for i := 1; i < len(traj); i++ {
			vp.Line(traj[i-1], traj[i])
		}
		if len(traj) == 1 {
			vp.Plot(traj[0])
		}
	}
	vp.Mark(geometry.Vec{})
	return c.String()
}
