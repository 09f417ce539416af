// Package export renders recorded runs into standalone documents.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/johnxnguyen/newton/internal/geometry"
	"github.com/johnxnguyen/newton/internal/sim"
)

// palette cycles across bodies so neighboring orbits stay told apart.
var palette = []string{"#00ff88", "#00ccff", "#ffcc00", "#ff6699", "#cc88ff", "#88ffcc"}

// WriteSVG renders every recorded trajectory as one SVG document: a
// polyline per body, a filled circle for the central mass at the
// origin, and a dot at each body's final position. World coordinates
// are scaled uniformly so orbits keep their shape.
func WriteSVG(w io.Writer, result *sim.Result, width, height int) error {
	ids := result.IDs()
	trajectories := make(map[uint32][]geometry.Vec, len(ids))

	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	for _, id := range ids {
		traj := result.Trajectory(id)
		trajectories[id] = traj
		for _, p := range traj {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	half := math.Max(maxX-minX, maxY-minY) / 2
	if half == 0 {
		half = 1
	}
	half *= 1.1
	scale := math.Min(float64(width), float64(height)) / (2 * half)

	project := func(p geometry.Vec) (float64, float64) {
		return float64(width)/2 + (p.X-cx)*scale, float64(height)/2 - (p.Y-cy)*scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	ox, oy := project(geometry.Vec{})
	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#ffaa00\"/>\n", ox, oy))

	for i, id := range ids {
		traj := trajectories[id]
		if len(traj) == 0 {
			continue
		}
		color := palette[i%len(palette)]
		if len(traj) > 1 {
			sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, color))
			for j, p := range traj {
				x, y := project(p)
				if j > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			}
			sb.WriteString("\"/>\n")
		}
		x, y := project(traj[len(traj)-1])
		sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"2.5\" fill=\"%s\"/>\n", x, y, color))
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
