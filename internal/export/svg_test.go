package export

import (
	"strings"
	"testing"

	"github.com/johnxnguyen/newton/internal/sim"
)

func sampleResult() *sim.Result {
	return &sim.Result{
		Steps: 2,
		Frames: []sim.Frame{
			{Step: 0, Bodies: []sim.BodyState{{ID: 1, X: 10, Y: 0}, {ID: 2, X: -20, Y: 0}}},
			{Step: 1, Bodies: []sim.BodyState{{ID: 1, X: 0, Y: 10}, {ID: 2, X: 0, Y: -20}}},
			{Step: 2, Bodies: []sim.BodyState{{ID: 1, X: -10, Y: 0}, {ID: 2, X: 20, Y: 0}}},
		},
	}
}

func TestWriteSVG(t *testing.T) {
	var sb strings.Builder
	if err := WriteSVG(&sb, sampleResult(), 400, 300); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	got := sb.String()

	if !strings.HasPrefix(got, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(got, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300"`) {
		t.Error("missing svg element with dimensions")
	}
	if n := strings.Count(got, "<polyline"); n != 2 {
		t.Errorf("got %d polylines, want 2", n)
	}
	// Central mass plus one final dot per body.
	if n := strings.Count(got, "<circle"); n != 3 {
		t.Errorf("got %d circles, want 3", n)
	}
	if !strings.Contains(got, "#ffaa00") {
		t.Error("central mass marker missing")
	}
	if !strings.HasSuffix(got, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteSVG(&sb, &sim.Result{}, 100, 100); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	got := sb.String()

	if strings.Contains(got, "<polyline") {
		t.Error("empty result should draw no trajectories")
	}
	if !strings.Contains(got, "</svg>") {
		t.Error("document not closed")
	}
}
