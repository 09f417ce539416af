package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/sim"
)

var csvHeader = []string{"step", "time", "id", "x", "y", "dx", "dy"}

// WriteCSV streams the frames in long form, one row per body per
// sampled step.
func WriteCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, frame := range result.Frames {
		for _, b := range frame.Bodies {
			row := []string{
				strconv.Itoa(frame.Step),
				strconv.FormatFloat(frame.Time, 'f', -1, 64),
				strconv.FormatUint(uint64(b.ID), 10),
				strconv.FormatFloat(b.X, 'f', -1, 64),
				strconv.FormatFloat(b.Y, 'f', -1, 64),
				strconv.FormatFloat(b.DX, 'f', -1, 64),
				strconv.FormatFloat(b.DY, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type exportDoc struct {
	Name      string             `json:"name"`
	G         float64            `json:"g"`
	SolarMass float64            `json:"solar_mass"`
	MinDist   float64            `json:"min_dist"`
	MaxDist   float64            `json:"max_dist"`
	Dt        float64            `json:"dt"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
	Frames    []sim.Frame        `json:"frames"`
}

// WriteJSON emits one self-contained document: the configuration that
// produced the run plus everything it recorded.
func WriteJSON(w io.Writer, cfg *config.Config, result *sim.Result) error {
	doc := exportDoc{
		Name:      cfg.Name,
		G:         cfg.G,
		SolarMass: cfg.SolarMass,
		MinDist:   cfg.MinDist,
		MaxDist:   cfg.MaxDist,
		Dt:        cfg.Dt,
		Seed:      cfg.Seed,
		Steps:     result.Steps,
		Metrics:   result.Metrics,
		Frames:    result.Frames,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
