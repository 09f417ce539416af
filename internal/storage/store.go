// Package storage persists finished runs as one directory each:
// metadata.json for the configuration and metrics, states.csv for the
// sampled frames.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	G           float64            `json:"g"`
	SolarMass   float64            `json:"solar_mass"`
	MinDist     float64            `json:"min_dist"`
	MaxDist     float64            `json:"max_dist"`
	Dt          float64            `json:"dt"`
	Steps       int                `json:"steps"`
	SampleEvery int                `json:"sample_every"`
	Seed        int64              `json:"seed"`
	Bodies      int                `json:"bodies"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes one run directory and returns its id.
func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	name := cfg.Name
	if name == "" {
		name = "run"
	}
	runID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	bodies := 0
	if len(result.Frames) > 0 {
		bodies = len(result.Frames[0].Bodies)
	}
	meta := RunMetadata{
		ID:          runID,
		Name:        name,
		Timestamp:   time.Now(),
		G:           cfg.G,
		SolarMass:   cfg.SolarMass,
		MinDist:     cfg.MinDist,
		MaxDist:     cfg.MaxDist,
		Dt:          cfg.Dt,
		Steps:       result.Steps,
		SampleEvery: cfg.SampleEvery,
		Seed:        cfg.Seed,
		Bodies:      bodies,
		Metrics:     result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, result); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns every readable run's metadata, newest first. Corrupt
// or foreign directories are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult reads a run's frames back from its CSV. Metrics come from
// the metadata, so the result round-trips through Save.
func (s *Store) LoadResult(runID string) (*sim.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, "states.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	frames, err := readFrames(file)
	if err != nil {
		return nil, err
	}
	return &sim.Result{
		Steps:   meta.Steps,
		Frames:  frames,
		Metrics: meta.Metrics,
	}, nil
}

func readFrames(file *os.File) ([]sim.Frame, error) {
	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0)
	var current *sim.Frame
	for _, record := range records[1:] {
		if len(record) != 7 {
			continue
		}
		step, err := strconv.Atoi(record[0])
		if err != nil {
			continue
		}
		t, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		id, err := strconv.ParseUint(record[2], 10, 32)
		if err != nil {
			continue
		}

		var vals [4]float64
		bad := false
		for i, col := range record[3:] {
			v, err := strconv.ParseFloat(col, 64)
			if err != nil {
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			continue
		}

		if current == nil || current.Step != step {
			frames = append(frames, sim.Frame{Step: step, Time: t})
			current = &frames[len(frames)-1]
		}
		current.Bodies = append(current.Bodies, sim.BodyState{
			ID: uint32(id),
			X:  vals[0],
			Y:  vals[1],
			DX: vals[2],
			DY: vals[3],
		})
	}
	return frames, nil
}
