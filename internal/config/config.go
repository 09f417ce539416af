package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultG           = 1.0
	DefaultSolarMass   = 1.0e6
	DefaultMinDist     = 10.0
	DefaultMaxDist     = 1.0e4
	DefaultDt          = 0.1
	DefaultSteps       = 5000
	DefaultSampleEvery = 10
)

// Config describes one simulation run: the field constants, an
// optional generated population, explicit bodies, and the run length.
type Config struct {
	Name        string           `yaml:"name"`
	G           float64          `yaml:"g"`
	SolarMass   float64          `yaml:"solar_mass"`
	MinDist     float64          `yaml:"min_dist"`
	MaxDist     float64          `yaml:"max_dist"`
	Dt          float64          `yaml:"dt"`
	Steps       int              `yaml:"steps"`
	SampleEvery int              `yaml:"sample_every"`
	Seed        int64            `yaml:"seed"`
	Distribute  DistributeConfig `yaml:"distribute"`
	Bodies      []BodyConfig     `yaml:"bodies"`
}

// DistributeConfig requests a generated ring of bodies. A zero Count
// disables generation.
type DistributeConfig struct {
	Count   uint32  `yaml:"count"`
	MinDist float64 `yaml:"min_dist"`
	MaxDist float64 `yaml:"max_dist"`
	DY      float64 `yaml:"dy"`
}

// BodyConfig places one explicit body.
type BodyConfig struct {
	ID   uint32  `yaml:"id"`
	Mass float64 `yaml:"mass"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	DX   float64 `yaml:"dx"`
	DY   float64 `yaml:"dy"`
}

func Default() *Config {
	return &Config{
		Name:        "default",
		G:           DefaultG,
		SolarMass:   DefaultSolarMass,
		MinDist:     DefaultMinDist,
		MaxDist:     DefaultMaxDist,
		Dt:          DefaultDt,
		Steps:       DefaultSteps,
		SampleEvery: DefaultSampleEvery,
		Seed:        42,
		Distribute: DistributeConfig{
			Count:   64,
			MinDist: 100,
			MaxDist: 1000,
		},
	}
}

// Load reads a YAML config, layering the file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the constants the same way the field constructor
// will, so a bad config fails before any work starts.
func (c *Config) Validate() error {
	if c.G <= 0 {
		return fmt.Errorf("config: g must be positive, got %v", c.G)
	}
	if c.SolarMass <= 0 {
		return fmt.Errorf("config: solar_mass must be positive, got %v", c.SolarMass)
	}
	if c.MinDist <= 0 || c.MinDist >= c.MaxDist {
		return fmt.Errorf("config: distance bounds must satisfy 0 < min < max, got [%v, %v]", c.MinDist, c.MaxDist)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %v", c.Dt)
	}
	if c.Steps <= 0 {
		return fmt.Errorf("config: steps must be positive, got %d", c.Steps)
	}
	if c.Distribute.Count > 0 {
		if c.Distribute.MinDist <= 0 || c.Distribute.MinDist > c.Distribute.MaxDist {
			return fmt.Errorf("config: distribute bounds must satisfy 0 < min <= max, got [%v, %v]",
				c.Distribute.MinDist, c.Distribute.MaxDist)
		}
	}
	for _, b := range c.Bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("config: body %d mass must be positive, got %v", b.ID, b.Mass)
		}
	}
	return nil
}

// Clone returns an independent copy, so sweeps can mutate one axis
// without touching the base.
func (c *Config) Clone() *Config {
	out := *c
	out.Bodies = make([]BodyConfig, len(c.Bodies))
	copy(out.Bodies, c.Bodies)
	return &out
}
