package config

import "sort"

// Presets are ready-made configurations. "earth" uses SI units around
// a solar-mass attractor; the rest use natural units tuned to look
// right in the viewers.
var Presets = map[string]*Config{
	"earth": {
		Name: "earth", G: 6.674e-11, SolarMass: 1.989e30,
		MinDist: 1.0e6, MaxDist: 1.0e12,
		Dt: 3600, Steps: 6240, SampleEvery: 6, Seed: 42,
		Bodies: []BodyConfig{
			{ID: 1, Mass: 5.972e24, X: 1.0e11, DY: 29780},
		},
	},
	"belt": {
		Name: "belt", G: 1, SolarMass: 1.0e6,
		MinDist: 10, MaxDist: 1.0e4,
		Dt: 0.05, Steps: 20000, SampleEvery: 20, Seed: 42,
		Distribute: DistributeConfig{Count: 256, MinDist: 200, MaxDist: 600},
	},
	"drift": {
		Name: "drift", G: 1, SolarMass: 1.0e6,
		MinDist: 10, MaxDist: 1.0e4,
		Dt: 0.05, Steps: 12000, SampleEvery: 20, Seed: 42,
		Distribute: DistributeConfig{Count: 128, MinDist: 200, MaxDist: 600, DY: 15},
	},
	"swarm": {
		Name: "swarm", G: 1, SolarMass: 1.0e6,
		MinDist: 10, MaxDist: 1.0e4,
		Dt: 0.02, Steps: 10000, SampleEvery: 50, Seed: 42,
		Distribute: DistributeConfig{Count: 4096, MinDist: 100, MaxDist: 2000},
	},
}

// GetPreset returns the named preset, or nil when it does not exist.
// Callers get a clone and may mutate it freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
