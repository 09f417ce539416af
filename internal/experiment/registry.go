package experiment

import (
	"fmt"
	"os"
	"sort"

	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/integrators"
)

type Registry struct {
	integrators map[string]func() integrators.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		integrators: make(map[string]func() integrators.Integrator),
	}

	r.integrators["symplectic-euler"] = func() integrators.Integrator { return integrators.NewSymplecticEuler() }
	r.integrators["explicit-euler"] = func() integrators.Integrator { return integrators.NewExplicitEuler() }

	return r
}

func (r *Registry) GetIntegrator(name string) (integrators.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveConfig interprets the argument as a preset name first and a
// YAML config path second.
func ResolveConfig(nameOrPath string) (*config.Config, error) {
	if cfg := config.GetPreset(nameOrPath); cfg != nil {
		return cfg, nil
	}
	if _, err := os.Stat(nameOrPath); err == nil {
		return config.Load(nameOrPath)
	}
	return nil, fmt.Errorf("unknown preset or config file: %s", nameOrPath)
}
