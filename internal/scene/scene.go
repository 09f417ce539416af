// Package scene loads complete simulation setups from YAML: field
// constants plus named groups of bodies, either listed explicitly or
// generated radially. Groups are built in document order, so generated
// ids are reproducible for a given file.
package scene

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/johnxnguyen/newton/internal/distribution"
	"github.com/johnxnguyen/newton/internal/field"
	"github.com/johnxnguyen/newton/internal/geometry"
)

var (
	// ErrGroupShape is returned when a group does not have exactly one
	// of bodies or radial.
	ErrGroupShape = errors.New("scene: group needs exactly one of bodies or radial")

	// ErrMassSpec is returned for mass overrides that could produce
	// non-positive masses.
	ErrMassSpec = errors.New("scene: mass override must stay positive")
)

type Scene struct {
	Name   string  `yaml:"name"`
	Field  Field   `yaml:"field"`
	Groups []Group `yaml:"groups"`
}

type Field struct {
	G         float64 `yaml:"g"`
	SolarMass float64 `yaml:"solar_mass"`
	MinDist   float64 `yaml:"min_dist"`
	MaxDist   float64 `yaml:"max_dist"`
	Dt        float64 `yaml:"dt"`
}

// Group is one named population. Exactly one of Bodies or Radial must
// be set. Rotate and Translate reposition the whole group after
// generation; rotation also turns the velocities so orbits survive it.
type Group struct {
	Name      string  `yaml:"name"`
	Bodies    []Body  `yaml:"bodies"`
	Radial    *Radial `yaml:"radial"`
	Mass      *Mass   `yaml:"mass"`
	Rotate    float64 `yaml:"rotate"`
	Translate Offset  `yaml:"translate"`
}

type Body struct {
	ID   *uint32 `yaml:"id"`
	Mass float64 `yaml:"mass"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	DX   float64 `yaml:"dx"`
	DY   float64 `yaml:"dy"`
}

type Radial struct {
	Count   uint32  `yaml:"count"`
	MinDist float64 `yaml:"min_dist"`
	MaxDist float64 `yaml:"max_dist"`
	DY      float64 `yaml:"dy"`
	Seed    int64   `yaml:"seed"`
}

// Mass overrides the default generated mass, either with a fixed value
// or a seeded uniform range.
type Mass struct {
	Fixed   float64   `yaml:"fixed"`
	Uniform []float64 `yaml:"uniform"`
	Seed    int64     `yaml:"seed"`
}

type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return &s, nil
}

func (s *Scene) Validate() error {
	for _, g := range s.Groups {
		hasBodies := len(g.Bodies) > 0
		hasRadial := g.Radial != nil
		if hasBodies == hasRadial {
			return fmt.Errorf("group %q: %w", g.Name, ErrGroupShape)
		}
		if g.Mass != nil {
			if _, err := g.Mass.gen(); err != nil {
				return fmt.Errorf("group %q: %w", g.Name, err)
			}
		}
	}
	return nil
}

func (m *Mass) gen() (distribution.Gen, error) {
	switch {
	case len(m.Uniform) == 2:
		lo, hi := m.Uniform[0], m.Uniform[1]
		if lo <= 0 || hi < lo {
			return nil, ErrMassSpec
		}
		return distribution.NewUniform(lo, hi, m.Seed), nil
	case m.Fixed > 0:
		return &distribution.Fixed{V: m.Fixed}, nil
	default:
		return nil, ErrMassSpec
	}
}

// Build constructs the field and populates every group in document
// order.
func (s *Scene) Build() (*field.Field, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	f, err := field.New(s.Field.G, s.Field.SolarMass, s.Field.MinDist, s.Field.MaxDist)
	if err != nil {
		return nil, err
	}
	if s.Field.Dt > 0 {
		if err := f.SetTimestep(s.Field.Dt); err != nil {
			return nil, err
		}
	}

	for _, g := range s.Groups {
		if err := buildGroup(f, g); err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
	}
	return f, nil
}

func buildGroup(f *field.Field, g Group) error {
	if g.Radial != nil {
		return buildRadial(f, g)
	}
	for _, b := range g.Bodies {
		id := f.NextID()
		if b.ID != nil {
			id = *b.ID
		}
		pos := transform(geometry.Vec{X: b.X, Y: b.Y}, g, true)
		vel := transform(geometry.Vec{X: b.DX, Y: b.DY}, g, false)
		if err := f.AddBody(id, b.Mass, pos.X, pos.Y, vel.X, vel.Y); err != nil {
			return err
		}
	}
	return nil
}

func buildRadial(f *field.Field, g Group) error {
	radial := distribution.Radial{
		Count:   g.Radial.Count,
		MinDist: g.Radial.MinDist,
		MaxDist: g.Radial.MaxDist,
		DY:      g.Radial.DY,
		Seed:    g.Radial.Seed,
	}
	bodies, err := radial.Generate(f.G(), f.SolarMass(), f.NextID())
	if err != nil {
		return err
	}

	var massGen distribution.Gen
	if g.Mass != nil {
		if massGen, err = g.Mass.gen(); err != nil {
			return err
		}
	}

	for _, b := range bodies {
		mass := b.Mass
		if massGen != nil {
			mass = massGen.Next()
		}
		pos := transform(b.Pos, g, true)
		vel := transform(b.Vel, g, false)
		if err := f.AddBody(b.ID, mass, pos.X, pos.Y, vel.X, vel.Y); err != nil {
			return err
		}
	}
	return nil
}

// transform rotates a group vector about the origin and, for
// positions, applies the group offset. Velocities rotate without
// translating.
func transform(v geometry.Vec, g Group, translate bool) geometry.Vec {
	if g.Rotate != 0 {
		v = geometry.NewRotation(g.Rotate).Apply(v)
	}
	if translate {
		v = v.Add(geometry.Vec{X: g.Translate.X, Y: g.Translate.Y})
	}
	return v
}
