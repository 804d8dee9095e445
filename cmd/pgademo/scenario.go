package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/pga3d"
)

// Scenario is a named sequence of rigid motions and the points to move.
type Scenario struct {
	// Name identifies the scenario in the output.
	Name string `yaml:"name"`

	// Steps are combined in order, so the first step is applied first.
	Steps []Step `yaml:"steps"`

	// Points are positions to transform with the combined motor.
	Points [][3]float64 `yaml:"points"`
}

// Step is one motion. Exactly one field must be set.
type Step struct {
	Translate *[3]float64 `yaml:"translate,omitempty"`
	Rotate    *RotateStep `yaml:"rotate,omitempty"`
	Euler     *[3]float64 `yaml:"euler,omitempty"` // degrees
	Inverse   bool        `yaml:"inverse,omitempty"`
}

// RotateStep is a rotation about a unit axis through the origin.
type RotateStep struct {
	Axis    [3]float64 `yaml:"axis"`
	Degrees float64    `yaml:"degrees"`
}

var (
	errEmptyStep     = errors.New("step sets no motion")
	errAmbiguousStep = errors.New("step sets more than one motion")
)

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a scenario from YAML. Unknown fields are rejected.
func ParseScenario(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if s.Name == "" {
		return nil, errors.New("parse scenario: name is required")
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (s Step) validate() error {
	n := 0
	if s.Translate != nil {
		n++
	}
	if s.Rotate != nil {
		n++
	}
	if s.Euler != nil {
		n++
	}
	if s.Inverse {
		n++
	}
	switch {
	case n == 0:
		return errEmptyStep
	case n > 1:
		return errAmbiguousStep
	}
	return nil
}

func (s Step) kind() string {
	switch {
	case s.Translate != nil:
		return "translate"
	case s.Rotate != nil:
		return "rotate"
	case s.Euler != nil:
		return "euler"
	default:
		return "inverse"
	}
}

// apply returns m followed by the step.
func (s Step) apply(m pga3d.Motor) (pga3d.Motor, error) {
	switch {
	case s.Translate != nil:
		t := s.Translate
		return m.Combine(pga3d.Translation(pga3d.Float(t[0]), pga3d.Float(t[1]), pga3d.Float(t[2]))), nil
	case s.Rotate != nil:
		a := s.Rotate.Axis
		r, err := pga3d.TryAxisAngle(pga3d.Float(a[0]), pga3d.Float(a[1]), pga3d.Float(a[2]),
			pga3d.Radians(pga3d.Float(s.Rotate.Degrees)))
		if err != nil {
			return m, err
		}
		return m.Combine(r), nil
	case s.Euler != nil:
		e := s.Euler
		return m.Combine(pga3d.EulerAngles(
			pga3d.Radians(pga3d.Float(e[0])),
			pga3d.Radians(pga3d.Float(e[1])),
			pga3d.Radians(pga3d.Float(e[2])),
		)), nil
	default:
		return m.Inverse(), nil
	}
}

// Motor combines all steps into one motor.
func (s *Scenario) Motor() (pga3d.Motor, error) {
	m := pga3d.Identity()
	for i, step := range s.Steps {
		var err error
		if m, err = step.apply(m); err != nil {
			return pga3d.Motor{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		pga3d.Logger().Debug("pgademo: applied step", "index", i+1, "kind", step.kind())
	}
	return m, nil
}
