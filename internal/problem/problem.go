// Package problem loads YAML problem descriptions and evaluates them with the
// built-in objectives.
package problem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Mode selects the scalar sizing strategy used for evaluation.
type Mode string

// Supported modes.
const (
	Static  Mode = "static"
	Dynamic Mode = "dynamic"
)

// Default check settings.
const (
	DefaultStep      = 1e-6
	DefaultTolerance = 1e-4
)

// Validation errors.
var (
	ErrInvalidMode     = errors.New("problem: invalid mode")
	ErrNoVariables     = errors.New("problem: no variables")
	ErrNoElements      = errors.New("problem: no elements")
	ErrUnknownParam    = errors.New("problem: unknown parameter")
	ErrElementArity    = errors.New("problem: element arity mismatch")
	ErrModeUnsupported = errors.New("problem: mode not supported by objective")
)

// Problem describes one objective evaluation.
type Problem struct {
	Name      string             `yaml:"name"`
	Objective string             `yaml:"objective"`
	Mode      Mode               `yaml:"mode"`
	Params    map[string]float64 `yaml:"params,omitempty"`
	X         []float64          `yaml:"x"`
	Elements  [][]int            `yaml:"elements"`
	Check     CheckConfig        `yaml:"check"`
	Workers   int                `yaml:"workers"` // 0 = runtime.NumCPU()
}

// CheckConfig holds finite-difference verification settings.
type CheckConfig struct {
	Step      float64 `yaml:"step"`
	Tolerance float64 `yaml:"tolerance"`
}

// Load reads and validates a problem file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem: %w", err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(path)
	}
	return p, nil
}

// Parse decodes and validates a problem from YAML.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse problem: %w", err)
	}

	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the problem as YAML.
func (p *Problem) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal problem: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write problem file: %w", err)
	}
	return nil
}

func (p *Problem) applyDefaults() {
	if p.Mode == "" {
		p.Mode = Static
	}
	if p.Check.Step <= 0 {
		p.Check.Step = DefaultStep
	}
	if p.Check.Tolerance <= 0 {
		p.Check.Tolerance = DefaultTolerance
	}
}

// Validate checks the problem against its objective's registry entry.
func (p *Problem) Validate() error {
	entry, err := Lookup(p.Objective)
	if err != nil {
		return err
	}

	switch p.Mode {
	case Static:
		if entry.static == nil {
			return fmt.Errorf("objective %q in %s mode: %w", p.Objective, p.Mode, ErrModeUnsupported)
		}
	case Dynamic:
	default:
		return fmt.Errorf("%q: %w", p.Mode, ErrInvalidMode)
	}

	if len(p.X) == 0 {
		return ErrNoVariables
	}
	if len(p.Elements) == 0 {
		return ErrNoElements
	}

	for name := range p.Params {
		if _, ok := entry.Defaults[name]; !ok {
			return fmt.Errorf("%q for objective %q: %w", name, p.Objective, ErrUnknownParam)
		}
	}

	if entry.Arity > 0 {
		for i, e := range p.Elements {
			if len(e) != entry.Arity {
				return fmt.Errorf("element %d has %d indices, objective %q needs %d: %w",
					i, len(e), p.Objective, entry.Arity, ErrElementArity)
			}
		}
	}
	return nil
}

// params merges the problem's parameters over the entry defaults.
func (p *Problem) params(entry Entry) Params {
	out := make(Params, len(entry.Defaults))
	for k, v := range entry.Defaults {
		out[k] = v
	}
	for k, v := range p.Params {
		out[k] = v
	}
	return out
}
