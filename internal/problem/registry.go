package problem

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/hessad/internal/objective"
	"github.com/born-ml/hessad/internal/scalar"
	"gonum.org/v1/gonum/mat"
)

// ErrUnknownObjective is returned for names missing from the registry.
var ErrUnknownObjective = errors.New("problem: unknown objective")

// Evaluator is the mode-independent view of an objective.Assembler.
type Evaluator interface {
	Compute(x []float64, elements [][]int) (*objective.Result, error)
	Hessian(x []float64, elements [][]int) (*mat.SymDense, error)
	GradientError(x []float64, elements [][]int, step float64) (float64, error)
	HessianError(x []float64, elements [][]int, step float64) (float64, error)
}

// Params holds resolved objective parameters.
type Params map[string]float64

type builder func(p Params, opts ...objective.Option) Evaluator

// Entry describes a built-in objective.
type Entry struct {
	Name     string
	Arity    int // Indices per element; 0 means any.
	Defaults map[string]float64

	static  builder // nil when the objective has no fixed arity
	dynamic builder
}

var registry = map[string]Entry{
	"spring": {
		Name:     "spring",
		Arity:    4,
		Defaults: map[string]float64{"stiffness": 1, "rest_length": 1},
		static: func(p Params, opts ...objective.Option) Evaluator {
			return objective.New(Spring[scalar.Scalar[scalar.D4]](p["stiffness"], p["rest_length"]), opts...)
		},
		dynamic: func(p Params, opts ...objective.Option) Evaluator {
			return objective.New(Spring[scalar.Dynamic](p["stiffness"], p["rest_length"]), opts...)
		},
	},
	"rosenbrock": {
		Name:     "rosenbrock",
		Arity:    2,
		Defaults: map[string]float64{"a": 1, "b": 100},
		static: func(p Params, opts ...objective.Option) Evaluator {
			return objective.New(Rosenbrock[scalar.Scalar[scalar.D2]](p["a"], p["b"]), opts...)
		},
		dynamic: func(p Params, opts ...objective.Option) Evaluator {
			return objective.New(Rosenbrock[scalar.Dynamic](p["a"], p["b"]), opts...)
		},
	},
	"quadratic": {
		Name:     "quadratic",
		Defaults: map[string]float64{"weight": 1},
		dynamic: func(p Params, opts ...objective.Option) Evaluator {
			return objective.New(Quadratic[scalar.Dynamic](p["weight"]), opts...)
		},
	},
}

// Lookup returns the registry entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknownObjective)
	}
	return e, nil
}

// Names returns the registered objective names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Supports reports whether the entry can run in mode m.
func (e Entry) Supports(m Mode) bool {
	switch m {
	case Static:
		return e.static != nil
	case Dynamic:
		return e.dynamic != nil
	}
	return false
}
