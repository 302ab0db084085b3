// Package objective assembles global derivatives of objectives that are sums
// of small local terms.
//
// Each element is a tuple of global variable indices. The local function is
// evaluated on the element's variables made active (variable l of the element
// is independent variable l), and the local gradient and Hessian are scattered
// back into the global vector and matrix:
//
//	grad[e[l]]      += g[l]
//	hess[e[l]][e[m]] += H[l][m]
//
// Indices may repeat across elements and within an element; contributions are
// summed.
package objective

import (
	"errors"
	"fmt"

	"github.com/born-ml/hessad/internal/deriv"
	"github.com/born-ml/hessad/internal/parallel"
	"github.com/born-ml/hessad/internal/scalar"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned for malformed inputs.
var (
	ErrElementArity = errors.New("objective: element arity mismatch")
	ErrIndexRange   = errors.New("objective: variable index out of range")
	ErrNoVariables  = errors.New("objective: no variables")
)

// Variable is a differentiable scalar type that tracks the Hessian.
type Variable[S any] interface {
	scalar.Number[S]
	Hessian() deriv.Sym
}

// Func evaluates one local term from the element's active variables.
type Func[S any] func(vars []S) S

// Triplet is one (row, col, value) contribution to the global Hessian.
type Triplet struct {
	Row, Col int
	Value    float64
}

// Result holds the assembled value, gradient and Hessian triplets.
type Result struct {
	Value    float64
	Gradient []float64
	Triplets []Triplet
}

// Option configures an Assembler.
type Option func(*options)

type options struct {
	cfg parallel.Config
}

// WithParallel sets the parallel execution config for element evaluation.
func WithParallel(cfg parallel.Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithWorkers evaluates elements on n goroutines. n <= 0 uses the CPU count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.cfg = o.cfg.WithWorkers(n)
	}
}

// Assembler evaluates a local function on every element and assembles the
// global value, gradient and Hessian.
type Assembler[S Variable[S]] struct {
	fn  Func[S]
	cfg parallel.Config
}

// New creates an Assembler for the local function fn.
func New[S Variable[S]](fn Func[S], opts ...Option) *Assembler[S] {
	o := &options{cfg: parallel.DefaultConfig()}
	for _, opt := range opts {
		opt(o)
	}
	return &Assembler[S]{fn: fn, cfg: o.cfg}
}

// Compute returns value, gradient and Hessian triplets at x.
func (a *Assembler[S]) Compute(x []float64, elements [][]int) (*Result, error) {
	locals, err := a.evaluate(x, elements)
	if err != nil {
		return nil, err
	}

	res := &Result{Gradient: make([]float64, len(x))}
	for i, e := range elements {
		loc := locals[i]
		res.Value += loc.Value()
		if loc.Dim() == 0 {
			continue
		}
		g := loc.Gradient()
		h := loc.Hessian()
		for l, gl := range e {
			res.Gradient[gl] += g.At(l)
			for m, gm := range e {
				res.Triplets = append(res.Triplets, Triplet{Row: gl, Col: gm, Value: h.At(l, m)})
			}
		}
	}
	return res, nil
}

// Value returns the sum of local values at x.
func (a *Assembler[S]) Value(x []float64, elements [][]int) (float64, error) {
	locals, err := a.evaluate(x, elements)
	if err != nil {
		return 0, err
	}
	var v float64
	for _, loc := range locals {
		v += loc.Value()
	}
	return v, nil
}

// Gradient returns the assembled gradient at x.
func (a *Assembler[S]) Gradient(x []float64, elements [][]int) ([]float64, error) {
	res, err := a.Compute(x, elements)
	if err != nil {
		return nil, err
	}
	return res.Gradient, nil
}

// Triplets returns the Hessian contributions at x, one per local entry.
func (a *Assembler[S]) Triplets(x []float64, elements [][]int) ([]Triplet, error) {
	res, err := a.Compute(x, elements)
	if err != nil {
		return nil, err
	}
	return res.Triplets, nil
}

// Hessian returns the assembled dense Hessian at x.
func (a *Assembler[S]) Hessian(x []float64, elements [][]int) (*mat.SymDense, error) {
	res, err := a.Compute(x, elements)
	if err != nil {
		return nil, err
	}
	return Dense(len(x), res.Triplets)
}

// Dense sums triplets into an n×n symmetric matrix. Triplets are expected in
// symmetric pairs, so only those on or above the diagonal are read.
func Dense(n int, trips []Triplet) (*mat.SymDense, error) {
	if n == 0 {
		return nil, ErrNoVariables
	}
	h := mat.NewSymDense(n, nil)
	for _, t := range trips {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return nil, fmt.Errorf("triplet (%d, %d) in %d×%d matrix: %w", t.Row, t.Col, n, n, ErrIndexRange)
		}
		if t.Row > t.Col {
			continue
		}
		h.SetSym(t.Row, t.Col, h.At(t.Row, t.Col)+t.Value)
	}
	return h, nil
}

// evaluate runs the local function on every element.
func (a *Assembler[S]) evaluate(x []float64, elements [][]int) ([]S, error) {
	if err := validate[S](len(x), elements); err != nil {
		return nil, err
	}

	locals := parallel.Map(len(elements), func(i int) S {
		e := elements[i]
		vals := make([]float64, len(e))
		for l, g := range e {
			vals[l] = x[g]
		}
		return a.fn(scalar.MakeActiveVector[S](vals))
	}, a.cfg)

	for i, loc := range locals {
		if d := loc.Dim(); d != 0 && d != len(elements[i]) {
			return nil, fmt.Errorf("element %d: local result has dimension %d, want %d: %w",
				i, d, len(elements[i]), ErrElementArity)
		}
	}
	return locals, nil
}

func validate[S Variable[S]](n int, elements [][]int) error {
	k, static := scalar.Dimension[S]()
	for i, e := range elements {
		if static && len(e) != k {
			return fmt.Errorf("element %d has %d indices, want %d: %w", i, len(e), k, ErrElementArity)
		}
		for _, g := range e {
			if g < 0 || g >= n {
				return fmt.Errorf("element %d: index %d not in [0, %d): %w", i, g, n, ErrIndexRange)
			}
		}
	}
	return nil
}
