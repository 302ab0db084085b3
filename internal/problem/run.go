package problem

import (
	"fmt"

	"github.com/born-ml/hessad/internal/objective"
	"gonum.org/v1/gonum/mat"
)

// Report is the outcome of a finite-difference check.
type Report struct {
	GradientError float64
	HessianError  float64
	Tolerance     float64
}

// Passed reports whether both errors are within tolerance.
func (r *Report) Passed() bool {
	return r.GradientError <= r.Tolerance && r.HessianError <= r.Tolerance
}

// Evaluator builds the assembler for the problem's objective and mode.
func (p *Problem) Evaluator() (Evaluator, error) {
	entry, err := Lookup(p.Objective)
	if err != nil {
		return nil, err
	}
	if !entry.Supports(p.Mode) {
		return nil, fmt.Errorf("objective %q in %s mode: %w", p.Objective, p.Mode, ErrModeUnsupported)
	}

	build := entry.dynamic
	if p.Mode == Static {
		build = entry.static
	}
	return build(p.params(entry), objective.WithWorkers(p.Workers)), nil
}

// Evaluate returns the assembled value, gradient and dense Hessian at X.
func (p *Problem) Evaluate() (*objective.Result, *mat.SymDense, error) {
	ev, err := p.Evaluator()
	if err != nil {
		return nil, nil, err
	}
	res, err := ev.Compute(p.X, p.Elements)
	if err != nil {
		return nil, nil, fmt.Errorf("evaluate %s: %w", p.Name, err)
	}
	h, err := objective.Dense(len(p.X), res.Triplets)
	if err != nil {
		return nil, nil, fmt.Errorf("assemble hessian for %s: %w", p.Name, err)
	}
	return res, h, nil
}

// Verify compares assembled derivatives at X against finite differences.
func (p *Problem) Verify() (*Report, error) {
	ev, err := p.Evaluator()
	if err != nil {
		return nil, err
	}

	gErr, err := ev.GradientError(p.X, p.Elements, p.Check.Step)
	if err != nil {
		return nil, fmt.Errorf("check gradient of %s: %w", p.Name, err)
	}
	hErr, err := ev.HessianError(p.X, p.Elements, p.Check.Step)
	if err != nil {
		return nil, fmt.Errorf("check hessian of %s: %w", p.Name, err)
	}

	return &Report{GradientError: gErr, HessianError: hErr, Tolerance: p.Check.Tolerance}, nil
}
