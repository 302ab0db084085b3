package objective

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultStep is the finite-difference step used when step <= 0.
const DefaultStep = 1e-6

// GradientError returns the largest absolute difference between the assembled
// gradient and a central finite difference of the value.
func (a *Assembler[S]) GradientError(x []float64, elements [][]int, step float64) (float64, error) {
	if step <= 0 {
		step = DefaultStep
	}
	grad, err := a.Gradient(x, elements)
	if err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, nil
	}

	var evalErr error
	value := func(xs []float64) float64 {
		v, err := a.Value(xs, elements)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return v
	}
	approx := fd.Gradient(nil, value, x, &fd.Settings{Formula: fd.Central, Step: step})
	if evalErr != nil {
		return 0, evalErr
	}
	return floats.Distance(approx, grad, math.Inf(1)), nil
}

// HessianError returns the largest absolute difference between the assembled
// Hessian and a central finite difference of the assembled gradient.
func (a *Assembler[S]) HessianError(x []float64, elements [][]int, step float64) (float64, error) {
	if step <= 0 {
		step = DefaultStep
	}
	h, err := a.Hessian(x, elements)
	if err != nil {
		return 0, err
	}

	n := len(x)
	var evalErr error
	gradient := func(y, xs []float64) {
		g, err := a.Gradient(xs, elements)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return
		}
		copy(y, g)
	}
	jac := mat.NewDense(n, n, nil)
	fd.Jacobian(jac, gradient, x, &fd.JacobianSettings{Formula: fd.Central, Step: step})
	if evalErr != nil {
		return 0, evalErr
	}

	var worst float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			worst = math.Max(worst, math.Abs(jac.At(i, j)-h.At(i, j)))
		}
	}
	return worst, nil
}
