// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package objective assembles the global value, gradient and Hessian of
// objectives written as a sum of small local terms. The Hessian is returned as
// (row, col, value) triplets or as a dense symmetric matrix.
//
// Example:
//
//	import (
//	    "github.com/born-ml/hessad/ad"
//	    "github.com/born-ml/hessad/objective"
//	)
//
//	type S = ad.Scalar[ad.D2]
//
//	asm := objective.New(func(v []S) S {
//	    return ad.Square(ad.Sub(v[0], v[1]))
//	})
//	res, err := asm.Compute([]float64{0, 1, 3}, [][]int{{0, 1}, {1, 2}})
package objective

import (
	"github.com/born-ml/hessad/internal/objective"
	"github.com/born-ml/hessad/internal/parallel"
	"gonum.org/v1/gonum/mat"
)

// Variable is a differentiable scalar type that tracks the Hessian.
type Variable[S any] = objective.Variable[S]

// Func evaluates one local term from the element's active variables.
type Func[S any] = objective.Func[S]

// Assembler evaluates a local function on every element.
type Assembler[S Variable[S]] = objective.Assembler[S]

// Triplet is one (row, col, value) Hessian contribution.
type Triplet = objective.Triplet

// Result holds the assembled value, gradient and Hessian triplets.
type Result = objective.Result

// Option configures an Assembler.
type Option = objective.Option

// ParallelConfig controls how elements are spread across goroutines.
type ParallelConfig = parallel.Config

// Sentinel errors.
var (
	ErrElementArity = objective.ErrElementArity
	ErrIndexRange   = objective.ErrIndexRange
	ErrNoVariables  = objective.ErrNoVariables
)

// DefaultStep is the finite-difference step used by the checks.
const DefaultStep = objective.DefaultStep

// New creates an Assembler for the local function fn.
func New[S Variable[S]](fn Func[S], opts ...Option) *Assembler[S] {
	return objective.New(fn, opts...)
}

// WithWorkers evaluates elements on n goroutines. n <= 0 uses the CPU count.
func WithWorkers(n int) Option { return objective.WithWorkers(n) }

// WithParallel sets the parallel execution config.
func WithParallel(cfg ParallelConfig) Option { return objective.WithParallel(cfg) }

// DefaultParallelConfig returns the default parallel config.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }

// Dense sums triplets into an n×n symmetric matrix.
func Dense(n int, trips []Triplet) (*mat.SymDense, error) { return objective.Dense(n, trips) }
