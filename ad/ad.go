// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ad provides differentiable scalars that carry exact gradients and
// Hessians through ordinary arithmetic (forward-mode automatic
// differentiation).
//
// Pick a type by sizing mode and derivative order:
//
//	Scalar[D]          static dimension, gradient + Hessian
//	FirstOrder[D]      static dimension, gradient only
//	Dynamic            dimension chosen at runtime, gradient + Hessian
//	DynamicFirstOrder  dimension chosen at runtime, gradient only
//
// Example:
//
//	import "github.com/born-ml/hessad/ad"
//
//	func main() {
//	    x := ad.MakeActiveVector[ad.Scalar[ad.D2]]([]float64{0.8, -1.7})
//	    f := ad.Add(ad.Mul(ad.Square(x[0]), x[1]), ad.Sin(ad.Mul(x[0], x[1])))
//
//	    fmt.Println(f.Value(), f.Gradient().Slice(), f.Hessian().Rows())
//	}
//
// Invalid indices and sizes panic with a *ContractError.
package ad

import (
	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
	"github.com/born-ml/hessad/internal/scalar"
)

// Dim fixes the number of independent variables of a static scalar.
type Dim = scalar.Dim

// Marker dimensions.
type (
	D1 = scalar.D1
	D2 = scalar.D2
	D3 = scalar.D3
	D4 = scalar.D4
	D5 = scalar.D5
	D6 = scalar.D6
	D7 = scalar.D7
	D8 = scalar.D8
)

// Scalar is a static-dimension value with gradient and Hessian.
type Scalar[D Dim] = scalar.Scalar[D]

// FirstOrder is a static-dimension value with gradient only.
type FirstOrder[D Dim] = scalar.FirstOrder[D]

// Dynamic is a runtime-dimension value with gradient and Hessian.
type Dynamic = scalar.Dynamic

// DynamicFirstOrder is a runtime-dimension value with gradient only.
type DynamicFirstOrder = scalar.DynamicFirstOrder

// Number is satisfied by the four scalar types.
type Number[S any] = scalar.Number[S]

// Univariate lists the types KnownUnivariate can build.
type Univariate = scalar.Univariate

// Vector is a gradient container.
type Vector = deriv.Vec

// Matrix is a symmetric Hessian container.
type Matrix = deriv.Sym

// ContractError is the panic value of a violated precondition.
type ContractError = check.ContractError

// NewVector copies data into a gradient container.
func NewVector(data []float64) Vector { return deriv.NewVec(data) }

// NewMatrix builds an n×n symmetric Hessian container from row-major data.
func NewMatrix(n int, data []float64) Matrix { return deriv.NewSym(n, data) }

// Constant returns a static passive value.
func Constant[D Dim](v float64) Scalar[D] { return scalar.Constant[D](v) }

// Active returns the idx-th static independent variable.
func Active[D Dim](v float64, idx int) Scalar[D] { return scalar.Active[D](v, idx) }

// KnownDerivatives returns a static value with the given derivatives.
func KnownDerivatives[D Dim](v float64, g Vector, h Matrix) Scalar[D] {
	return scalar.KnownDerivatives[D](v, g, h)
}

// FirstOrderConstant returns a static gradient-only passive value.
func FirstOrderConstant[D Dim](v float64) FirstOrder[D] { return scalar.FirstOrderConstant[D](v) }

// FirstOrderActive returns the idx-th static gradient-only independent variable.
func FirstOrderActive[D Dim](v float64, idx int) FirstOrder[D] {
	return scalar.FirstOrderActive[D](v, idx)
}

// KnownGradient returns a static gradient-only value with the given gradient.
func KnownGradient[D Dim](v float64, g Vector) FirstOrder[D] { return scalar.KnownGradient[D](v, g) }

// KnownDynamic returns a dynamic value with the given derivatives.
func KnownDynamic(v float64, g Vector, h Matrix) Dynamic { return scalar.KnownDynamic(v, g, h) }

// KnownDynamicGradient returns a dynamic gradient-only value.
func KnownDynamicGradient(v float64, g Vector) DynamicFirstOrder {
	return scalar.KnownDynamicGradient(v, g)
}

// KnownUnivariate returns a one-variable value from scalar derivatives.
func KnownUnivariate[S Univariate](v, g, h float64) S { return scalar.KnownUnivariate[S](v, g, h) }

// MakePassive returns a constant; dynamic types are sized with k.
func MakePassive[S Number[S]](v float64, k int) S { return scalar.MakePassive[S](v, k) }

// MakeActive returns the idx-th of k independent variables.
func MakeActive[S Number[S]](v float64, idx, k int) S { return scalar.MakeActive[S](v, idx, k) }

// MakeActiveVector turns values into independent variables.
func MakeActiveVector[S Number[S]](values []float64) []S {
	return scalar.MakeActiveVector[S](values)
}

// MakePassiveVector returns constants of dimension k.
func MakePassiveVector[S Number[S]](values []float64, k int) []S {
	return scalar.MakePassiveVector[S](values, k)
}

// Dimension reports the static dimension of S.
func Dimension[S Number[S]]() (k int, ok bool) { return scalar.Dimension[S]() }
