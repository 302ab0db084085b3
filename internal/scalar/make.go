package scalar

import (
	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
)

// MakePassive returns a constant with value v and zero derivatives.
// Dynamic types size their derivatives with k; static types ignore k.
func MakePassive[S Number[S]](v float64, k int) S {
	var z S
	return z.passive(v, k)
}

// MakeActive returns the idx-th of k independent variables with value v.
// Static types ignore k and use their own dimension.
//
// Panics unless 0 <= idx < k (static: 0 <= idx < D.Len()).
func MakeActive[S Number[S]](v float64, idx, k int) S {
	var z S
	return z.active(v, idx, k)
}

// MakeActiveVector turns values into independent variables: element i is
// variable i of len(values). Static types require len(values) == D.Len().
func MakeActiveVector[S Number[S]](values []float64) []S {
	var z S
	k, static := z.static()
	if static {
		check.Equal("active vector length", len(values), k)
	} else {
		k = len(values)
	}

	out := make([]S, len(values))
	for i, v := range values {
		out[i] = z.active(v, i, k)
	}
	return out
}

// MakePassiveVector returns one constant of dimension k per value.
func MakePassiveVector[S Number[S]](values []float64, k int) []S {
	var z S
	out := make([]S, len(values))
	for i, v := range values {
		out[i] = z.passive(v, k)
	}
	return out
}

// Univariate lists the types that can be built from a scalar first and second
// derivative: one-dimensional static types and dynamic types.
type Univariate interface {
	Scalar[D1] | FirstOrder[D1] | Dynamic | DynamicFirstOrder
}

// KnownUnivariate returns a one-variable value with derivative g and second
// derivative h. First-order types drop h.
func KnownUnivariate[S Univariate](v, g, h float64) S {
	grad := deriv.NewVec([]float64{g})
	hess := deriv.NewSym(1, []float64{h})

	var out any
	var z S
	switch any(z).(type) {
	case Scalar[D1]:
		out = KnownDerivatives[D1](v, grad, hess)
	case FirstOrder[D1]:
		out = KnownGradient[D1](v, grad)
	case Dynamic:
		out = KnownDynamic(v, grad, hess)
	case DynamicFirstOrder:
		out = KnownDynamicGradient(v, grad)
	}
	return out.(S)
}
