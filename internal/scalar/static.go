package scalar

import (
	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
)

// Scalar is a differentiable value with gradient and Hessian over D.Len()
// independent variables.
//
// The zero value is the constant 0.
type Scalar[D Dim] struct {
	val  float64
	grad deriv.Vec
	hess deriv.Sym
}

// Constant returns a passive value: zero gradient and zero Hessian.
func Constant[D Dim](v float64) Scalar[D] {
	k := dimOf[D]()
	return Scalar[D]{val: v, grad: deriv.ZeroVec(k), hess: deriv.ZeroSym(k)}
}

// Active returns the idx-th independent variable with value v. Its gradient is
// the unit vector e_idx and its Hessian is zero.
//
// Panics unless 0 <= idx < D.Len().
func Active[D Dim](v float64, idx int) Scalar[D] {
	k := dimOf[D]()
	check.GEQ("active index", idx, 0)
	check.Less("active index", idx, k)
	return Scalar[D]{val: v, grad: deriv.Unit(k, idx), hess: deriv.ZeroSym(k)}
}

// KnownDerivatives returns a value with the given derivatives, copied
// verbatim. Use it to inject analytically computed derivatives of a primitive.
//
// Panics unless g.Len() and h.Size() equal D.Len().
func KnownDerivatives[D Dim](v float64, g deriv.Vec, h deriv.Sym) Scalar[D] {
	k := dimOf[D]()
	check.Equal("gradient length", g.Len(), k)
	check.Equal("hessian size", h.Size(), k)
	return Scalar[D]{val: v, grad: g.Clone(), hess: h.Clone()}
}

// Value returns the function value.
func (s Scalar[D]) Value() float64 { return s.val }

// Dim returns the number of independent variables.
func (s Scalar[D]) Dim() int { return dimOf[D]() }

// Gradient returns a copy of the gradient.
func (s Scalar[D]) Gradient() deriv.Vec { return s.parts().grad.Clone() }

// Hessian returns a copy of the Hessian.
func (s Scalar[D]) Hessian() deriv.Sym { return s.parts().hess.Clone() }

func (s Scalar[D]) static() (int, bool) { return dimOf[D](), true }

func (s Scalar[D]) parts() core {
	c := core{val: s.val, grad: s.grad, hess: s.hess, second: true}
	if k := dimOf[D](); c.grad.Len() != k {
		// Zero value: storage not materialized yet.
		c = constant(s.val, k, true)
	}
	return c
}

func (Scalar[D]) with(c core) Scalar[D] {
	return Scalar[D]{val: c.val, grad: c.grad, hess: c.hess}
}

func (Scalar[D]) passive(v float64, _ int) Scalar[D] { return Constant[D](v) }

func (Scalar[D]) active(v float64, idx, _ int) Scalar[D] { return Active[D](v, idx) }

// FirstOrder is a differentiable value tracking only the gradient over D.Len()
// independent variables.
//
// The zero value is the constant 0.
type FirstOrder[D Dim] struct {
	val  float64
	grad deriv.Vec
}

// FirstOrderConstant returns a passive value with zero gradient.
func FirstOrderConstant[D Dim](v float64) FirstOrder[D] {
	return FirstOrder[D]{val: v, grad: deriv.ZeroVec(dimOf[D]())}
}

// FirstOrderActive returns the idx-th independent variable with value v.
//
// Panics unless 0 <= idx < D.Len().
func FirstOrderActive[D Dim](v float64, idx int) FirstOrder[D] {
	k := dimOf[D]()
	check.GEQ("active index", idx, 0)
	check.Less("active index", idx, k)
	return FirstOrder[D]{val: v, grad: deriv.Unit(k, idx)}
}

// KnownGradient returns a value with the given gradient, copied verbatim.
//
// Panics unless g.Len() equals D.Len().
func KnownGradient[D Dim](v float64, g deriv.Vec) FirstOrder[D] {
	check.Equal("gradient length", g.Len(), dimOf[D]())
	return FirstOrder[D]{val: v, grad: g.Clone()}
}

// Value returns the function value.
func (s FirstOrder[D]) Value() float64 { return s.val }

// Dim returns the number of independent variables.
func (s FirstOrder[D]) Dim() int { return dimOf[D]() }

// Gradient returns a copy of the gradient.
func (s FirstOrder[D]) Gradient() deriv.Vec { return s.parts().grad.Clone() }

func (s FirstOrder[D]) static() (int, bool) { return dimOf[D](), true }

func (s FirstOrder[D]) parts() core {
	if k := dimOf[D](); s.grad.Len() != k {
		return constant(s.val, k, false)
	}
	return core{val: s.val, grad: s.grad}
}

func (FirstOrder[D]) with(c core) FirstOrder[D] {
	return FirstOrder[D]{val: c.val, grad: c.grad}
}

func (FirstOrder[D]) passive(v float64, _ int) FirstOrder[D] { return FirstOrderConstant[D](v) }

func (FirstOrder[D]) active(v float64, idx, _ int) FirstOrder[D] {
	return FirstOrderActive[D](v, idx)
}
