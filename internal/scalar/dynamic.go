package scalar

import (
	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
)

// Dynamic is a differentiable value with gradient and Hessian whose dimension
// is chosen at construction time. Every Dynamic combined in one expression
// must share the same dimension; binary operations panic otherwise.
//
// The zero value is the constant 0 of dimension 0, which combines with
// operands of any dimension as a constant.
type Dynamic struct {
	val  float64
	grad deriv.Vec
	hess deriv.Sym
}

// KnownDynamic returns a value with the given derivatives, copied verbatim.
// The dimension is g.Len().
//
// Panics unless h.Size() equals g.Len().
func KnownDynamic(v float64, g deriv.Vec, h deriv.Sym) Dynamic {
	check.Equal("hessian size", h.Size(), g.Len())
	return Dynamic{val: v, grad: g.Clone(), hess: h.Clone()}
}

// Value returns the function value.
func (s Dynamic) Value() float64 { return s.val }

// Dim returns the number of independent variables.
func (s Dynamic) Dim() int { return s.grad.Len() }

// Gradient returns a copy of the gradient.
func (s Dynamic) Gradient() deriv.Vec { return s.grad.Clone() }

// Hessian returns a copy of the Hessian.
func (s Dynamic) Hessian() deriv.Sym { return s.hess.Clone() }

func (Dynamic) static() (int, bool) { return 0, false }

func (s Dynamic) parts() core {
	return core{val: s.val, grad: s.grad, hess: s.hess, second: true}
}

func (Dynamic) with(c core) Dynamic {
	return Dynamic{val: c.val, grad: c.grad, hess: c.hess}
}

func (Dynamic) passive(v float64, k int) Dynamic {
	check.GEQ("passive size", k, 0)
	return Dynamic{val: v, grad: deriv.ZeroVec(k), hess: deriv.ZeroSym(k)}
}

func (Dynamic) active(v float64, idx, k int) Dynamic {
	check.GEQ("active index", idx, 0)
	check.Less("active index", idx, k)
	return Dynamic{val: v, grad: deriv.Unit(k, idx), hess: deriv.ZeroSym(k)}
}

// DynamicFirstOrder is the gradient-only counterpart of Dynamic.
type DynamicFirstOrder struct {
	val  float64
	grad deriv.Vec
}

// KnownDynamicGradient returns a value with the given gradient, copied
// verbatim. The dimension is g.Len().
func KnownDynamicGradient(v float64, g deriv.Vec) DynamicFirstOrder {
	return DynamicFirstOrder{val: v, grad: g.Clone()}
}

// Value returns the function value.
func (s DynamicFirstOrder) Value() float64 { return s.val }

// Dim returns the number of independent variables.
func (s DynamicFirstOrder) Dim() int { return s.grad.Len() }

// Gradient returns a copy of the gradient.
func (s DynamicFirstOrder) Gradient() deriv.Vec { return s.grad.Clone() }

func (DynamicFirstOrder) static() (int, bool) { return 0, false }

func (s DynamicFirstOrder) parts() core { return core{val: s.val, grad: s.grad} }

func (DynamicFirstOrder) with(c core) DynamicFirstOrder {
	return DynamicFirstOrder{val: c.val, grad: c.grad}
}

func (DynamicFirstOrder) passive(v float64, k int) DynamicFirstOrder {
	check.GEQ("passive size", k, 0)
	return DynamicFirstOrder{val: v, grad: deriv.ZeroVec(k)}
}

func (DynamicFirstOrder) active(v float64, idx, k int) DynamicFirstOrder {
	check.GEQ("active index", idx, 0)
	check.Less("active index", idx, k)
	return DynamicFirstOrder{val: v, grad: deriv.Unit(k, idx)}
}
