package scalar

import (
	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
)

// unary applies the chain rule for f(a) given f' = d and f'' = d2 at a:
//
//	∇f = d·∇a
//	Hf = d·Ha + d2·∇a∇aᵀ
func unary(a core, f, d, d2 float64) core {
	n := a.grad.Len()
	r := core{val: f, grad: deriv.ZeroVec(n), second: a.second}
	r.grad.AddScaled(d, a.grad)
	if a.second {
		r.hess = deriv.ZeroSym(n)
		r.hess.AddScaled(d, a.hess)
		r.hess.AddRankOne(d2, a.grad)
	}
	return r
}

// partials holds the first and second partial derivatives of f(a, b).
type partials struct {
	a, b       float64
	aa, ab, bb float64
}

// binary applies the chain rule for f(a, b):
//
//	∇f = fa·∇a + fb·∇b
//	Hf = fa·Ha + fb·Hb + faa·∇a∇aᵀ + fbb·∇b∇bᵀ + fab·(∇a∇bᵀ + ∇b∇aᵀ)
func binary(a, b core, f float64, p partials) core {
	a, b = align(a, b)
	n := a.grad.Len()

	r := core{val: f, grad: deriv.ZeroVec(n), second: a.second}
	r.grad.AddScaled(p.a, a.grad)
	r.grad.AddScaled(p.b, b.grad)
	if a.second {
		r.hess = deriv.ZeroSym(n)
		r.hess.AddScaled(p.a, a.hess)
		r.hess.AddScaled(p.b, b.hess)
		r.hess.AddRankOne(p.aa, a.grad)
		r.hess.AddRankOne(p.bb, b.grad)
		r.hess.AddRankTwo(p.ab, a.grad, b.grad)
	}
	return r
}

// align brings two operands to a common dimension. A dimension-0 operand is
// a constant and is widened; any other mismatch is a contract violation.
func align(a, b core) (core, core) {
	na, nb := a.grad.Len(), b.grad.Len()
	switch {
	case na == nb:
	case na == 0:
		a = constant(a.val, nb, a.second)
	case nb == 0:
		b = constant(b.val, na, b.second)
	default:
		check.Equal("operand dimension", nb, na)
	}
	return a, b
}
