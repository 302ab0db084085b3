package scalar

import "github.com/born-ml/hessad/internal/deriv"

// Dim fixes the number of independent variables of a static scalar.
// Implementations are zero-size marker types.
type Dim interface {
	Len() int
}

// Marker dimensions for static scalars.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Len() int { return 1 }
func (D2) Len() int { return 2 }
func (D3) Len() int { return 3 }
func (D4) Len() int { return 4 }
func (D5) Len() int { return 5 }
func (D6) Len() int { return 6 }
func (D7) Len() int { return 7 }
func (D8) Len() int { return 8 }

func dimOf[D Dim]() int {
	var d D
	return d.Len()
}

// Number is satisfied by the four scalar types of this package and nothing
// else. It lets factories and arithmetic be written once for every sizing mode
// and derivative order.
type Number[S any] interface {
	Value() float64
	Gradient() deriv.Vec
	Dim() int

	static() (k int, ok bool)
	parts() core
	with(c core) S
	passive(v float64, k int) S
	active(v float64, idx, k int) S
}

// Dimension reports the compile-time dimension of S. For dynamic types ok is
// false and k is 0.
func Dimension[S Number[S]]() (k int, ok bool) {
	var z S
	return z.static()
}

// core is the mode-independent representation used by the chain rule.
// Hessian storage is only meaningful when second is set.
type core struct {
	val    float64
	grad   deriv.Vec
	hess   deriv.Sym
	second bool
}

func constant(v float64, k int, second bool) core {
	c := core{val: v, grad: deriv.ZeroVec(k), second: second}
	if second {
		c.hess = deriv.ZeroSym(k)
	}
	return c
}
