package scalar

import "math"

// apply evaluates a univariate primitive fn, which returns f, f' and f'' at x.
func apply[S Number[S]](a S, fn func(x float64) (f, d, d2 float64)) S {
	c := a.parts()
	f, d, d2 := fn(c.val)
	return a.with(unary(c, f, d, d2))
}

// Add returns a + b.
func Add[S Number[S]](a, b S) S {
	x, y := a.parts(), b.parts()
	return a.with(binary(x, y, x.val+y.val, partials{a: 1, b: 1}))
}

// Sub returns a - b.
func Sub[S Number[S]](a, b S) S {
	x, y := a.parts(), b.parts()
	return a.with(binary(x, y, x.val-y.val, partials{a: 1, b: -1}))
}

// Mul returns a * b.
func Mul[S Number[S]](a, b S) S {
	x, y := a.parts(), b.parts()
	return a.with(binary(x, y, x.val*y.val, partials{a: y.val, b: x.val, ab: 1}))
}

// Div returns a / b.
func Div[S Number[S]](a, b S) S {
	x, y := a.parts(), b.parts()
	inv := 1 / y.val
	f := x.val * inv
	return a.with(binary(x, y, f, partials{
		a:  inv,
		b:  -f * inv,
		ab: -inv * inv,
		bb: 2 * f * inv * inv,
	}))
}

// Neg returns -a.
func Neg[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) { return -x, -1, 0 })
}

// AddConst returns a + c for a passive c.
func AddConst[S Number[S]](a S, c float64) S {
	return apply(a, func(x float64) (float64, float64, float64) { return x + c, 1, 0 })
}

// Scale returns c * a for a passive c.
func Scale[S Number[S]](a S, c float64) S {
	return apply(a, func(x float64) (float64, float64, float64) { return c * x, c, 0 })
}

// Inv returns 1 / a.
func Inv[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / x
		return r, -r * r, 2 * r * r * r
	})
}

// Square returns a².
func Square[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) { return x * x, 2 * x, 2 })
}

// Sqrt returns √a.
func Sqrt[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := math.Sqrt(x)
		return s, 0.5 / s, -0.25 / (s * x)
	})
}

// Pow returns a^p for a passive real exponent p.
func Pow[S Number[S]](a S, p float64) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		switch p {
		case 0:
			return 1, 0, 0
		case 1:
			return x, 1, 0
		case 2:
			return x * x, 2 * x, 2
		}
		return math.Pow(x, p), p * math.Pow(x, p-1), p * (p - 1) * math.Pow(x, p-2)
	})
}

// Powi returns a^n for an integer exponent n.
func Powi[S Number[S]](a S, n int) S {
	return Pow(a, float64(n))
}

// Exp returns e^a.
func Exp[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		e := math.Exp(x)
		return e, e, e
	})
}

// Log returns the natural logarithm of a.
func Log[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / x
		return math.Log(x), r, -r * r
	})
}

// Sin returns sin(a).
func Sin[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s, c := math.Sincos(x)
		return s, c, -s
	})
}

// Cos returns cos(a).
func Cos[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s, c := math.Sincos(x)
		return c, -s, -c
	})
}

// Tan returns tan(a).
func Tan[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		t := math.Tan(x)
		d := 1 + t*t
		return t, d, 2 * t * d
	})
}

// Tanh returns tanh(a).
func Tanh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		t := math.Tanh(x)
		d := 1 - t*t
		return t, d, -2 * t * d
	})
}

// Abs returns |a|. At 0 the derivatives of a are kept unchanged.
func Abs[S Number[S]](a S) S {
	if a.Value() < 0 {
		return Neg(a)
	}
	return a
}

// Max returns the operand with the larger value, derivatives included.
// Ties return a.
func Max[S Number[S]](a, b S) S {
	if b.Value() > a.Value() {
		return b
	}
	return a
}

// Min returns the operand with the smaller value, derivatives included.
// Ties return a.
func Min[S Number[S]](a, b S) S {
	if b.Value() < a.Value() {
		return b
	}
	return a
}
