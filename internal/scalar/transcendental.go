package scalar

import "math"

// Outside their real domain these return NaN derivatives, as the math
// package does for values.

// Asin returns arcsin(a).
func Asin[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := 1 - x*x
		r := math.Sqrt(s)
		return math.Asin(x), 1 / r, x / (s * r)
	})
}

// Acos returns arccos(a).
func Acos[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := 1 - x*x
		r := math.Sqrt(s)
		return math.Acos(x), -1 / r, -x / (s * r)
	})
}

// Atan returns arctan(a).
func Atan[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := 1 + x*x
		return math.Atan(x), 1 / s, -2 * x / (s * s)
	})
}

// Sinh returns sinh(a).
func Sinh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s, c := math.Sinh(x), math.Cosh(x)
		return s, c, s
	})
}

// Cosh returns cosh(a).
func Cosh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s, c := math.Sinh(x), math.Cosh(x)
		return c, s, c
	})
}

// Asinh returns arsinh(a).
func Asinh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := 1 + x*x
		r := math.Sqrt(s)
		return math.Asinh(x), 1 / r, -x / (s * r)
	})
}

// Acosh returns arcosh(a).
func Acosh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := x*x - 1
		r := math.Sqrt(s)
		return math.Acosh(x), 1 / r, -x / (s * r)
	})
}

// Atanh returns artanh(a).
func Atanh[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		s := 1 - x*x
		return math.Atanh(x), 1 / s, 2 * x / (s * s)
	})
}

// LogBase returns the logarithm of a in a passive base.
func LogBase[S Number[S]](a S, base float64) S {
	k := 1 / math.Log(base)
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / x
		return math.Log(x) * k, k * r, -k * r * r
	})
}

// Log2 returns log₂(a).
func Log2[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / x
		return math.Log2(x), r / math.Ln2, -r * r / math.Ln2
	})
}

// Log10 returns log₁₀(a).
func Log10[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / x
		return math.Log10(x), r / math.Ln10, -r * r / math.Ln10
	})
}

// Log1p returns ln(1 + a), accurate for small a.
func Log1p[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		r := 1 / (1 + x)
		return math.Log1p(x), r, -r * r
	})
}

// Exp2 returns 2^a.
func Exp2[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		e := math.Exp2(x)
		return e, e * math.Ln2, e * math.Ln2 * math.Ln2
	})
}

// Expm1 returns e^a - 1, accurate for small a.
func Expm1[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		e := math.Exp(x)
		return math.Expm1(x), e, e
	})
}

// Cbrt returns ∛a.
func Cbrt[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		c := math.Cbrt(x)
		return c, 1 / (3 * c * c), -2 / (9 * c * c * x)
	})
}

// Signum returns the sign of a as a constant: 1 for +0 and positive values,
// -1 for -0 and negative values, NaN for NaN.
func Signum[S Number[S]](a S) S {
	return apply(a, func(x float64) (float64, float64, float64) {
		if math.IsNaN(x) {
			return x, 0, 0
		}
		return math.Copysign(1, x), 0, 0
	})
}

// Atan2 returns the angle of the point (b, a), the arctangent of a/b using the
// signs of both to pick the quadrant.
func Atan2[S Number[S]](a, b S) S {
	y, x := a.parts(), b.parts()
	r := x.val*x.val + y.val*y.val
	r2 := r * r
	return a.with(binary(y, x, math.Atan2(y.val, x.val), partials{
		a:  x.val / r,
		b:  -y.val / r,
		aa: -2 * x.val * y.val / r2,
		ab: (y.val*y.val - x.val*x.val) / r2,
		bb: 2 * x.val * y.val / r2,
	}))
}

// Hypot returns √(a² + b²) without undue overflow.
func Hypot[S Number[S]](a, b S) S {
	x, y := a.parts(), b.parts()
	h := math.Hypot(x.val, y.val)
	h3 := h * h * h
	return a.with(binary(x, y, h, partials{
		a:  x.val / h,
		b:  y.val / h,
		aa: y.val * y.val / h3,
		ab: -x.val * y.val / h3,
		bb: x.val * x.val / h3,
	}))
}

// MulAdd returns a*m + b.
func MulAdd[S Number[S]](a, m, b S) S {
	return Add(Mul(a, m), b)
}
