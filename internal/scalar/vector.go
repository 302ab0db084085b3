package scalar

import "github.com/born-ml/hessad/internal/check"

// Values returns the plain values of xs.
func Values[S Number[S]](xs []S) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.Value()
	}
	return out
}

// Sum returns the sum of xs. An empty slice sums to the zero value of S.
func Sum[S Number[S]](xs []S) S {
	var acc S
	for i, x := range xs {
		if i == 0 {
			acc = x
			continue
		}
		acc = Add(acc, x)
	}
	return acc
}

// Dot returns Σ xs[i]*ys[i].
func Dot[S Number[S]](xs, ys []S) S {
	check.Equal("dot operand length", len(ys), len(xs))
	terms := make([]S, len(xs))
	for i := range xs {
		terms[i] = Mul(xs[i], ys[i])
	}
	return Sum(terms)
}

// VecSub returns the element-wise difference xs - ys.
func VecSub[S Number[S]](xs, ys []S) []S {
	check.Equal("subtraction operand length", len(ys), len(xs))
	out := make([]S, len(xs))
	for i := range xs {
		out[i] = Sub(xs[i], ys[i])
	}
	return out
}

// SquaredNorm returns Σ xs[i]².
func SquaredNorm[S Number[S]](xs []S) S {
	terms := make([]S, len(xs))
	for i, x := range xs {
		terms[i] = Square(x)
	}
	return Sum(terms)
}

// Norm returns the Euclidean norm of xs. Its derivatives are undefined at the
// origin.
func Norm[S Number[S]](xs []S) S {
	return Sqrt(SquaredNorm(xs))
}

// L1Norm returns Σ |xs[i]|.
func L1Norm[S Number[S]](xs []S) S {
	terms := make([]S, len(xs))
	for i, x := range xs {
		terms[i] = Abs(x)
	}
	return Sum(terms)
}

// LkNorm returns (Σ |xs[i]|^k)^(1/k).
//
// Panics unless k >= 1.
func LkNorm[S Number[S]](xs []S, k int) S {
	check.GEQ("norm order", k, 1)
	terms := make([]S, len(xs))
	for i, x := range xs {
		terms[i] = Powi(Abs(x), k)
	}
	return Pow(Sum(terms), 1/float64(k))
}

// InfNorm returns max |xs[i]|.
func InfNorm[S Number[S]](xs []S) S {
	var m S
	for i, x := range xs {
		if i == 0 {
			m = Abs(x)
			continue
		}
		m = Max(m, Abs(x))
	}
	return m
}
