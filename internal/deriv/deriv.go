// Package deriv provides the derivative containers carried by differentiable
// scalars: Vec for gradients and Sym for symmetric Hessians.
//
// Both containers are backed by gonum storage and support zero size, which
// gonum's own mat types reject. Containers handed out by the scalar package are
// never mutated after construction; the in-place Add* methods exist for building
// fresh results.
package deriv

import (
	"github.com/born-ml/hessad/internal/check"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vec is a dense gradient vector.
type Vec struct {
	data []float64
}

// ZeroVec returns a zero vector of length n.
func ZeroVec(n int) Vec {
	check.GEQ("gradient length", n, 0)
	return Vec{data: make([]float64, n)}
}

// Unit returns the standard basis vector e_i of length n.
func Unit(n, i int) Vec {
	check.Index("basis index", i, n)
	v := ZeroVec(n)
	v.data[i] = 1
	return v
}

// NewVec returns a vector holding a copy of data.
func NewVec(data []float64) Vec {
	return Vec{data: append(make([]float64, 0, len(data)), data...)}
}

// VecFrom copies a gonum vector.
func VecFrom(v mat.Vector) Vec {
	out := ZeroVec(v.Len())
	for i := range out.data {
		out.data[i] = v.AtVec(i)
	}
	return out
}

// Clone returns an independent copy.
func (v Vec) Clone() Vec { return NewVec(v.data) }

// Len returns the number of entries.
func (v Vec) Len() int { return len(v.data) }

// At returns entry i.
func (v Vec) At(i int) float64 {
	check.Index("gradient index", i, len(v.data))
	return v.data[i]
}

// Slice returns a copy of the entries.
func (v Vec) Slice() []float64 {
	return append(make([]float64, 0, len(v.data)), v.data...)
}

// VecDense returns a copy as a gonum vector, or nil for an empty vector.
func (v Vec) VecDense() *mat.VecDense {
	if len(v.data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(v.data), v.Slice())
}

// IsZero reports whether every entry is zero.
func (v Vec) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}
	return true
}

// AddScaled sets v = v + alpha*x.
func (v *Vec) AddScaled(alpha float64, x Vec) {
	check.Equal("gradient length", len(x.data), len(v.data))
	if alpha == 0 || len(v.data) == 0 {
		return
	}
	floats.AddScaled(v.data, alpha, x.data)
}

// Sym is a dense symmetric matrix. Only the upper triangle of the row-major
// backing store is read or written, following gonum's SymDense layout; the
// lower triangle keeps whatever the constructor was given.
type Sym struct {
	n    int
	data []float64
}

// ZeroSym returns the n×n zero matrix.
func ZeroSym(n int) Sym {
	check.GEQ("hessian size", n, 0)
	return Sym{n: n, data: make([]float64, n*n)}
}

// NewSym returns an n×n symmetric matrix from row-major data of length n*n.
// The upper triangle of data is used.
func NewSym(n int, data []float64) Sym {
	check.GEQ("hessian size", n, 0)
	check.Equal("hessian data length", len(data), n*n)
	return Sym{n: n, data: append(make([]float64, 0, len(data)), data...)}
}

// SymFrom copies a gonum symmetric matrix.
func SymFrom(s mat.Symmetric) Sym {
	n := s.SymmetricDim()
	out := ZeroSym(n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[i*n+j] = s.At(i, j)
		}
	}
	return out
}

// Clone returns an independent copy.
func (s Sym) Clone() Sym { return NewSym(s.n, s.data) }

// Size returns the number of rows (and columns).
func (s Sym) Size() int { return s.n }

// At returns entry (i, j).
func (s Sym) At(i, j int) float64 {
	check.Index("hessian row", i, s.n)
	check.Index("hessian column", j, s.n)
	if i > j {
		i, j = j, i
	}
	return s.data[i*s.n+j]
}

// SymDense returns a copy as a gonum symmetric matrix, or nil when empty.
func (s Sym) SymDense() *mat.SymDense {
	if s.n == 0 {
		return nil
	}
	return mat.NewSymDense(s.n, append(make([]float64, 0, len(s.data)), s.data...))
}

// Rows returns the full matrix as a slice of rows.
func (s Sym) Rows() [][]float64 {
	rows := make([][]float64, s.n)
	for i := range rows {
		rows[i] = make([]float64, s.n)
		for j := range rows[i] {
			rows[i][j] = s.At(i, j)
		}
	}
	return rows
}

// IsZero reports whether every entry is zero.
func (s Sym) IsZero() bool {
	for i := 0; i < s.n; i++ {
		for j := i; j < s.n; j++ {
			if s.data[i*s.n+j] != 0 {
				return false
			}
		}
	}
	return true
}

// AddScaled sets s = s + alpha*x. Only the upper triangle is updated.
func (s *Sym) AddScaled(alpha float64, x Sym) {
	check.Equal("hessian size", x.n, s.n)
	if alpha == 0 || s.n == 0 {
		return
	}
	for i := 0; i < s.n; i++ {
		lo, hi := i*s.n+i, (i+1)*s.n
		floats.AddScaled(s.data[lo:hi], alpha, x.data[lo:hi])
	}
}

// AddRankOne sets s = s + alpha*x*xᵀ.
func (s *Sym) AddRankOne(alpha float64, x Vec) {
	check.Equal("rank update length", x.Len(), s.n)
	if alpha == 0 || s.n == 0 {
		return
	}
	m := mat.NewSymDense(s.n, s.data)
	m.SymRankOne(m, alpha, mat.NewVecDense(s.n, x.data))
}

// AddRankTwo sets s = s + alpha*(x*yᵀ + y*xᵀ).
func (s *Sym) AddRankTwo(alpha float64, x, y Vec) {
	check.Equal("rank update length", x.Len(), s.n)
	check.Equal("rank update length", y.Len(), s.n)
	if alpha == 0 || s.n == 0 {
		return
	}
	m := mat.NewSymDense(s.n, s.data)
	m.RankTwo(m, alpha, mat.NewVecDense(s.n, x.data), mat.NewVecDense(s.n, y.data))
}
