package scalar

import "github.com/born-ml/hessad/internal/check"

// MaxDetSize is the largest matrix Det accepts.
const MaxDetSize = 6

// Det returns the determinant of the square matrix m, given as rows, by
// cofactor expansion. No pivoting takes place, so the result stays twice
// differentiable at singular matrices. The 0×0 determinant is the constant 1.
//
// Panics unless m is square with at most MaxDetSize rows.
func Det[S Number[S]](m [][]S) S {
	n := len(m)
	check.LEQ("determinant size", n, MaxDetSize)
	for _, row := range m {
		check.Equal("determinant row length", len(row), n)
	}

	switch n {
	case 0:
		return MakePassive[S](1, 0)
	case 1:
		return m[0][0]
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}
	return minor(m, 0, cols)
}

// minor expands the determinant of the submatrix made of rows row.. and the
// given columns along its first row.
func minor[S Number[S]](m [][]S, row int, cols []int) S {
	if len(cols) == 2 {
		a, b := m[row][cols[0]], m[row][cols[1]]
		c, d := m[row+1][cols[0]], m[row+1][cols[1]]
		return Sub(Mul(a, d), Mul(b, c))
	}

	rest := make([]int, len(cols)-1)
	var acc S
	for k, col := range cols {
		copy(rest, cols[:k])
		copy(rest[k:], cols[k+1:])
		term := Mul(m[row][col], minor(m, row+1, rest))
		switch {
		case k == 0:
			acc = term
		case k%2 == 0:
			acc = Add(acc, term)
		default:
			acc = Sub(acc, term)
		}
	}
	return acc
}
