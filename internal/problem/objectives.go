package problem

import (
	"github.com/born-ml/hessad/internal/objective"
	"github.com/born-ml/hessad/internal/scalar"
)

// Spring is the energy ½·stiffness·(|p2 − p1| − rest)² of a 2D spring with
// endpoints p1 = (v0, v1) and p2 = (v2, v3).
func Spring[S scalar.Number[S]](stiffness, rest float64) objective.Func[S] {
	return func(v []S) S {
		l := scalar.Norm(scalar.VecSub(v[2:4], v[0:2]))
		return scalar.Scale(scalar.Square(scalar.AddConst(l, -rest)), 0.5*stiffness)
	}
}

// Rosenbrock is (a − x)² + b·(y − x²)² with x = v0 and y = v1.
func Rosenbrock[S scalar.Number[S]](a, b float64) objective.Func[S] {
	return func(v []S) S {
		dx := scalar.AddConst(scalar.Neg(v[0]), a)
		dy := scalar.Sub(v[1], scalar.Square(v[0]))
		return scalar.Add(scalar.Square(dx), scalar.Scale(scalar.Square(dy), b))
	}
}

// Quadratic is weight·Σ vᵢ² over any number of variables.
func Quadratic[S scalar.Number[S]](weight float64) objective.Func[S] {
	return func(v []S) S {
		return scalar.Scale(scalar.SquaredNorm(v), weight)
	}
}
