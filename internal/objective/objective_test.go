package objective

import (
	"errors"
	"math"
	"testing"

	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/parallel"
	"github.com/born-ml/hessad/internal/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-10

// spring is ½·k·(|p2 − p1| − rest)² over local variables (p1x, p1y, p2x, p2y).
func spring[S scalar.Number[S]](k, rest float64) Func[S] {
	return func(v []S) S {
		l := scalar.Norm(scalar.VecSub(v[2:4], v[0:2]))
		return scalar.Scale(scalar.Square(scalar.AddConst(l, -rest)), 0.5*k)
	}
}

// springReference returns the analytic energy, gradient and dense Hessian of
// a spring network.
func springReference(x []float64, elements [][]int, k, rest float64) (float64, []float64, *mat.SymDense) {
	n := len(x)
	var e float64
	g := make([]float64, n)
	h := mat.NewSymDense(n, nil)

	for _, el := range elements {
		dx := x[el[2]] - x[el[0]]
		dy := x[el[3]] - x[el[1]]
		l := math.Hypot(dx, dy)
		u := [2]float64{dx / l, dy / l}
		e += 0.5 * k * (l - rest) * (l - rest)

		f := k * (l - rest)
		for d := 0; d < 2; d++ {
			g[el[d]] -= f * u[d]
			g[el[2+d]] += f * u[d]
		}

		// K = k·(uuᵀ + (l−rest)/l·(I − uuᵀ)), H = [[K, −K], [−K, K]].
		var kb [2][2]float64
		for a := 0; a < 2; a++ {
			for b := 0; b < 2; b++ {
				id := 0.0
				if a == b {
					id = 1
				}
				kb[a][b] = k * (u[a]*u[b] + (l-rest)/l*(id-u[a]*u[b]))
			}
		}
		for a := 0; a < 4; a++ {
			for b := 0; b < 4; b++ {
				sign := 1.0
				if (a < 2) != (b < 2) {
					sign = -1
				}
				r, c := el[a], el[b]
				if r > c {
					continue
				}
				h.SetSym(r, c, h.At(r, c)+sign*kb[a%2][b%2])
			}
		}
	}
	return e, g, h
}

var (
	triangle = [][]int{{0, 1, 2, 3}, {2, 3, 4, 5}, {0, 1, 4, 5}}
	x0       = []float64{0, 0, 1.6, 0, 0.8, 0.6}
)

func TestSpringNetwork(t *testing.T) {
	k, rest := 1.0, 1.0
	wantE, wantG, wantH := springReference(x0, triangle, k, rest)

	run := func(t *testing.T, res *Result, h *mat.SymDense) {
		t.Helper()
		assert.InDelta(t, wantE, res.Value, eps)
		require.Len(t, res.Gradient, len(x0))
		for i := range wantG {
			assert.InDelta(t, wantG[i], res.Gradient[i], eps, "grad[%d]", i)
		}
		assert.Len(t, res.Triplets, 3*16)
		assert.True(t, mat.EqualApprox(wantH, h, eps), "hessian mismatch:\n%v\n%v",
			mat.Formatted(wantH), mat.Formatted(h))
	}

	t.Run("static", func(t *testing.T) {
		a := New(spring[scalar.Scalar[scalar.D4]](k, rest))
		res, err := a.Compute(x0, triangle)
		require.NoError(t, err)
		h, err := Dense(len(x0), res.Triplets)
		require.NoError(t, err)
		run(t, res, h)
	})

	t.Run("dynamic", func(t *testing.T) {
		a := New(spring[scalar.Dynamic](k, rest), WithWorkers(2))
		res, err := a.Compute(x0, triangle)
		require.NoError(t, err)
		h, err := a.Hessian(x0, triangle)
		require.NoError(t, err)
		run(t, res, h)
	})
}

func TestParallelMatchesSequential(t *testing.T) {
	// A chain of many springs so that the parallel path actually splits work.
	n := 200
	x := make([]float64, 2*n)
	var elements [][]int
	for i := 0; i < n; i++ {
		x[2*i] = float64(i) * 1.1
		x[2*i+1] = math.Sin(float64(i))
		if i > 0 {
			elements = append(elements, []int{2 * (i - 1), 2*(i-1) + 1, 2 * i, 2*i + 1})
		}
	}

	fn := spring[scalar.Scalar[scalar.D4]](3, 1)
	seq := New(fn, WithParallel(parallel.Config{Enabled: false}))
	par := New(fn, WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}))

	rs, err := seq.Compute(x, elements)
	require.NoError(t, err)
	rp, err := par.Compute(x, elements)
	require.NoError(t, err)

	assert.Equal(t, rs.Value, rp.Value)
	assert.Equal(t, rs.Gradient, rp.Gradient)
	assert.Equal(t, rs.Triplets, rp.Triplets)
}

func TestRepeatedIndices(t *testing.T) {
	// v0·v1 on element [0, 0] is x0².
	fn := func(v []scalar.Dynamic) scalar.Dynamic { return scalar.Mul(v[0], v[1]) }
	a := New(fn)

	x := []float64{3}
	res, err := a.Compute(x, [][]int{{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 9.0, res.Value)
	assert.Equal(t, []float64{6}, res.Gradient)

	h, err := a.Hessian(x, [][]int{{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2.0, h.At(0, 0))
}

func TestValueAndGradient(t *testing.T) {
	a := New(spring[scalar.Dynamic](2, 0.5))
	wantE, wantG, _ := springReference(x0, triangle, 2, 0.5)

	v, err := a.Value(x0, triangle)
	require.NoError(t, err)
	assert.InDelta(t, wantE, v, eps)

	g, err := a.Gradient(x0, triangle)
	require.NoError(t, err)
	assert.InDeltaSlice(t, wantG, g, eps)

	trips, err := a.Triplets(x0, triangle)
	require.NoError(t, err)
	assert.Len(t, trips, 48)
}

func TestConstantLocalResult(t *testing.T) {
	// A local term that ignores its variables and returns a dimension-0 value.
	fn := func([]scalar.Dynamic) scalar.Dynamic { return scalar.AddConst(scalar.Dynamic{}, 2) }
	res, err := New(fn).Compute([]float64{1, 2}, [][]int{{0, 1}, {1}})
	require.NoError(t, err)
	assert.Equal(t, 4.0, res.Value)
	assert.Equal(t, []float64{0, 0}, res.Gradient)
	assert.Empty(t, res.Triplets)
}

func TestInputErrors(t *testing.T) {
	static := New(spring[scalar.Scalar[scalar.D4]](1, 1))

	_, err := static.Compute(x0, [][]int{{0, 1, 2}})
	assert.ErrorIs(t, err, ErrElementArity)

	_, err = static.Compute(x0, [][]int{{0, 1, 2, 6}})
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = static.Value(x0, [][]int{{-1, 1, 2, 3}})
	assert.True(t, errors.Is(err, ErrIndexRange))

	_, err = static.Hessian(nil, nil)
	assert.ErrorIs(t, err, ErrNoVariables)

	// Dynamic local result of the wrong dimension.
	bad := New(func(v []scalar.Dynamic) scalar.Dynamic {
		return scalar.MakeActive[scalar.Dynamic](1, 0, len(v)+1)
	})
	_, err = bad.Compute([]float64{1, 2}, [][]int{{0, 1}})
	assert.ErrorIs(t, err, ErrElementArity)
}

func TestContractViolationInLocalFunction(t *testing.T) {
	// Mixing dimensions inside the local function is a contract violation.
	mixed := func(v []scalar.Dynamic) scalar.Dynamic {
		return scalar.Add(v[0], scalar.MakeActive[scalar.Dynamic](1, 0, len(v)+1))
	}

	x := make([]float64, 65)
	elems := make([][]int, 64)
	for i := range elems {
		x[i] = float64(i)
		elems[i] = []int{i, i + 1}
	}

	tests := []struct {
		name string
		opt  Option
	}{
		{"sequential", WithWorkers(1)},
		{"parallel", WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(mixed, tt.opt)
			defer func() {
				r := recover()
				require.NotNil(t, r)
				ce, ok := r.(*check.ContractError)
				require.True(t, ok, "panic value %T", r)
				assert.Equal(t, "operand dimension", ce.What)
			}()
			_, _ = a.Compute(x, elems)
		})
	}
}

func TestDense(t *testing.T) {
	h, err := Dense(2, []Triplet{
		{Row: 0, Col: 0, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 1, Col: 0, Value: 2},
		{Row: 0, Col: 0, Value: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, h.At(0, 0))
	assert.Equal(t, 2.0, h.At(1, 0))
	assert.Equal(t, 0.0, h.At(1, 1))

	_, err = Dense(2, []Triplet{{Row: 2, Col: 0}})
	assert.ErrorIs(t, err, ErrIndexRange)
}

func TestFiniteDifferenceAgreement(t *testing.T) {
	for _, name := range []string{"static", "dynamic"} {
		t.Run(name, func(t *testing.T) {
			var gErr, hErr float64
			var err error
			if name == "static" {
				a := New(spring[scalar.Scalar[scalar.D4]](5, 1))
				gErr, err = a.GradientError(x0, triangle, 1e-6)
				require.NoError(t, err)
				hErr, err = a.HessianError(x0, triangle, 0)
				require.NoError(t, err)
			} else {
				a := New(spring[scalar.Dynamic](5, 1))
				gErr, err = a.GradientError(x0, triangle, 0)
				require.NoError(t, err)
				hErr, err = a.HessianError(x0, triangle, 1e-6)
				require.NoError(t, err)
			}
			assert.Less(t, gErr, 1e-6)
			assert.Less(t, hErr, 1e-5)
		})
	}
}

func TestFiniteDifferenceQuadratic(t *testing.T) {
	// Central differences are exact up to rounding on a quadratic.
	quad := New(func(v []scalar.Dynamic) scalar.Dynamic {
		return scalar.Add(scalar.Mul(v[0], v[1]), scalar.Scale(scalar.Square(v[0]), 3))
	}, WithWorkers(1))
	x := []float64{0.5, -2, 1.25}
	elems := [][]int{{0, 1}, {1, 2}, {2, 0}}

	gErr, err := quad.GradientError(x, elems, 1e-3)
	require.NoError(t, err)
	assert.Less(t, gErr, 1e-9)

	hErr, err := quad.HessianError(x, elems, 1e-3)
	require.NoError(t, err)
	assert.Less(t, hErr, 1e-9)
}

func TestFiniteDifferenceErrors(t *testing.T) {
	a := New(spring[scalar.Scalar[scalar.D4]](1, 1))

	_, err := a.GradientError(x0, [][]int{{0, 1, 2, 9}}, 0)
	assert.ErrorIs(t, err, ErrIndexRange)

	_, err = a.HessianError(x0, [][]int{{0, 1, 2}}, 0)
	assert.ErrorIs(t, err, ErrElementArity)

	_, err = a.HessianError(nil, nil, 0)
	assert.ErrorIs(t, err, ErrNoVariables)

	gErr, err := a.GradientError(nil, nil, 0)
	require.NoError(t, err)
	assert.Zero(t, gErr)
}
