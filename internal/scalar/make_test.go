package scalar

import (
	"sync"
	"testing"

	"github.com/born-ml/hessad/internal/check"
	"github.com/born-ml/hessad/internal/deriv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireBasis asserts that g is e_idx of length k.
func requireBasis(t *testing.T, g deriv.Vec, idx, k int) {
	t.Helper()
	require.Equal(t, k, g.Len())
	for i := 0; i < k; i++ {
		want := 0.0
		if i == idx {
			want = 1
		}
		assert.Equal(t, want, g.At(i), "gradient[%d]", i)
	}
}

func TestConstant(t *testing.T) {
	for _, v := range []float64{0, 1.5, -3, 1e300} {
		s := Constant[D3](v)
		assert.Equal(t, v, s.Value())
		assert.Equal(t, 3, s.Dim())
		assert.Equal(t, []float64{0, 0, 0}, s.Gradient().Slice())
		assert.Equal(t, 3, s.Hessian().Size())
		assert.True(t, s.Hessian().IsZero())

		f := FirstOrderConstant[D3](v)
		assert.Equal(t, v, f.Value())
		assert.True(t, f.Gradient().IsZero())
		assert.Equal(t, 3, f.Gradient().Len())
	}
}

func TestActive(t *testing.T) {
	for idx := 0; idx < 4; idx++ {
		s := Active[D4](2.5, idx)
		assert.Equal(t, 2.5, s.Value())
		requireBasis(t, s.Gradient(), idx, 4)
		assert.True(t, s.Hessian().IsZero())

		f := FirstOrderActive[D4](2.5, idx)
		requireBasis(t, f.Gradient(), idx, 4)
	}
}

func TestActiveStaticNoHessianScenario(t *testing.T) {
	a := FirstOrderActive[D2](5.0, 0)
	assert.Equal(t, 5.0, a.Value())
	assert.Equal(t, []float64{1, 0}, a.Gradient().Slice())

	b := FirstOrderActive[D2](3.0, 1)
	assert.Equal(t, 3.0, b.Value())
	assert.Equal(t, []float64{0, 1}, b.Gradient().Slice())
}

func TestActiveOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
		msg  string
	}{
		{"static negative", func() { Active[D2](1, -1) }, "hessad: active index: -1 >= 0 violated"},
		{"static too large", func() { Active[D2](1, 2) }, "hessad: active index: 2 < 2 violated"},
		{"first order too large", func() { FirstOrderActive[D1](1, 1) }, "hessad: active index: 1 < 1 violated"},
		{"make static", func() { MakeActive[Scalar[D3]](1, 3, 3) }, "hessad: active index: 3 < 3 violated"},
		{"make dynamic", func() { MakeActive[Dynamic](1, 4, 4) }, "hessad: active index: 4 < 4 violated"},
		{"make dynamic negative", func() { MakeActive[DynamicFirstOrder](1, -1, 4) }, "hessad: active index: -1 >= 0 violated"},
		{"make dynamic empty", func() { MakeActive[Dynamic](1, 0, 0) }, "hessad: active index: 0 < 0 violated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithError(t, tt.msg, tt.fn)
		})
	}
}

func TestPanicValueIsContractError(t *testing.T) {
	defer func() {
		_, ok := recover().(*check.ContractError)
		assert.True(t, ok)
	}()
	Active[D1](0, 7)
}

func TestKnownDerivativesRoundTrip(t *testing.T) {
	g := deriv.NewVec([]float64{1.5, -2})
	h := deriv.NewSym(2, []float64{
		4, 0.5,
		0.5, -1,
	})

	s := KnownDerivatives[D2](7, g, h)
	assert.Equal(t, 7.0, s.Value())
	assert.Equal(t, g.Slice(), s.Gradient().Slice())
	assert.Equal(t, h.Rows(), s.Hessian().Rows())

	d := KnownDynamic(7, g, h)
	assert.Equal(t, 7.0, d.Value())
	assert.Equal(t, 2, d.Dim())
	assert.Equal(t, g.Slice(), d.Gradient().Slice())
	assert.Equal(t, h.Rows(), d.Hessian().Rows())

	fo := KnownGradient[D2](7, g)
	assert.Equal(t, g.Slice(), fo.Gradient().Slice())

	dfo := KnownDynamicGradient(7, g)
	assert.Equal(t, g.Slice(), dfo.Gradient().Slice())
}

func TestKnownDerivativesDimensionMismatch(t *testing.T) {
	g := deriv.NewVec([]float64{1, 2})
	h := deriv.ZeroSym(3)

	assert.PanicsWithError(t, "hessad: gradient length: 2 == 3 violated", func() {
		KnownDerivatives[D3](0, g, h)
	})
	assert.PanicsWithError(t, "hessad: hessian size: 3 == 2 violated", func() {
		KnownDerivatives[D2](0, g, h)
	})
	assert.PanicsWithError(t, "hessad: hessian size: 3 == 2 violated", func() {
		KnownDynamic(0, g, h)
	})
	assert.PanicsWithError(t, "hessad: gradient length: 2 == 1 violated", func() {
		KnownGradient[D1](0, g)
	})
}

func TestKnownDerivativesCopiesInputs(t *testing.T) {
	g := deriv.NewVec([]float64{1})
	s := KnownDerivatives[D1](0, g, deriv.ZeroSym(1))
	g.AddScaled(1, deriv.NewVec([]float64{10}))
	assert.Equal(t, 1.0, s.Gradient().At(0))

	out := s.Gradient()
	out.AddScaled(1, out)
	assert.Equal(t, 1.0, s.Gradient().At(0))
}

func TestKnownUnivariate(t *testing.T) {
	s := KnownUnivariate[Scalar[D1]](10, 2.5, 1)
	assert.Equal(t, 10.0, s.Value())
	assert.Equal(t, []float64{2.5}, s.Gradient().Slice())
	assert.Equal(t, [][]float64{{1}}, s.Hessian().Rows())

	d := KnownUnivariate[Dynamic](10, 2.5, 1)
	assert.Equal(t, 10.0, d.Value())
	assert.Equal(t, []float64{2.5}, d.Gradient().Slice())
	assert.Equal(t, [][]float64{{1}}, d.Hessian().Rows())

	f := KnownUnivariate[FirstOrder[D1]](10, 2.5, 1)
	assert.Equal(t, []float64{2.5}, f.Gradient().Slice())

	df := KnownUnivariate[DynamicFirstOrder](10, 2.5, 1)
	assert.Equal(t, []float64{2.5}, df.Gradient().Slice())
}

func TestMakePassive(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		for _, v := range []float64{-7, 0, 3e8} {
			d := MakePassive[Dynamic](v, n)
			assert.Equal(t, v, d.Value())
			assert.Equal(t, n, d.Gradient().Len())
			assert.True(t, d.Gradient().IsZero())
			assert.Equal(t, n, d.Hessian().Size())
			assert.True(t, d.Hessian().IsZero())

			df := MakePassive[DynamicFirstOrder](v, n)
			assert.Equal(t, n, df.Dim())
		}
	}

	// Static types ignore the runtime size.
	s := MakePassive[Scalar[D2]](4, 99)
	assert.Equal(t, 2, s.Gradient().Len())
	assert.True(t, s.Gradient().IsZero())

	assert.PanicsWithError(t, "hessad: passive size: -1 >= 0 violated", func() {
		MakePassive[Dynamic](0, -1)
	})
}

func TestMakeActive(t *testing.T) {
	d := MakeActive[Dynamic](1.25, 2, 5)
	assert.Equal(t, 1.25, d.Value())
	requireBasis(t, d.Gradient(), 2, 5)
	assert.Equal(t, 5, d.Hessian().Size())
	assert.True(t, d.Hessian().IsZero())

	s := MakeActive[Scalar[D3]](1.25, 1, 3)
	requireBasis(t, s.Gradient(), 1, 3)

	f := MakeActive[FirstOrder[D3]](1.25, 0, 3)
	requireBasis(t, f.Gradient(), 0, 3)
}

func TestMakeActiveVectorDynamic(t *testing.T) {
	vars := MakeActiveVector[Dynamic]([]float64{2, 4, 6})
	require.Len(t, vars, 3)
	for i, v := range vars {
		assert.Equal(t, float64(2*(i+1)), v.Value())
		requireBasis(t, v.Gradient(), i, 3)
		assert.Equal(t, 3, v.Hessian().Size())
		assert.True(t, v.Hessian().IsZero())
	}
	assert.Equal(t, 4.0, vars[1].Value())
	assert.Equal(t, []float64{0, 1, 0}, vars[1].Gradient().Slice())
	assert.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, vars[1].Hessian().Rows())

	for _, n := range []int{0, 1, 7} {
		vals := make([]float64, n)
		out := MakeActiveVector[DynamicFirstOrder](vals)
		require.Len(t, out, n)
		for i, v := range out {
			requireBasis(t, v.Gradient(), i, n)
		}
	}
}

func TestMakeActiveVectorStatic(t *testing.T) {
	vars := MakeActiveVector[Scalar[D4]]([]float64{1, 2, 3, 4})
	require.Len(t, vars, 4)
	for i, v := range vars {
		assert.Equal(t, float64(i+1), v.Value())
		requireBasis(t, v.Gradient(), i, 4)
	}

	assert.PanicsWithError(t, "hessad: active vector length: 3 == 4 violated", func() {
		MakeActiveVector[Scalar[D4]]([]float64{1, 2, 3})
	})
	assert.PanicsWithError(t, "hessad: active vector length: 0 == 1 violated", func() {
		MakeActiveVector[FirstOrder[D1]](nil)
	})
}

func TestMakePassiveVector(t *testing.T) {
	xs := MakePassiveVector[Dynamic]([]float64{1, 2}, 3)
	require.Len(t, xs, 2)
	for _, x := range xs {
		assert.Equal(t, 3, x.Dim())
		assert.True(t, x.Gradient().IsZero())
	}
	assert.Equal(t, []float64{1, 2}, Values(xs))
}

func TestDimension(t *testing.T) {
	k, ok := Dimension[Scalar[D5]]()
	assert.True(t, ok)
	assert.Equal(t, 5, k)

	k, ok = Dimension[FirstOrder[D8]]()
	assert.True(t, ok)
	assert.Equal(t, 8, k)

	_, ok = Dimension[Dynamic]()
	assert.False(t, ok)
	_, ok = Dimension[DynamicFirstOrder]()
	assert.False(t, ok)
}

func TestZeroValues(t *testing.T) {
	var s Scalar[D3]
	assert.Equal(t, 0.0, s.Value())
	assert.Equal(t, 3, s.Gradient().Len())
	assert.True(t, s.Gradient().IsZero())
	assert.Equal(t, 3, s.Hessian().Size())

	var f FirstOrder[D2]
	assert.Equal(t, 2, f.Gradient().Len())

	var d Dynamic
	assert.Equal(t, 0, d.Dim())
	assert.Equal(t, 0, d.Hessian().Size())
}

// A user-defined dimension works like the built-in markers.
type d12 struct{}

func (d12) Len() int { return 12 }

func TestCustomDim(t *testing.T) {
	s := Active[d12](1, 11)
	requireBasis(t, s.Gradient(), 11, 12)
	assert.Equal(t, 12, s.Hessian().Size())
}

func TestConcurrentConstruction(t *testing.T) {
	const workers = 8
	var wg sync.WaitGroup
	results := make([][]Dynamic, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			vals := make([]float64, w+1)
			for i := range vals {
				vals[i] = float64(i)
			}
			results[w] = MakeActiveVector[Dynamic](vals)
		}(w)
	}
	wg.Wait()

	for w, vars := range results {
		require.Len(t, vars, w+1)
		for i, v := range vars {
			requireBasis(t, v.Gradient(), i, w+1)
		}
	}
}
