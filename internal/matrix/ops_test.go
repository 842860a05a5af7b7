package matrix

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-12

// toGonum converts m to a gonum matrix used as an independent reference.
func toGonum(m *Dense[float64]) *mat.Dense {
	return mat.NewDense(m.Rows(), m.Cols(), m.Clone().Data())
}

// requireShapePanic runs f and asserts it panics with a *ShapeError.
func requireShapePanic(t *testing.T, op string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "%s: expected panic", op)
		err, ok := r.(error)
		require.True(t, ok, "%s: panic value %v is not an error", op, r)
		assert.ErrorIs(t, err, ErrShapeMismatch)

		var shapeErr *ShapeError
		require.True(t, errors.As(err, &shapeErr))
		assert.Equal(t, op, shapeErr.Op)
	}()
	f()
}

func TestMul_Concrete(t *testing.T) {
	a := mustFromSlice(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	b := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	c := a.Mul(b)

	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 3, c.Cols())
	assert.Equal(t, []float64{9, 12, 15, 19, 26, 33, 29, 40, 51}, c.Data())
}

func TestMul_MatchesGonum(t *testing.T) {
	src := rand.NewPCG(3, 4)
	a := Normal[float64](4, 7, src, 0, 1)
	b := Normal[float64](7, 5, src, 0, 1)

	var want mat.Dense
	want.Mul(toGonum(a), toGonum(b))

	got := a.Mul(b)
	assert.True(t, floats.EqualApprox(want.RawMatrix().Data, got.Data(), tol))
}

func TestMul_ShapeMismatch(t *testing.T) {
	a := Zeros[float64](2, 3)
	requireShapePanic(t, "Mul", func() { a.Mul(a) })
}

func TestElementwise(t *testing.T) {
	a := mustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})
	b := mustFromSlice(t, 2, 2, []float64{2, 4, 6, 8})

	tests := []struct {
		name string
		got  *Dense[float64]
		want []float64
	}{
		{"Add", a.Add(b), []float64{3, 6, 9, 12}},
		{"Sub", a.Sub(b), []float64{-1, -2, -3, -4}},
		{"Hadamard", a.Hadamard(b), []float64{2, 8, 18, 32}},
		{"HadamardDiv", b.HadamardDiv(a), []float64{2, 2, 2, 2}},
		{"AddScalar", a.AddScalar(1), []float64{2, 3, 4, 5}},
		{"SubScalar", a.SubScalar(1), []float64{0, 1, 2, 3}},
		{"ScalarSub", ScalarSub(10, a), []float64{9, 8, 7, 6}},
		{"Scale", a.Scale(3), []float64{3, 6, 9, 12}},
		{"DivScalar", b.DivScalar(2), []float64{1, 2, 3, 4}},
		{"Neg", a.Neg(), []float64{-1, -2, -3, -4}},
		{"Map", a.Map(func(x float64) float64 { return x * x }), []float64{1, 4, 9, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Data())
			assert.Equal(t, 2, tt.got.Rows())
			assert.Equal(t, 2, tt.got.Cols())
		})
	}

	// Operands are never modified by the non-mutating forms.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
	assert.Equal(t, []float64{2, 4, 6, 8}, b.Data())
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	a := Zeros[float64](2, 3)
	b := Zeros[float64](3, 2)

	requireShapePanic(t, "Add", func() { a.Add(b) })
	requireShapePanic(t, "Sub", func() { a.Sub(b) })
	requireShapePanic(t, "Hadamard", func() { a.Hadamard(b) })
	requireShapePanic(t, "HadamardDiv", func() { a.HadamardDiv(b) })
	requireShapePanic(t, "AddInPlace", func() { a.AddInPlace(b) })
	requireShapePanic(t, "SubInPlace", func() { a.SubInPlace(b) })
	requireShapePanic(t, "HadamardInPlace", func() { a.HadamardInPlace(b) })
}

func TestInPlace(t *testing.T) {
	v := mustFromSlice(t, 2, 1, []float64{1, 2})
	g := mustFromSlice(t, 2, 1, []float64{10, 20})

	r := v.ScaleInPlace(0.5).AddInPlace(g)

	assert.Same(t, v, r)
	assert.Equal(t, []float64{10.5, 21}, v.Data())

	v.SubInPlace(g).HadamardInPlace(g)
	assert.Equal(t, []float64{5, 20}, v.Data())
}

func TestTranspose(t *testing.T) {
	a := mustFromSlice(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	at := a.Transposed()
	assert.Equal(t, 3, at.Rows())
	assert.Equal(t, 2, at.Cols())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, at.Data())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.At(i, j), at.At(j, i))
		}
	}

	assert.True(t, Equal(a, at.Transposed()))

	b := a.Clone()
	b.TransposeInPlace()
	assert.True(t, Equal(at, b))
}

func TestTranspose_MatchesGonum(t *testing.T) {
	a := Normal[float64](5, 3, rand.NewPCG(9, 9), 0, 1)

	want := mat.DenseCopyOf(toGonum(a).T())
	assert.True(t, floats.EqualApprox(want.RawMatrix().Data, a.Transposed().Data(), tol))
}

func TestExtrema(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		min, max float64
	}{
		{"ascending", []float64{1, 2, 3, 4}, 1, 4},
		{"descending", []float64{4, 3, 2, 1}, 1, 4},
		{"min in middle", []float64{3, -7, 5, 0}, -7, 5},
		{"constant", []float64{2, 2, 2, 2}, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustFromSlice(t, 2, 2, tt.data)
			assert.Equal(t, tt.min, m.Min())
			assert.Equal(t, tt.max, m.Max())
		})
	}

	var empty Dense[float64]
	assert.Panics(t, func() { empty.Max() })
	assert.Panics(t, func() { empty.Min() })
}

func TestAlgebraicProperties(t *testing.T) {
	src := rand.NewPCG(21, 42)
	for i := 0; i < 20; i++ {
		rows, cols, inner := 1+i%4, 1+(i*3)%5, 1+(i*7)%6
		a := Normal[float64](rows, cols, src, 0, 1)
		b := Normal[float64](rows, cols, src, 0, 1)
		c := Normal[float64](rows, cols, src, 0, 1)

		assert.True(t, EqualApprox(a.Add(b).Add(c), a.Add(b.Add(c)), tol), "associativity")
		assert.True(t, EqualApprox(a.Add(b), b.Add(a), tol), "commutativity")
		assert.True(t, Equal(a, a.Transposed().Transposed()), "double transpose")

		d := Normal[float64](cols, inner, src, 0, 1)
		lhs := a.Mul(d).Transposed()
		rhs := d.Transposed().Mul(a.Transposed())
		assert.True(t, EqualApprox(lhs, rhs, tol), "(AD)ᵗ = DᵗAᵗ")
	}
}

func BenchmarkMul(b *testing.B) {
	src := rand.NewPCG(1, 1)
	x := Normal[float64](64, 64, src, 0, 1)
	y := Normal[float64](64, 64, src, 0, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = x.Mul(y)
	}
}
