package matrix

import "fmt"

// Elementary operations shared by the elementwise kernels.
func add[T Float](x, y T) T { return x + y }
func sub[T Float](x, y T) T { return x - y }
func mul[T Float](x, y T) T { return x * y }
func div[T Float](x, y T) T { return x / y }

// zipWith applies f pairwise to a and b into dst. All three must share a shape.
func zipWith[T Float](op string, dst, a, b *Dense[T], f func(x, y T) T) *Dense[T] {
	if a.rows != b.rows || a.cols != b.cols {
		panic(newShapeError(op, a, b))
	}
	for i, v := range a.data {
		dst.data[i] = f(v, b.data[i])
	}
	return dst
}

// mapScalar applies f(element, s) to every element of a into dst.
func mapScalar[T Float](dst, a *Dense[T], s T, f func(x, y T) T) *Dense[T] {
	for i, v := range a.data {
		dst.data[i] = f(v, s)
	}
	return dst
}

// like allocates a zero matrix with m's shape, preserving the empty state.
func (m *Dense[T]) like() *Dense[T] {
	return &Dense[T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
}

// Add returns m + other elementwise. Panics with *ShapeError on mismatch.
func (m *Dense[T]) Add(other *Dense[T]) *Dense[T] {
	return zipWith("Add", m.like(), m, other, add[T])
}

// Sub returns m - other elementwise. Panics with *ShapeError on mismatch.
func (m *Dense[T]) Sub(other *Dense[T]) *Dense[T] {
	return zipWith("Sub", m.like(), m, other, sub[T])
}

// Hadamard returns the elementwise product of m and other.
func (m *Dense[T]) Hadamard(other *Dense[T]) *Dense[T] {
	return zipWith("Hadamard", m.like(), m, other, mul[T])
}

// HadamardDiv returns the elementwise quotient m / other.
func (m *Dense[T]) HadamardDiv(other *Dense[T]) *Dense[T] {
	return zipWith("HadamardDiv", m.like(), m, other, div[T])
}

// AddScalar returns m with s added to every element.
func (m *Dense[T]) AddScalar(s T) *Dense[T] {
	return mapScalar(m.like(), m, s, add[T])
}

// SubScalar returns m with s subtracted from every element.
func (m *Dense[T]) SubScalar(s T) *Dense[T] {
	return mapScalar(m.like(), m, s, sub[T])
}

// ScalarSub returns s - m elementwise.
func ScalarSub[T Float](s T, m *Dense[T]) *Dense[T] {
	return mapScalar(m.like(), m, s, func(x, y T) T { return y - x })
}

// Scale returns m with every element multiplied by s.
func (m *Dense[T]) Scale(s T) *Dense[T] {
	return mapScalar(m.like(), m, s, mul[T])
}

// DivScalar returns m with every element divided by s.
func (m *Dense[T]) DivScalar(s T) *Dense[T] {
	return mapScalar(m.like(), m, s, div[T])
}

// Neg returns -m.
func (m *Dense[T]) Neg() *Dense[T] {
	return m.Map(func(x T) T { return -x })
}

// Map returns a new matrix with f applied to every element.
func (m *Dense[T]) Map(f func(T) T) *Dense[T] {
	r := m.like()
	for i, v := range m.data {
		r.data[i] = f(v)
	}
	return r
}

// Mul returns the matrix product m·other.
//
// Requirements:
//   - m.Cols() == other.Rows(), otherwise panics with *ShapeError
//
// Result shape: (m.Rows(), other.Cols()).
func (m *Dense[T]) Mul(other *Dense[T]) *Dense[T] {
	if m.cols != other.rows {
		panic(newShapeError("Mul", m, other))
	}
	r := &Dense[T]{rows: m.rows, cols: other.cols, data: make([]T, m.rows*other.cols)}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < other.cols; k++ {
			var acc T
			for j := 0; j < m.cols; j++ {
				acc += m.data[i*m.cols+j] * other.data[j*other.cols+k]
			}
			r.data[i*other.cols+k] = acc
		}
	}
	return r
}

// Transposed returns a new matrix with rows and columns swapped.
func (m *Dense[T]) Transposed() *Dense[T] {
	r := &Dense[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return r
}

// In-place variants. Each mutates and returns the receiver so updates can be
// chained: v.ScaleInPlace(0.9).AddInPlace(grad).

// AddInPlace performs m += other.
func (m *Dense[T]) AddInPlace(other *Dense[T]) *Dense[T] {
	return zipWith("AddInPlace", m, m, other, add[T])
}

// SubInPlace performs m -= other.
func (m *Dense[T]) SubInPlace(other *Dense[T]) *Dense[T] {
	return zipWith("SubInPlace", m, m, other, sub[T])
}

// HadamardInPlace performs m ⊙= other.
func (m *Dense[T]) HadamardInPlace(other *Dense[T]) *Dense[T] {
	return zipWith("HadamardInPlace", m, m, other, mul[T])
}

// ScaleInPlace performs m *= s.
func (m *Dense[T]) ScaleInPlace(s T) *Dense[T] {
	return mapScalar(m, m, s, mul[T])
}

// TransposeInPlace replaces m with its transpose.
func (m *Dense[T]) TransposeInPlace() *Dense[T] {
	t := m.Transposed()
	m.rows, m.cols, m.data = t.rows, t.cols, t.data
	return m
}

// Max returns the largest element. Panics with ErrEmpty on an empty matrix.
func (m *Dense[T]) Max() T {
	if len(m.data) == 0 {
		panic(fmt.Errorf("Max: %w", ErrEmpty))
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Min returns the smallest element. Panics with ErrEmpty on an empty matrix.
func (m *Dense[T]) Min() T {
	if len(m.data) == 0 {
		panic(fmt.Errorf("Min: %w", ErrEmpty))
	}
	best := m.data[0]
	for _, v := range m.data[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
