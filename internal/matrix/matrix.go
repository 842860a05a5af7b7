package matrix

import (
	"fmt"
	"math"
)

// Dense is a row-major matrix of T with value semantics.
//
// Element (r, c) is stored at offset r*Cols()+c of a buffer holding exactly
// Rows()*Cols() elements. The zero value is the empty 0x0 matrix. No two
// matrices share a buffer: Clone deep-copies and Move transfers ownership,
// leaving the source empty.
//
// Example:
//
//	a, _ := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	c := a.Mul(b) // 3x3
type Dense[T Float] struct {
	rows, cols int
	data       []T
}

// New creates a zero-filled rows x cols matrix.
// Both dimensions must be positive.
func New[T Float](rows, cols int) (*Dense[T], error) {
	if err := checkSize(rows, cols); err != nil {
		return nil, err
	}
	return &Dense[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}, nil
}

// FromSlice creates a rows x cols matrix from row-major data.
// The slice is copied into the matrix's memory.
func FromSlice[T Float](rows, cols int, data []T) (*Dense[T], error) {
	m, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%dx%d requires %d elements, got %d: %w",
			rows, cols, rows*cols, len(data), ErrDataLength)
	}
	copy(m.data, data)
	return m, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.cols }

// Dims returns the row and column counts.
func (m *Dense[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// IsEmpty reports whether m is in the empty 0x0 state.
func (m *Dense[T]) IsEmpty() bool {
	return m.rows == 0 && m.cols == 0
}

// At returns element (r, c). Indices are not bounds-checked against the
// shape; callers are expected to respect it.
func (m *Dense[T]) At(r, c int) T {
	return m.data[r*m.cols+c]
}

// Set stores v at element (r, c).
func (m *Dense[T]) Set(r, c int, v T) {
	m.data[r*m.cols+c] = v
}

// Data returns the row-major backing slice. It is owned by m; callers that
// keep it must not modify it.
func (m *Dense[T]) Data() []T {
	return m.data
}

// Clone returns a deep copy of m with an independent buffer.
func (m *Dense[T]) Clone() *Dense[T] {
	c := &Dense[T]{rows: m.rows, cols: m.cols}
	if m.data != nil {
		c.data = make([]T, len(m.data))
		copy(c.data, m.data)
	}
	return c
}

// CopyFrom overwrites m with a deep copy of src, reallocating only when
// the element count changes.
func (m *Dense[T]) CopyFrom(src *Dense[T]) {
	if m == src {
		return
	}
	if len(m.data) != len(src.data) {
		m.data = make([]T, len(src.data))
	}
	copy(m.data, src.data)
	m.rows, m.cols = src.rows, src.cols
}

// Move transfers m's buffer to a new matrix and resets m to the empty state.
func (m *Dense[T]) Move() *Dense[T] {
	moved := &Dense[T]{rows: m.rows, cols: m.cols, data: m.data}
	m.rows, m.cols, m.data = 0, 0, nil
	return moved
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T Float](a, b *Dense[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i, v := range a.data {
		if v != b.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether a and b have the same shape and every pair of
// elements differs by at most tol. NaN never equals anything.
func EqualApprox[T Float](a, b *Dense[T], tol T) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i, v := range a.data {
		// Written as a negated <= so that NaN on either side compares unequal.
		if !(math.Abs(float64(v-b.data[i])) <= float64(tol)) {
			return false
		}
	}
	return true
}
