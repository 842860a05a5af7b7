// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for the dense matrix type used by
// the bnn feed-forward network.
//
// Example:
//
//	a, _ := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
//	b, _ := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	fmt.Print(a.Mul(b))
package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/bnn/internal/matrix"
)

// Float is a constraint for matrix element types: float32 or float64.
type Float = matrix.Float

// Dense is a row-major matrix with value semantics.
type Dense[T Float] = matrix.Dense[T]

// ShapeError describes operands with incompatible dimensions.
type ShapeError = matrix.ShapeError

// Errors.
var (
	ErrShapeMismatch = matrix.ErrShapeMismatch
	ErrZeroSize      = matrix.ErrZeroSize
	ErrDataLength    = matrix.ErrDataLength
	ErrEmpty         = matrix.ErrEmpty
)

// New creates a zero-filled rows x cols matrix.
func New[T Float](rows, cols int) (*Dense[T], error) {
	return matrix.New[T](rows, cols)
}

// FromSlice creates a rows x cols matrix from row-major data.
func FromSlice[T Float](rows, cols int, data []T) (*Dense[T], error) {
	return matrix.FromSlice(rows, cols, data)
}

// Zeros creates a zero-filled matrix. Panics on a non-positive dimension.
func Zeros[T Float](rows, cols int) *Dense[T] {
	return matrix.Zeros[T](rows, cols)
}

// Ones creates a matrix filled with ones.
func Ones[T Float](rows, cols int) *Dense[T] {
	return matrix.Ones[T](rows, cols)
}

// Full creates a matrix filled with value.
func Full[T Float](rows, cols int, value T) *Dense[T] {
	return matrix.Full(rows, cols, value)
}

// Eye creates an n x n identity matrix.
func Eye[T Float](n int) *Dense[T] {
	return matrix.Eye[T](n)
}

// Normal creates a matrix drawn from N(mean, stddev²) using src.
func Normal[T Float](rows, cols int, src rand.Source, mean, stddev T) *Dense[T] {
	return matrix.Normal(rows, cols, src, mean, stddev)
}

// ScalarSub returns s - m elementwise.
func ScalarSub[T Float](s T, m *Dense[T]) *Dense[T] {
	return matrix.ScalarSub(s, m)
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T Float](a, b *Dense[T]) bool {
	return matrix.Equal(a, b)
}

// EqualApprox reports whether a and b agree elementwise within tol.
func EqualApprox[T Float](a, b *Dense[T], tol T) bool {
	return matrix.EqualApprox(a, b, tol)
}

// CheckSameShape returns a *ShapeError unless a and b share a shape.
func CheckSameShape[T Float](a, b *Dense[T]) error {
	return matrix.CheckSameShape(a, b)
}

// CheckMulShape returns a *ShapeError unless a·b is defined.
func CheckMulShape[T Float](a, b *Dense[T]) error {
	return matrix.CheckMulShape(a, b)
}
