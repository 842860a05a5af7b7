package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("matrix: shape mismatch")
	ErrZeroSize      = errors.New("matrix: zero-sized dimension")
	ErrDataLength    = errors.New("matrix: data length does not match shape")
	ErrEmpty         = errors.New("matrix: empty matrix")
)

// ShapeError describes operands whose dimensions are incompatible for an
// operation. It unwraps to ErrShapeMismatch.
type ShapeError struct {
	Op    string // Operation that rejected the operands (e.g. "Add", "Mul")
	Left  [2]int // Rows, cols of the left operand
	Right [2]int // Rows, cols of the right operand
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("matrix: %s: shape mismatch %dx%d vs %dx%d",
		e.Op, e.Left[0], e.Left[1], e.Right[0], e.Right[1])
}

// Unwrap returns ErrShapeMismatch so callers can use errors.Is.
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

func newShapeError[T Float](op string, a, b *Dense[T]) *ShapeError {
	return &ShapeError{
		Op:    op,
		Left:  [2]int{a.rows, a.cols},
		Right: [2]int{b.rows, b.cols},
	}
}

// CheckSameShape returns a *ShapeError if a and b do not have identical
// dimensions. It is the check performed by every elementwise operation.
func CheckSameShape[T Float](a, b *Dense[T]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return newShapeError("CheckSameShape", a, b)
	}
	return nil
}

// CheckMulShape returns a *ShapeError if the product a·b is undefined,
// i.e. a's column count differs from b's row count.
func CheckMulShape[T Float](a, b *Dense[T]) error {
	if a.cols != b.rows {
		return newShapeError("CheckMulShape", a, b)
	}
	return nil
}

// checkSize validates dimensions for a non-empty matrix.
func checkSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrZeroSize)
	}
	return nil
}
