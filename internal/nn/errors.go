package nn

import (
	"errors"

	"github.com/born-ml/bnn/internal/matrix"
)

// Common errors.
var (
	// ErrShapeMismatch is matrix.ErrShapeMismatch, re-exported so callers of
	// this package need not import internal/matrix to test for it.
	ErrShapeMismatch = matrix.ErrShapeMismatch

	ErrLayerCount      = errors.New("nn: network needs at least two layers")
	ErrLayerSize       = errors.New("nn: layer width must be positive")
	ErrStaleState      = errors.New("nn: backward called without a preceding forward")
	ErrCaseCount       = errors.New("nn: input and target counts differ or are zero")
	ErrActivationShape = errors.New("nn: activation changed the shape of its input")
)
