// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"testing"

	"github.com/born-ml/bnn/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicAPI(t *testing.T) {
	a, err := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	b, err := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	c := a.Mul(b)
	assert.Equal(t, "9 12 15\n19 26 33\n29 40 51\n", c.String())

	assert.ErrorIs(t, matrix.CheckSameShape(a, b), matrix.ErrShapeMismatch)
	assert.NoError(t, matrix.CheckMulShape(a, b))

	_, err = matrix.New[float32](0, 1)
	assert.ErrorIs(t, err, matrix.ErrZeroSize)
}
