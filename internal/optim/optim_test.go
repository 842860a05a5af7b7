package optim_test

import (
	"testing"

	"github.com/born-ml/bnn/internal/matrix"
	"github.com/born-ml/bnn/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(t *testing.T, values ...float64) *matrix.Dense[float64] {
	t.Helper()
	m, err := matrix.FromSlice(len(values), 1, values)
	require.NoError(t, err)
	return m
}

func TestNewSGD_Defaults(t *testing.T) {
	sgd := optim.NewSGD[float64](optim.Config{})

	assert.InDelta(t, optim.DefaultLR, sgd.GetLR(), 1e-12)
	assert.InDelta(t, optim.DefaultMomentum, sgd.Momentum(), 1e-12)
}

// TestSGD_WithMomentum tests two consecutive momentum steps.
func TestSGD_WithMomentum(t *testing.T) {
	sgd := optim.NewSGD[float64](optim.Config{LR: 0.1, Momentum: 0.9})

	param := vec(t, 1.0)
	velocity := vec(t, 0.0)

	// Step 1: v = 0.9*0 + 1 = 1, x = 1 - 0.1*1 = 0.9
	sgd.Update(param, velocity, vec(t, 1.0))
	assert.InDelta(t, 1.0, velocity.At(0, 0), 1e-12)
	assert.InDelta(t, 0.9, param.At(0, 0), 1e-12)

	// Step 2: v = 0.9*1 + 1 = 1.9, x = 0.9 - 0.1*1.9 = 0.71
	sgd.Update(param, velocity, vec(t, 1.0))
	assert.InDelta(t, 1.9, velocity.At(0, 0), 1e-12)
	assert.InDelta(t, 0.71, param.At(0, 0), 1e-12)
}

func TestSGD_SetLR(t *testing.T) {
	sgd := optim.NewSGD[float64](optim.Config{LR: 0.5})
	sgd.SetLR(0.25)

	param := vec(t, 2.0, 4.0)
	velocity := vec(t, 0.0, 0.0)
	sgd.Update(param, velocity, vec(t, 4.0, 8.0))

	assert.Equal(t, []float64{1, 2}, param.Data())
}

func TestSGD_ShapeMismatchPanics(t *testing.T) {
	sgd := optim.NewSGD[float64](optim.Config{})

	assert.Panics(t, func() {
		sgd.Update(vec(t, 1, 2), vec(t, 0, 0), vec(t, 1, 2, 3))
	})
}

var _ optim.Optimizer[float64] = (*optim.SGD[float64])(nil)
