// Package optim implements the parameter update rules used to train
// networks built on internal/matrix.
//
// This package provides:
//   - Optimizer interface: a rule that consumes one gradient per parameter
//   - SGD: stochastic gradient descent with classical momentum
//
// Example usage:
//
//	opt := optim.NewSGD[float64](optim.Config{LR: 0.01, Momentum: 0.9})
//	opt.Update(weight, velocity, grad)
package optim

import "github.com/born-ml/bnn/internal/matrix"

// Optimizer updates a parameter in place from its gradient.
//
// The caller owns the velocity buffer so that optimizer state lives next to
// the parameter it belongs to.
type Optimizer[T matrix.Float] interface {
	// Update applies one step to param given grad. velocity holds the
	// optimizer state for param and must share its shape.
	Update(param, velocity, grad *matrix.Dense[T])

	// GetLR returns the current learning rate.
	GetLR() T
}

// Config holds configuration for SGD.
type Config struct {
	LR       float64 // Learning rate (0 means default: 0.01)
	Momentum float64 // Momentum factor in (0, 1) (0 means default: 0.9)
}

// Defaults.
const (
	DefaultLR       = 0.01
	DefaultMomentum = 0.9
)

// withDefaults fills zero fields.
func (c Config) withDefaults() Config {
	if c.LR == 0 {
		c.LR = DefaultLR
	}
	if c.Momentum == 0 {
		c.Momentum = DefaultMomentum
	}
	return c
}
