package optim

import (
	"github.com/born-ml/bnn/internal/matrix"
)

// SGD implements Stochastic Gradient Descent with momentum.
//
// Update rule:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Momentum keeps an exponentially decayed sum of past gradients, which
// dampens oscillation between successive per-case updates.
type SGD[T matrix.Float] struct {
	lr       T
	momentum T
}

// NewSGD creates a new SGD optimizer. Zero config fields take the package
// defaults.
func NewSGD[T matrix.Float](config Config) *SGD[T] {
	config = config.withDefaults()
	return &SGD[T]{
		lr:       T(config.LR),
		momentum: T(config.Momentum),
	}
}

// Update performs velocity = momentum*velocity + grad, then
// param -= lr*velocity. param, velocity and grad must share a shape;
// a mismatch panics with *matrix.ShapeError.
func (s *SGD[T]) Update(param, velocity, grad *matrix.Dense[T]) {
	velocity.ScaleInPlace(s.momentum).AddInPlace(grad)
	param.SubInPlace(velocity.Scale(s.lr))
}

// GetLR returns the current learning rate.
func (s *SGD[T]) GetLR() T {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD[T]) SetLR(lr T) {
	s.lr = lr
}

// Momentum returns the momentum factor.
func (s *SGD[T]) Momentum() T {
	return s.momentum
}
