package nn

import (
	"math"

	"github.com/born-ml/bnn/internal/matrix"
)

// Func is a unary matrix transform. Implementations must return a matrix of
// the same shape as their input and must not modify the input.
type Func[T matrix.Float] func(*matrix.Dense[T]) *matrix.Dense[T]

// Activation pairs a nonlinearity with its derivative with respect to the
// pre-activation input.
//
// Example:
//
//	act := nn.Sigmoid[float64]()
//	y := act.F(z)  // σ(z)
//	dy := act.D(z) // σ(z)·(1 − σ(z))
type Activation[T matrix.Float] struct {
	F Func[T] // Transform
	D Func[T] // Derivative of F
}

// valid reports whether both functions are set.
func (a Activation[T]) valid() bool {
	return a.F != nil && a.D != nil
}

// Elementwise lifts a scalar function into a Func.
func Elementwise[T matrix.Float](f func(T) T) Func[T] {
	return func(m *matrix.Dense[T]) *matrix.Dense[T] {
		return m.Map(f)
	}
}

// Identity is the activation f(x) = x, with derivative 1.
func Identity[T matrix.Float]() Activation[T] {
	return Activation[T]{
		F: func(m *matrix.Dense[T]) *matrix.Dense[T] { return m.Clone() },
		D: Elementwise(func(T) T { return 1 }),
	}
}

func sigmoid[T matrix.Float](x T) T {
	return T(1 / (1 + math.Exp(-float64(x))))
}

// Sigmoid is the activation σ(x) = 1 / (1 + exp(-x)).
//
// Sigmoid squashes values to the range (0, 1), which is what the
// cross-entropy loss expects of the output layer.
func Sigmoid[T matrix.Float]() Activation[T] {
	return Activation[T]{
		F: Elementwise(sigmoid[T]),
		D: Elementwise(func(x T) T {
			s := sigmoid(x)
			return s * (1 - s)
		}),
	}
}

// Tanh is the hyperbolic tangent activation, with derivative 1 − tanh²(x).
func Tanh[T matrix.Float]() Activation[T] {
	return Activation[T]{
		F: Elementwise(func(x T) T { return T(math.Tanh(float64(x))) }),
		D: Elementwise(func(x T) T {
			th := T(math.Tanh(float64(x)))
			return 1 - th*th
		}),
	}
}

// ReLU is the activation max(0, x). Its derivative is taken as 0 at x = 0.
func ReLU[T matrix.Float]() Activation[T] {
	return Activation[T]{
		F: Elementwise(func(x T) T { return max(x, 0) }),
		D: Elementwise(func(x T) T {
			if x > 0 {
				return 1
			}
			return 0
		}),
	}
}
