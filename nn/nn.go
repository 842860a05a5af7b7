// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for the bnn feed-forward network.
//
// Example:
//
//	net, err := nn.New(nn.Config[float64]{
//	    Sizes: []int{5, 8, 5},
//	    Inner: nn.Sigmoid[float64](),
//	    Outer: nn.Sigmoid[float64](),
//	})
//	if err != nil {
//	    return err
//	}
//	for epoch := range 100 {
//	    meanErr, err := net.Learn(inputs, targets)
//	    ...
//	}
package nn

import (
	"github.com/born-ml/bnn/internal/matrix"
	"github.com/born-ml/bnn/internal/nn"
)

// Network is a fully-connected feed-forward network trained with momentum SGD.
type Network[T matrix.Float] = nn.Network[T]

// Config holds configuration for a Network.
type Config[T matrix.Float] = nn.Config[T]

// Func is a unary matrix transform.
type Func[T matrix.Float] = nn.Func[T]

// Activation pairs a transform with its derivative.
type Activation[T matrix.Float] = nn.Activation[T]

// Defaults applied to zero Config fields.
const (
	DefaultLR         = nn.DefaultLR
	DefaultMomentum   = nn.DefaultMomentum
	DefaultInitStdDev = nn.DefaultInitStdDev
)

// Errors.
var (
	ErrShapeMismatch   = nn.ErrShapeMismatch
	ErrLayerCount      = nn.ErrLayerCount
	ErrLayerSize       = nn.ErrLayerSize
	ErrStaleState      = nn.ErrStaleState
	ErrCaseCount       = nn.ErrCaseCount
	ErrActivationShape = nn.ErrActivationShape
)

// New allocates and initializes a network.
func New[T matrix.Float](config Config[T]) (*Network[T], error) {
	return nn.New(config)
}

// Elementwise lifts a scalar function into a Func.
func Elementwise[T matrix.Float](f func(T) T) Func[T] {
	return nn.Elementwise(f)
}

// Identity is the activation f(x) = x.
func Identity[T matrix.Float]() Activation[T] { return nn.Identity[T]() }

// Sigmoid is the logistic activation.
func Sigmoid[T matrix.Float]() Activation[T] { return nn.Sigmoid[T]() }

// Tanh is the hyperbolic tangent activation.
func Tanh[T matrix.Float]() Activation[T] { return nn.Tanh[T]() }

// ReLU is the rectified linear activation.
func ReLU[T matrix.Float]() Activation[T] { return nn.ReLU[T]() }
