// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for the parameter update rules used
// by the bnn network.
//
// # Basic Usage
//
//	sgd := optim.NewSGD[float64](optim.Config{LR: 0.01, Momentum: 0.9})
//	sgd.Update(weight, velocity, grad) // velocity = 0.9*velocity + grad; weight -= 0.01*velocity
package optim

import (
	"github.com/born-ml/bnn/internal/matrix"
	"github.com/born-ml/bnn/internal/optim"
)

// Optimizer updates a parameter in place from its gradient.
type Optimizer[T matrix.Float] = optim.Optimizer[T]

// SGD is stochastic gradient descent with momentum.
type SGD[T matrix.Float] = optim.SGD[T]

// Config holds configuration for SGD.
type Config = optim.Config

// Defaults applied to zero Config fields.
const (
	DefaultLR       = optim.DefaultLR
	DefaultMomentum = optim.DefaultMomentum
)

// NewSGD creates a new SGD optimizer.
func NewSGD[T matrix.Float](config Config) *SGD[T] {
	return optim.NewSGD[T](config)
}
