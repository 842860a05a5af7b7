package nn

import (
	"math/rand/v2"

	"github.com/born-ml/bnn/internal/matrix"
)

// Defaults for Config.
const (
	DefaultLR         = 0.01
	DefaultMomentum   = 0.9
	DefaultInitStdDev = 0.3
)

// Seeds of the source used when Config.Source is nil, so that networks
// built without an explicit source are reproducible.
const (
	defaultSeed1 = 0x5eed
	defaultSeed2 = 0xb0a2
)

// initWeights draws a fanIn x fanOut weight matrix from N(0, stddev²).
func initWeights[T matrix.Float](fanIn, fanOut int, src rand.Source, stddev T) *matrix.Dense[T] {
	return matrix.Normal(fanIn, fanOut, src, 0, stddev)
}

// initBias returns the zero bias for a layer of the given width.
func initBias[T matrix.Float](width int) *matrix.Dense[T] {
	return matrix.Zeros[T](width, 1)
}
