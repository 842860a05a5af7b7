package matrix

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Zeros creates a rows x cols matrix filled with zeros.
// Panics if either dimension is not positive.
//
// Example:
//
//	bias := matrix.Zeros[float64](4, 1)
func Zeros[T Float](rows, cols int) *Dense[T] {
	m, err := New[T](rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Ones creates a rows x cols matrix filled with ones.
func Ones[T Float](rows, cols int) *Dense[T] {
	return Full[T](rows, cols, 1)
}

// Full creates a rows x cols matrix with every element set to value.
//
// Example:
//
//	m := matrix.Full[float32](3, 3, 0.5)
func Full[T Float](rows, cols int, value T) *Dense[T] {
	m := Zeros[T](rows, cols)
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// Eye creates an n x n identity matrix.
func Eye[T Float](n int) *Dense[T] {
	m := Zeros[T](n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Normal creates a rows x cols matrix with elements drawn independently
// from N(mean, stddev²), consuming randomness from src.
//
// The caller owns src; passing the same seeded source yields the same
// matrix. A nil src falls back to the global math/rand/v2 generator.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	w := matrix.Normal[float64](4, 3, src, 0, 0.3)
func Normal[T Float](rows, cols int, src rand.Source, mean, stddev T) *Dense[T] {
	m := Zeros[T](rows, cols)
	dist := distuv.Normal{
		Mu:    float64(mean),
		Sigma: float64(stddev),
		Src:   src,
	}
	for i := range m.data {
		m.data[i] = T(dist.Rand())
	}
	return m
}
