package nn

import (
	"math"

	"github.com/born-ml/bnn/internal/matrix"
)

// lossEpsilon bounds predictions away from 0 and 1 before taking logs.
const lossEpsilon = 1e-7

func clampProb(y float64) float64 {
	return min(max(y, lossEpsilon), 1-lossEpsilon)
}

// crossEntropy computes Σ (t−1)·ln(1−y) − t·ln(y) over all elements.
// y and t must share a shape.
func crossEntropy[T matrix.Float](y, t *matrix.Dense[T]) T {
	var sum float64
	for i, yv := range y.Data() {
		p := clampProb(float64(yv))
		tv := float64(t.Data()[i])
		sum += (tv-1)*math.Log(1-p) - tv*math.Log(p)
	}
	return T(sum)
}

// crossEntropyGrad is the derivative of crossEntropy with respect to y:
// (y − t) / (y·(1 − y)), with y clamped as in crossEntropy.
func crossEntropyGrad[T matrix.Float](y, t *matrix.Dense[T]) *matrix.Dense[T] {
	g := y.Clone()
	data := g.Data()
	for i, yv := range y.Data() {
		p := clampProb(float64(yv))
		data[i] = T((p - float64(t.Data()[i])) / (p * (1 - p)))
	}
	return g
}
