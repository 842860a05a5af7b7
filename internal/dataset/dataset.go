// Package dataset generates small synthetic training sets for the
// feed-forward network: every n-bit input vector paired with a fixed
// bitwise transform of it.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/born-ml/bnn/internal/matrix"
)

// MaxBits bounds the input width so a set stays enumerable.
const MaxBits = 16

// Common errors.
var (
	ErrBits             = errors.New("dataset: bit width out of range")
	ErrUnknownTransform = errors.New("dataset: unknown transform")
)

// Transform maps an input word of the given width to its target word.
// Only the low bits bits of the result are used.
type Transform func(x uint, bits int) uint

// Identity returns x unchanged.
func Identity(x uint, _ int) uint { return x }

// Invert flips every bit.
func Invert(x uint, bits int) uint { return ^x & mask(bits) }

// Reverse mirrors the bit order.
func Reverse(x uint, bits int) uint {
	var r uint
	for i := 0; i < bits; i++ {
		r = r<<1 | (x>>i)&1
	}
	return r
}

// RotateLeft rotates x left by one position within bits bits.
func RotateLeft(x uint, bits int) uint {
	return (x<<1 | x>>(bits-1)) & mask(bits)
}

func mask(bits int) uint {
	return 1<<bits - 1
}

var transforms = map[string]Transform{
	"identity": Identity,
	"invert":   Invert,
	"reverse":  Reverse,
	"rotate":   RotateLeft,
}

// ParseTransform looks a transform up by name.
func ParseTransform(name string) (Transform, error) {
	f, ok := transforms[name]
	if !ok {
		return nil, fmt.Errorf("%q (known: %v): %w", name, TransformNames(), ErrUnknownTransform)
	}
	return f, nil
}

// TransformNames lists the names accepted by ParseTransform.
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set is a list of (input, target) column vectors.
type Set[T matrix.Float] struct {
	Inputs  []*matrix.Dense[T] // [bits, 1] each
	Targets []*matrix.Dense[T] // [bits, 1] each
}

// Len returns the number of cases.
func (s *Set[T]) Len() int {
	return len(s.Inputs)
}

// BitTransform enumerates all 2^bits inputs in ascending order. Bit j of the
// vector for word x is bit bits-1-j of x, so the most significant bit comes
// first.
func BitTransform[T matrix.Float](bits int, f Transform) (*Set[T], error) {
	if bits < 1 || bits > MaxBits {
		return nil, fmt.Errorf("%d not in [1, %d]: %w", bits, MaxBits, ErrBits)
	}
	n := 1 << bits
	set := &Set[T]{
		Inputs:  make([]*matrix.Dense[T], n),
		Targets: make([]*matrix.Dense[T], n),
	}
	for x := 0; x < n; x++ {
		set.Inputs[x] = Encode[T](uint(x), bits)
		set.Targets[x] = Encode[T](f(uint(x), bits)&mask(bits), bits)
	}
	return set, nil
}

// Encode writes the low bits bits of x into a [bits, 1] vector of 0s and 1s.
func Encode[T matrix.Float](x uint, bits int) *matrix.Dense[T] {
	v := matrix.Zeros[T](bits, 1)
	for j := 0; j < bits; j++ {
		if x>>(bits-1-j)&1 == 1 {
			v.Set(j, 0, 1)
		}
	}
	return v
}

// Decode thresholds a column vector at 0.5 and packs it back into a word,
// first element most significant.
func Decode[T matrix.Float](v *matrix.Dense[T]) uint {
	var x uint
	for j := 0; j < v.Rows(); j++ {
		x <<= 1
		if v.At(j, 0) >= 0.5 {
			x |= 1
		}
	}
	return x
}
