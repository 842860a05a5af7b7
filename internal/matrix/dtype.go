// Package matrix provides a dense, row-major matrix type with the
// arithmetic needed to run and train small fully-connected networks.
package matrix

import "reflect"

// Float is a constraint for supported element types.
type Float interface {
	~float32 | ~float64
}

// bitSize returns the precision of T in bits (32 or 64), used when
// formatting elements. The kind check also covers named float types.
func bitSize[T Float]() int {
	var dummy T
	if reflect.TypeOf(dummy).Kind() == reflect.Float32 {
		return 32
	}
	return 64
}
