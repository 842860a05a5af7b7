package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSizes builds the layer widths [bits, hidden..., bits] from a
// comma-separated hidden list. An empty list yields a network with no
// hidden layer.
func parseSizes(bits int, hidden string) ([]int, error) {
	sizes := []int{bits}
	for _, field := range strings.Split(hidden, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("hidden width %q: %w", field, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("hidden width %d must be positive", n)
		}
		sizes = append(sizes, n)
	}
	return append(sizes, bits), nil
}
