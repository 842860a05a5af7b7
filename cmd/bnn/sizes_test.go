package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizes(t *testing.T) {
	tests := []struct {
		hidden string
		want   []int
	}{
		{"8", []int{5, 8, 5}},
		{"8, 4", []int{5, 8, 4, 5}},
		{"", []int{5, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.hidden, func(t *testing.T) {
			got, err := parseSizes(5, tt.hidden)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseSizes(5, "a")
	assert.Error(t, err)
	_, err = parseSizes(5, "3,0")
	assert.Error(t, err)
}
