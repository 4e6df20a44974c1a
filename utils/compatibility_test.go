package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookingForSizes(t *testing.T) {
	tests := []struct {
		token string
		want  []int
	}{
		{"1", []int{1}},
		{"2", []int{2}},
		{"2-3", []int{2, 3}},
		{"3-4", []int{3, 4}},
		{"4-5", []int{4, 5}},
		{"5+", []int{5, 6, 7, 8}},
		{" 2-3 ", []int{2, 3}},
		{"", []int{2, 3}},
		{"huge", []int{2, 3}},
		{"0", []int{2, 3}},
		{"3-2", []int{2, 3}},
		{"x+", []int{2, 3}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LookingForSizes(tt.token), "token %q", tt.token)
	}
}

func TestSizesOverlap(t *testing.T) {
	assert.True(t, SizesOverlap([]int{3, 4}, []int{4, 5}))
	assert.True(t, SizesOverlap([]int{2}, []int{2}))
	assert.False(t, SizesOverlap([]int{5, 6, 7, 8}, []int{2, 3}))
	assert.False(t, SizesOverlap(nil, []int{2}))
}

func TestHaversineKm(t *testing.T) {
	// NYC to Boston is roughly 306 km.
	d := HaversineKm(40.7128, -74.0060, 42.3601, -71.0589)
	assert.InDelta(t, 306, d, 10)

	assert.Zero(t, HaversineKm(51.5, 0.1, 51.5, 0.1))
}
