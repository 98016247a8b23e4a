package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 8)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 4, 4, true},
		{"top-left corner", 0, 0, true},
		{"last cell", 9, 7, true},
		{"right edge (exclusive)", 10, 4, false},
		{"bottom edge (exclusive)", 4, 8, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y), "Contains(%d, %d)", tc.x, tc.y)
		})
	}
}

func TestRectEdgesAndArea(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	assert.Equal(t, 25, r.Right())
	assert.Equal(t, 25, r.Bottom())
	assert.Equal(t, 300, r.Area())
	assert.Equal(t, 0, NewRect(0, 0, 0, 4).Area())
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.min, tc.max), "Clamp(%d, %d, %d)", tc.val, tc.min, tc.max)
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 0, Abs(0))
}
