package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/numeric"
)

func TestGCD(t *testing.T) {
	cases := []struct {
		x, y, want int
	}{
		{1071, 462, 21},
		{462, 1071, 21},
		{21, 6, 3},
		{17, 5, 1},
		{0, 9, 9},
		{9, 0, 9},
		{0, 0, 0},
		{-12, 18, 6},
		{12, -18, 6},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, numeric.GCDRecursive(c.x, c.y), "recursive gcd(%d,%d)", c.x, c.y)
		assert.Equal(t, c.want, numeric.GCDIterative(c.x, c.y), "iterative gcd(%d,%d)", c.x, c.y)
	}
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 42, numeric.LCM(21, 6))
	assert.Equal(t, 42, numeric.LCM(-21, 6))
	assert.Equal(t, 35, numeric.LCM(5, 7))
	assert.Equal(t, 8, numeric.LCM(8, 8))
	assert.Equal(t, 0, numeric.LCM(0, 6))
	assert.Equal(t, 0, numeric.LCM(6, 0))
}
