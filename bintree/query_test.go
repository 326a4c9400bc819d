package bintree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/bintree"
)

func TestLCA_SampleTree(t *testing.T) {
	tr := sampleTree()
	cases := []struct {
		x, y, want int
	}{
		{Key10, Key14, Key12},
		{Key14, Key8, Key8},
		{Key10, Key22, Key20},
		{Key4, Key4, Key4},
		{Key4, Key14, Key8},
	}
	for _, c := range cases {
		rec := bintree.LCARecursive(tr.Root, c.x, c.y)
		it := bintree.LCAIterative(tr.Root, c.x, c.y)
		require.NotNil(t, rec)
		require.NotNil(t, it)
		assert.Equal(t, c.want, rec.Data, "recursive LCA(%d,%d)", c.x, c.y)
		assert.Same(t, rec, it, "iterative LCA(%d,%d)", c.x, c.y)
	}
}

func TestLCA_NilRoot(t *testing.T) {
	assert.Nil(t, bintree.LCARecursive(nil, 1, 2))
	assert.Nil(t, bintree.LCAIterative(nil, 1, 2))
}

// TestLCA_UncheckedAbsentKey documents that the raw LCA functions return
// a node even when a key is missing.
func TestLCA_UncheckedAbsentKey(t *testing.T) {
	tr := sampleTree()
	got := bintree.LCAIterative(tr.Root, Key10, KeyAbsent)
	require.NotNil(t, got)
	assert.Equal(t, Key20, got.Data)
}

func TestContains_SampleTree(t *testing.T) {
	tr := sampleTree()
	for _, k := range []int{Key20, Key8, Key22, Key4, Key12, Key10, Key14} {
		assert.True(t, bintree.ContainsRecursive(tr.Root, k), "recursive %d", k)
		assert.True(t, bintree.ContainsIterative(tr.Root, k), "iterative %d", k)
	}
	assert.False(t, bintree.ContainsRecursive(tr.Root, KeyAbsent))
	assert.False(t, bintree.ContainsIterative(tr.Root, KeyAbsent))
	assert.False(t, bintree.ContainsIterative(nil, Key20))
	assert.True(t, tr.Contains(Key10))
	assert.False(t, tr.Contains(KeyAbsent))
}

// TestContains_NonBSTFalseNegative shows the search can miss keys when the
// ordering precondition does not hold.
func TestContains_NonBSTFalseNegative(t *testing.T) {
	tr := bintree.FromLevelOrder([]int{1, 2, 3, 4, 5})
	assert.False(t, tr.Contains(2), "2 sits left of 1, the search goes right")
	assert.True(t, tr.Contains(3))
}

func TestTreeLCA_Checked(t *testing.T) {
	tr := sampleTree()
	n, err := tr.LCA(Key10, Key14)
	require.NoError(t, err)
	assert.Equal(t, Key12, n.Data)

	_, err = tr.LCA(Key10, KeyAbsent)
	assert.ErrorIs(t, err, bintree.ErrKeyNotFound)
	assert.Contains(t, err.Error(), "99")

	_, err = bintree.New(nil).LCA(1, 2)
	assert.ErrorIs(t, err, bintree.ErrEmptyTree)
}

// TestLCA_RandomAgreesWithBruteForce checks every pair of a random BST
// against the deepest shared ancestor on both search paths.
func TestLCA_RandomAgreesWithBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		tr, keys := randomBST(seed, 40)
		require.NoError(t, tr.Validate())
		for _, x := range keys {
			require.True(t, tr.Contains(x))
			for _, y := range keys {
				want := bruteLCA(tr.Root, x, y)
				rec := bintree.LCARecursive(tr.Root, x, y)
				it := bintree.LCAIterative(tr.Root, x, y)
				require.Same(t, want, rec, "seed %d LCA(%d,%d)", seed, x, y)
				require.Same(t, rec, it, "seed %d LCA(%d,%d)", seed, x, y)
			}
		}
	}
}

func TestContains_RandomMembership(t *testing.T) {
	tr, keys := randomBST(42, 100)
	present := make(map[int]bool, len(keys))
	for _, k := range keys {
		present[k] = true
	}
	for k := -5; k < 405; k++ {
		assert.Equal(t, present[k], bintree.ContainsRecursive(tr.Root, k), "key %d", k)
		assert.Equal(t, present[k], bintree.ContainsIterative(tr.Root, k), "key %d", k)
	}
}
