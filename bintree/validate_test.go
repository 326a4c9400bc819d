package bintree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvtree/bintree"
)

func TestValidateParents(t *testing.T) {
	assert.NoError(t, bintree.ValidateParents([]int{-1}))
	assert.NoError(t, bintree.ValidateParents([]int{-1, 0, 0, 1, 1, 3, 5}))
	assert.NoError(t, bintree.ValidateParents([]int{1, 3, 1, -1, 3}))

	err := bintree.ValidateParents([]int{-1, 0, -1})
	assert.ErrorIs(t, err, bintree.ErrInvalidStructure)
	assert.Contains(t, err.Error(), "multiple roots at 0 and 2")

	err = bintree.ValidateParents([]int{-1, 3, 1, 2})
	assert.ErrorIs(t, err, bintree.ErrInvalidStructure)
	assert.Contains(t, err.Error(), "cycle")
}

func TestIsBST(t *testing.T) {
	assert.True(t, bintree.IsBST(nil))
	assert.True(t, bintree.IsBST(sampleTree().Root))
	assert.False(t, bintree.IsBST(fiveTree().Root))

	// 12 sits in the right subtree of 20 but is smaller than 20
	tr := sampleTree()
	tr.Root.Right.Left = bintree.NewNode(Key12)
	assert.False(t, bintree.IsBST(tr.Root))
	assert.ErrorIs(t, tr.Validate(), bintree.ErrNotBST)

	// duplicate key under strict ordering
	dup := bintree.New(bintree.NewNode(5))
	dup.Root.Left = bintree.NewNode(5)
	assert.False(t, bintree.IsBST(dup.Root))

	// extreme keys are valid bounds
	ext := bintree.New(bintree.NewNode(0))
	ext.Root.Left = bintree.NewNode(math.MinInt)
	ext.Root.Right = bintree.NewNode(math.MaxInt)
	assert.True(t, bintree.IsBST(ext.Root))
	assert.NoError(t, ext.Validate())
}

// TestParentArrayTreesAreNotBSTs shows that keys-by-index construction
// rarely yields BST ordering, which is why Validate exists.
func TestParentArrayTreesAreNotBSTs(t *testing.T) {
	tr, err := bintree.FromParents([]int{-1, 0, 0, 1, 1, 3, 5})
	assert.NoError(t, err)
	assert.ErrorIs(t, tr.Validate(), bintree.ErrNotBST)

	tr, err = bintree.FromParents([]int{1, 3, 1, -1, 3})
	assert.NoError(t, err)
	assert.NoError(t, tr.Validate())
}
