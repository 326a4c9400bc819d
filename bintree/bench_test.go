package bintree_test

import (
	"testing"

	"github.com/katalvlaran/lvtree/bintree"
)

// BenchmarkTraverse compares the iterative and recursive in-order walks
// and both level-order strategies on a random BST of 4096 keys.
func BenchmarkTraverse(b *testing.B) {
	tr, _ := randomBST(1, 4096)
	cases := []struct {
		name  string
		order bintree.Order
		opts  []bintree.Option
	}{
		{"InOrderIterative", bintree.InOrder, nil},
		{"InOrderRecursive", bintree.InOrder, []bintree.Option{bintree.WithRecursive()}},
		{"LevelOrderQueue", bintree.LevelOrder, nil},
		{"LevelOrderByLevel", bintree.LevelOrderByLevel, nil},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = bintree.Traverse(tr.Root, c.order, c.opts...)
			}
		})
	}
}

// BenchmarkLCA measures iterative LCA over all key pairs of a small BST.
func BenchmarkLCA(b *testing.B) {
	tr, keys := randomBST(2, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y := keys[i%len(keys)], keys[(i*7)%len(keys)]
		_ = bintree.LCAIterative(tr.Root, x, y)
	}
}

// BenchmarkFromParents builds a complete binary tree of 2^12-1 nodes
// from its parent array.
func BenchmarkFromParents(b *testing.B) {
	const n = 1<<12 - 1
	parents := make([]int, n)
	parents[0] = -1
	for i := 1; i < n; i++ {
		parents[i] = (i - 1) / 2
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bintree.FromParents(parents)
	}
}
