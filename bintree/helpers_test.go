package bintree_test

import (
	"math/rand"

	"github.com/katalvlaran/lvtree/bintree"
)

// Sample keys used across tests (avoid magic numbers in test bodies).
const (
	Key20     = 20
	Key8      = 8
	Key22     = 22
	Key4      = 4
	Key12     = 12
	Key10     = 10
	Key14     = 14
	KeyAbsent = 99
)

// sampleTree builds the classic LCA example by hand:
//
//	      20
//	     /  \
//	    8    22
//	   / \
//	  4   12
//	     /  \
//	    10   14
func sampleTree() *bintree.Tree {
	t := bintree.New(bintree.NewNode(Key20))
	t.Root.Left = bintree.NewNode(Key8)
	t.Root.Right = bintree.NewNode(Key22)
	t.Root.Left.Left = bintree.NewNode(Key4)
	t.Root.Left.Right = bintree.NewNode(Key12)
	t.Root.Left.Right.Left = bintree.NewNode(Key10)
	t.Root.Left.Right.Right = bintree.NewNode(Key14)

	return t
}

// fiveTree builds 1..5 by hand: 1 -> (2 -> (4, 5), 3).
func fiveTree() *bintree.Tree {
	t := bintree.New(bintree.NewNode(1))
	t.Root.Left = bintree.NewNode(2)
	t.Root.Right = bintree.NewNode(3)
	t.Root.Left.Left = bintree.NewNode(4)
	t.Root.Left.Right = bintree.NewNode(5)

	return t
}

// chain builds a right-leaning chain of d nodes keyed 1..d.
func chain(d int) *bintree.Tree {
	t := bintree.New(nil)
	for k := 1; k <= d; k++ {
		t.Insert(k)
	}

	return t
}

// randomBST inserts n distinct pseudo-random keys from a fixed seed and
// returns the tree together with the inserted keys.
func randomBST(seed int64, n int) (*bintree.Tree, []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n * 4)[:n]
	t := bintree.FromKeys(perm...)

	return t, perm
}

// searchPath returns the nodes visited by a BST search for x, root first.
func searchPath(n *bintree.Node, x int) []*bintree.Node {
	var path []*bintree.Node
	for n != nil {
		path = append(path, n)
		switch {
		case x < n.Data:
			n = n.Left
		case x > n.Data:
			n = n.Right
		default:
			return path
		}
	}

	return path
}

// bruteLCA returns the deepest node shared by the search paths of x and y.
func bruteLCA(root *bintree.Node, x, y int) *bintree.Node {
	px, py := searchPath(root, x), searchPath(root, y)
	var last *bintree.Node
	for i := 0; i < len(px) && i < len(py) && px[i] == py[i]; i++ {
		last = px[i]
	}

	return last
}
