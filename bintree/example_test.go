package bintree_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtree/bintree"
)

// ExampleTree_LCA finds lowest common ancestors in a small BST.
//
//	      20
//	     /  \
//	    8    22
//	   / \
//	  4   12
//	     /  \
//	    10   14
func ExampleTree_LCA() {
	t := bintree.FromKeys(20, 8, 22, 4, 12, 10, 14)
	for _, q := range [][2]int{{10, 14}, {14, 8}, {10, 22}} {
		n, err := t.LCA(q[0], q[1])
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("Lowest Common Ancestor of %d & %d is %d\n", q[0], q[1], n.Data)
	}
	_, err := t.LCA(10, 99)
	fmt.Println(errors.Is(err, bintree.ErrKeyNotFound))
	// Output:
	// Lowest Common Ancestor of 10 & 14 is 12
	// Lowest Common Ancestor of 14 & 8 is 8
	// Lowest Common Ancestor of 10 & 22 is 20
	// true
}

// ExampleFromParents rebuilds a tree from its parent array; -1 marks the root.
func ExampleFromParents() {
	t, err := bintree.FromParents([]int{-1, 0, 0, 1, 1, 3, 5})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t.InOrder())

	_, err = bintree.FromParents([]int{-1, 2, 1})
	fmt.Println(errors.Is(err, bintree.ErrInvalidStructure))
	// Output:
	// [6 5 3 1 4 0 2]
	// true
}

// ExampleFromLevelOrder places values positionally: children of i at 2i+1, 2i+2.
func ExampleFromLevelOrder() {
	t := bintree.FromLevelOrder([]int{1, 2, 3, 4, 5})
	fmt.Println(t.PreOrder())
	fmt.Println(t.LevelOrder())
	// Output:
	// [1 2 4 5 3]
	// [1 2 3 4 5]
}

// ExampleTraverse limits a breadth-first walk to two levels and reports depths.
func ExampleTraverse() {
	t := bintree.FromKeys(20, 8, 22, 4, 12, 10, 14)
	_, err := bintree.Traverse(t.Root, bintree.LevelOrder,
		bintree.WithMaxDepth(2),
		bintree.WithOnVisit(func(data, depth int) error {
			fmt.Printf("%d@%d ", data, depth)
			return nil
		}),
	)
	fmt.Println(err)
	// Output:
	// 20@0 8@1 22@1 <nil>
}
