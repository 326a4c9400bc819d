// Package lvtree is a small, pure-Go collection of classic algorithms
// centred on binary trees.
//
// Subpackages:
//
//	bintree/  — binary tree construction (level-order array, parent array,
//	            BST insertion), membership and lowest-common-ancestor queries
//	            in recursive and iterative form, in/pre/post/level-order
//	            traversals, height and BST validation
//	numeric/  — Euclid's GCD (recursive, iterative), LCM, Fibonacci by five methods
//	setops/   — order-preserving union of two slices
//
// The lvtree command (cmd/lvtree) replays the demonstrations from the console:
//
//	lvtree demo
//	lvtree lca 10 14 --insert 20,8,22,4,12,10,14
//	lvtree traverse --parents=-1,0,0,1,1,3,5 --order inorder,levelorder
//
// Quick ASCII example:
//
//	      20
//	     /  \
//	    8    22        LCA(10, 14) = 12
//	   / \             LCA(14, 8)  = 8
//	  4   12           LCA(10, 22) = 20
//	     /  \
//	    10   14
package lvtree
