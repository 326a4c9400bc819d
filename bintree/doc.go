// Package bintree implements an in-memory binary tree with two construction
// algorithms, BST membership and lowest-common-ancestor queries, and the four
// classic traversal orders.
//
// What
//
//   - Construction:
//   - InsertLevelOrder / FromLevelOrder: place values positionally, treating
//     the slice as an implicit complete binary tree (children of i at 2i+1, 2i+2).
//   - CreateTree / FromParents: rebuild a tree from a parent array, where
//     parentOf[i] is the parent index of node i and -1 marks the root.
//   - Insert / FromKeys: ordinary BST insertion.
//   - Queries (recursive and iterative variants):
//   - ContainsRecursive, ContainsIterative
//   - LCARecursive, LCAIterative
//   - Traversals: in-order, pre-order, post-order, level-order (queue) and
//     level-order by level (recursive, re-descending once per level).
//   - Validation: ValidateParents for parent arrays, IsBST / Tree.Validate
//     for the ordering invariant.
//
// BST precondition
//
//	Contains and LCA descend a single path, comparing against one node per
//	level. They are only meaningful on trees that satisfy BST ordering
//	(left < node < right). Neither construction path from arrays enforces that
//	ordering: InsertLevelOrder is positional and CreateTree keys each node by its
//	index. Use IsBST to tell a valid BST apart from a mere binary tree.
//	The unchecked LCA functions also assume both keys are present; Tree.LCA
//	performs that membership check and reports ErrKeyNotFound.
//
// Level-order insertion
//
//	InsertLevelOrder assigns the right-position result to Right. Earlier
//	renditions of this algorithm wrote both recursive results to Left, losing
//	every right subtree; that defect is corrected here.
//
// Complexity (n = nodes, h = height, w = maximum width)
//
//   - Contains, LCA, Insert:  Time O(h), Memory O(1) iterative / O(h) recursive
//   - InOrder, PreOrder, PostOrder: Time O(n), Memory O(h)
//   - LevelOrder:             Time O(n), Memory O(w)
//   - LevelOrderByLevel:      Time O(n·h), Memory O(h)
//   - Height:                 Time O(n), recomputed on every call
//   - CreateTree:             Time O(n) after O(n) validation
//
// Usage
//
//	t := bintree.FromKeys(20, 8, 22, 4, 12, 10, 14)
//	anc, err := t.LCA(10, 14) // anc.Data == 12
//
//	t, err = bintree.FromParents([]int{-1, 0, 0, 1, 1, 3, 5})
//	if errors.Is(err, bintree.ErrInvalidStructure) {
//	    // no root, several roots, out-of-range parent or a cycle
//	}
//
//	vals, err := bintree.Traverse(t.Root, bintree.LevelOrder,
//	    bintree.WithMaxDepth(2),
//	    bintree.WithOnVisit(func(data, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrInvalidStructure  malformed parent array
//   - ErrEmptyTree         query on a tree without a root
//   - ErrKeyNotFound       Tree.LCA with a key absent from the tree
//   - ErrNotBST            Tree.Validate on a tree violating BST ordering
//   - ErrUnknownOrder      Traverse with an undefined Order
//   - ErrOptionViolation   invalid Option (e.g. negative MaxDepth)
//   - wrapped OnVisit hook errors
//
// Concurrency
//
//	A Tree is not safe for concurrent mutation; callers serialize access.
package bintree
