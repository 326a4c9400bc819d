package bintree

import "fmt"

// ContainsRecursive reports whether x is found on the BST search path
// from node. On a tree violating BST ordering it may miss present keys.
func ContainsRecursive(node *Node, x int) bool {
	if node == nil {
		return false
	}
	if node.Data == x {
		return true
	}
	if node.Data > x {
		return ContainsRecursive(node.Left, x)
	}

	return ContainsRecursive(node.Right, x)
}

// ContainsIterative is the loop form of ContainsRecursive.
func ContainsIterative(node *Node, x int) bool {
	for node != nil {
		if node.Data == x {
			return true
		}
		if node.Data > x {
			node = node.Left
		} else {
			node = node.Right
		}
	}

	return false
}

// LCARecursive returns the lowest common ancestor of keys x and y in the
// BST rooted at node: it descends left while both keys are smaller than
// the current key, right while both are larger, and returns the node where
// they split. It returns nil only when node is nil.
//
// Membership is not checked; if x or y is absent the result is a
// plausible but meaningless node. Check with Contains first or use Tree.LCA.
func LCARecursive(node *Node, x, y int) *Node {
	if node == nil {
		return nil
	}
	if node.Data > x && node.Data > y {
		return LCARecursive(node.Left, x, y)
	}
	if node.Data < x && node.Data < y {
		return LCARecursive(node.Right, x, y)
	}

	return node
}

// LCAIterative is the loop form of LCARecursive.
func LCAIterative(node *Node, x, y int) *Node {
	for node != nil {
		switch {
		case node.Data > x && node.Data > y:
			node = node.Left
		case node.Data < x && node.Data < y:
			node = node.Right
		default:
			return node
		}
	}

	return nil
}

// Contains reports whether x is in t, assuming BST ordering.
func (t *Tree) Contains(x int) bool {
	return ContainsIterative(t.Root, x)
}

// LCA returns the lowest common ancestor of x and y after checking that
// both are present. It returns ErrEmptyTree for an empty tree and an error
// wrapping ErrKeyNotFound naming the first missing key.
func (t *Tree) LCA(x, y int) (*Node, error) {
	if t.Root == nil {
		return nil, ErrEmptyTree
	}
	for _, k := range [...]int{x, y} {
		if !ContainsIterative(t.Root, k) {
			return nil, fmt.Errorf("%w: %d", ErrKeyNotFound, k)
		}
	}

	return LCAIterative(t.Root, x, y), nil
}
