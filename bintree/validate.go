package bintree

import "fmt"

// path states used while chasing parent links
const (
	unseen = iota
	onPath
	rooted
)

// invalidf wraps ErrInvalidStructure with a formatted reason.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidStructure}, args...)...)
}

// ValidateParents checks that parentOf describes exactly one rooted tree:
//   - exactly one entry equals -1 (the root);
//   - every other entry is an index in [0, len(parentOf)) other than its own;
//   - following parent links from any index reaches the root (no cycles).
//
// Failures wrap ErrInvalidStructure and name the offending index.
// Arity is not checked; see Tree.CreateNode for how extra children attach.
func ValidateParents(parentOf []int) error {
	n := len(parentOf)
	if n == 0 {
		return invalidf("empty parent array has no root")
	}

	root := -1
	for i, p := range parentOf {
		switch {
		case p == rootMarker:
			if root >= 0 {
				return invalidf("multiple roots at %d and %d", root, i)
			}
			root = i
		case p < 0 || p >= n:
			return invalidf("parent %d of node %d out of range [0,%d)", p, i, n)
		case p == i:
			return invalidf("node %d is its own parent", i)
		}
	}
	if root < 0 {
		return invalidf("no root marker (-1)")
	}

	state := make([]uint8, n)
	state[root] = rooted
	path := make([]int, 0, n)
	for i := range parentOf {
		path = path[:0]
		cur := i
		for state[cur] == unseen {
			state[cur] = onPath
			path = append(path, cur)
			cur = parentOf[cur]
		}
		if state[cur] == onPath {
			return invalidf("cycle through node %d", cur)
		}
		for _, v := range path {
			state[v] = rooted
		}
	}

	return nil
}

// bounds is an exclusive key interval a subtree must fall into;
// a nil end is unbounded.
type bounds struct {
	node   *Node
	lo, hi *int
}

// IsBST reports whether the subtree rooted at node satisfies strict BST
// ordering: every key in a left subtree is smaller, and every key in a
// right subtree larger, than the node. An empty tree is a BST.
func IsBST(node *Node) bool {
	if node == nil {
		return true
	}
	stack := []bounds{{node: node}}
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		k := &b.node.Data
		if (b.lo != nil && *k <= *b.lo) || (b.hi != nil && *k >= *b.hi) {
			return false
		}
		if b.node.Left != nil {
			stack = append(stack, bounds{node: b.node.Left, lo: b.lo, hi: k})
		}
		if b.node.Right != nil {
			stack = append(stack, bounds{node: b.node.Right, lo: k, hi: b.hi})
		}
	}

	return true
}

// Validate returns ErrNotBST if t violates BST ordering.
func (t *Tree) Validate() error {
	if !IsBST(t.Root) {
		return ErrNotBST
	}

	return nil
}
