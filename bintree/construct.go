package bintree

// InsertLevelOrder builds the subtree rooted at position index of values,
// treating values as an implicit complete binary tree: the children of
// position i live at 2i+1 and 2i+2. It returns nil once index runs past the
// end of values.
//
// A fresh node is allocated for values[index]; current is discarded, so any
// structure already hanging below it is dropped. Placement is positional only:
// values are neither sorted nor checked for BST ordering or uniqueness.
func InsertLevelOrder(values []int, current *Node, index int) *Node {
	if index < 0 || index >= len(values) {
		return nil
	}
	current = NewNode(values[index])
	current.Left = InsertLevelOrder(values, current.Left, 2*index+1)
	current.Right = InsertLevelOrder(values, current.Right, 2*index+2)

	return current
}

// FromLevelOrder returns a Tree built by InsertLevelOrder from position 0.
func FromLevelOrder(values []int) *Tree {
	return New(InsertLevelOrder(values, nil, 0))
}

// CreateNode creates node index (keyed by its index) and links it under its
// parent, creating the parent first when needed. created memoizes nodes
// already built; a second call for the same index is a no-op.
//
// When parentOf[index] is -1 the node becomes t.Root. Otherwise it is
// attached as the parent's Left child if that slot is free and as Right
// otherwise, so a third child silently replaces the second.
//
// CreateNode does not validate its input: a parent array containing a cycle
// recurses without bound. Use CreateTree, which validates first.
func (t *Tree) CreateNode(parentOf []int, index int, created []*Node) {
	if created[index] != nil {
		return
	}
	created[index] = NewNode(index)
	p := parentOf[index]
	if p == rootMarker {
		t.Root = created[index]
		return
	}
	if created[p] == nil {
		t.CreateNode(parentOf, p, created)
	}

	parent := created[p]
	if parent.Left == nil {
		parent.Left = created[index]
	} else {
		parent.Right = created[index]
	}
}

// CreateTree rebuilds t from the first n entries of the parent array and
// replaces t.Root. The array is validated by ValidateParents beforehand;
// any malformation is reported as an error wrapping ErrInvalidStructure and
// leaves t untouched.
func (t *Tree) CreateTree(parentOf []int, n int) error {
	if n < 0 || n > len(parentOf) {
		return invalidf("n=%d outside [0,%d]", n, len(parentOf))
	}
	parentOf = parentOf[:n]
	if err := ValidateParents(parentOf); err != nil {
		return err
	}

	created := make([]*Node, n)
	for i := 0; i < n; i++ {
		t.CreateNode(parentOf, i, created)
	}

	return nil
}

// FromParents returns a new Tree built from the whole parent array.
func FromParents(parentOf []int) (*Tree, error) {
	t := New(nil)
	if err := t.CreateTree(parentOf, len(parentOf)); err != nil {
		return nil, err
	}

	return t, nil
}

// Insert adds x to t following BST ordering and reports whether a node was
// added. Duplicate keys are ignored.
func (t *Tree) Insert(x int) bool {
	if t.Root == nil {
		t.Root = NewNode(x)
		return true
	}
	cur := t.Root
	for {
		switch {
		case x < cur.Data:
			if cur.Left == nil {
				cur.Left = NewNode(x)
				return true
			}
			cur = cur.Left
		case x > cur.Data:
			if cur.Right == nil {
				cur.Right = NewNode(x)
				return true
			}
			cur = cur.Right
		default:
			return false
		}
	}
}

// FromKeys returns a BST holding keys, inserted in the given order.
func FromKeys(keys ...int) *Tree {
	t := New(nil)
	for _, k := range keys {
		t.Insert(k)
	}

	return t
}
