package bintree

import "fmt"

// Height returns the number of levels below and including node: 0 for nil,
// otherwise 1 + max(Height(Left), Height(Right)). Nothing is cached.
func Height(node *Node) int {
	if node == nil {
		return 0
	}
	left := Height(node.Left)
	right := Height(node.Right)
	if left > right {
		return left + 1
	}

	return right + 1
}

// frame is an explicit-stack entry for iterative depth-first walks.
type frame struct {
	node     *Node
	depth    int
	expanded bool // children already pushed
}

// walker collects keys in visit order and runs the visit hook.
type walker struct {
	opts TraverseOptions
	out  []int
}

// Traverse returns the keys of the tree rooted at root in the given order.
// Depth-first orders use an explicit stack unless WithRecursive is given;
// both strategies emit the same sequence. An empty tree yields an empty,
// non-nil slice.
//
// Returns ErrOptionViolation for invalid options, ErrUnknownOrder for an
// undefined order, or the OnVisit error wrapped with the offending key;
// on error the keys emitted so far are returned alongside it.
func Traverse(root *Node, order Order, opts ...Option) ([]int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{opts: o, out: make([]int, 0)}
	var err error
	switch order {
	case InOrder, PreOrder, PostOrder:
		if o.Recursive {
			err = w.recurse(root, order, 0)
		} else {
			err = w.iterate(root, order)
		}
	case LevelOrder:
		err = w.queue(root)
	case LevelOrderByLevel:
		err = w.byLevel(root)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownOrder, int(order))
	}

	return w.out, err
}

// within reports whether depth is inside the MaxDepth limit.
func (w *walker) within(depth int) bool {
	return w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth
}

// emit records node and calls OnVisit.
func (w *walker) emit(n *Node, depth int) error {
	w.out = append(w.out, n.Data)
	if err := w.opts.OnVisit(n.Data, depth); err != nil {
		return fmt.Errorf("bintree: OnVisit error at %d: %w", n.Data, err)
	}

	return nil
}

// recurse is the textbook recursive depth-first walk.
func (w *walker) recurse(n *Node, order Order, depth int) error {
	if n == nil || !w.within(depth) {
		return nil
	}
	if order == PreOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.recurse(n.Left, order, depth+1); err != nil {
		return err
	}
	if order == InOrder {
		if err := w.emit(n, depth); err != nil {
			return err
		}
	}
	if err := w.recurse(n.Right, order, depth+1); err != nil {
		return err
	}
	if order == PostOrder {
		return w.emit(n, depth)
	}

	return nil
}

// iterate performs the same walk as recurse with an explicit stack. A node
// is pushed once unexpanded; on first pop it is re-pushed expanded together
// with its children so that pops happen in the requested order.
func (w *walker) iterate(root *Node, order Order) error {
	if root == nil {
		return nil
	}
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !w.within(f.depth) {
			continue
		}
		if f.expanded {
			if err := w.emit(f.node, f.depth); err != nil {
				return err
			}
			continue
		}

		self := frame{node: f.node, depth: f.depth, expanded: true}
		// pushed in reverse of the desired pop order
		switch order {
		case PreOrder:
			stack = pushChild(stack, f.node.Right, f.depth+1)
			stack = pushChild(stack, f.node.Left, f.depth+1)
			stack = append(stack, self)
		case InOrder:
			stack = pushChild(stack, f.node.Right, f.depth+1)
			stack = append(stack, self)
			stack = pushChild(stack, f.node.Left, f.depth+1)
		case PostOrder:
			stack = append(stack, self)
			stack = pushChild(stack, f.node.Right, f.depth+1)
			stack = pushChild(stack, f.node.Left, f.depth+1)
		}
	}

	return nil
}

func pushChild(stack []frame, n *Node, depth int) []frame {
	if n == nil {
		return stack
	}

	return append(stack, frame{node: n, depth: depth})
}

// queueItem pairs a node with its depth.
type queueItem struct {
	node  *Node
	depth int
}

// queue is the single-pass FIFO breadth-first walk: each dequeued node's
// children are enqueued left then right.
func (w *walker) queue(root *Node) error {
	if root == nil {
		return nil
	}
	q := []queueItem{{node: root}}
	for len(q) > 0 {
		item := q[0]
		q = q[1:]
		if err := w.emit(item.node, item.depth); err != nil {
			return err
		}
		next := item.depth + 1
		if !w.within(next) {
			continue
		}
		if item.node.Left != nil {
			q = append(q, queueItem{node: item.node.Left, depth: next})
		}
		if item.node.Right != nil {
			q = append(q, queueItem{node: item.node.Right, depth: next})
		}
	}

	return nil
}

// byLevel recomputes the height and, for each level 1..height, descends
// from the root to emit that level left to right.
func (w *walker) byLevel(root *Node) error {
	h := Height(root)
	if w.opts.MaxDepth > 0 && w.opts.MaxDepth < h {
		h = w.opts.MaxDepth
	}
	for level := 1; level <= h; level++ {
		if err := w.level(root, level, level-1); err != nil {
			return err
		}
	}

	return nil
}

// level emits the nodes exactly level-1 edges below n; depth is the
// absolute depth of those nodes.
func (w *walker) level(n *Node, level, depth int) error {
	if n == nil {
		return nil
	}
	if level == 1 {
		return w.emit(n, depth)
	}
	if err := w.level(n.Left, level-1, depth); err != nil {
		return err
	}

	return w.level(n.Right, level-1, depth)
}

// mustTraverse runs Traverse without options, which cannot fail.
func (t *Tree) mustTraverse(order Order) []int {
	out, _ := Traverse(t.Root, order)

	return out
}

// InOrder returns the keys of t in in-order.
func (t *Tree) InOrder() []int { return t.mustTraverse(InOrder) }

// PreOrder returns the keys of t in pre-order.
func (t *Tree) PreOrder() []int { return t.mustTraverse(PreOrder) }

// PostOrder returns the keys of t in post-order.
func (t *Tree) PostOrder() []int { return t.mustTraverse(PostOrder) }

// LevelOrder returns the keys of t breadth-first, using a queue.
func (t *Tree) LevelOrder() []int { return t.mustTraverse(LevelOrder) }

// LevelOrderByLevel returns the keys of t breadth-first, one descent per level.
func (t *Tree) LevelOrderByLevel() []int { return t.mustTraverse(LevelOrderByLevel) }

// Height returns the height of t.
func (t *Tree) Height() int { return Height(t.Root) }
