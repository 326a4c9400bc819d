// Package bintree defines the node and tree types, traversal orders,
// functional options and sentinel errors of the binary tree package.
package bintree

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for tree construction, queries and traversal.
var (
	// ErrInvalidStructure is returned when a parent array does not describe
	// a single rooted tree (no root, several roots, out-of-range parent, cycle).
	ErrInvalidStructure = errors.New("bintree: invalid parent-array structure")

	// ErrEmptyTree is returned when a query needs a root and there is none.
	ErrEmptyTree = errors.New("bintree: tree is empty")

	// ErrKeyNotFound is returned by Tree.LCA when a queried key is absent.
	ErrKeyNotFound = errors.New("bintree: key not found")

	// ErrNotBST is returned by Tree.Validate when BST ordering is violated.
	ErrNotBST = errors.New("bintree: tree is not a binary search tree")

	// ErrUnknownOrder is returned for an undefined traversal Order.
	ErrUnknownOrder = errors.New("bintree: unknown traversal order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bintree: invalid option supplied")
)

// rootMarker is the parent-array sentinel marking the root.
const rootMarker = -1

// Node is a single tree vertex. Data is fixed at creation; Left and Right
// are exclusively owned by this node and nil when absent.
type Node struct {
	Data  int
	Left  *Node
	Right *Node
}

// NewNode returns a leaf holding data.
func NewNode(data int) *Node {
	return &Node{Data: data}
}

// Tree owns the node graph reachable from Root. A nil Root is an empty tree.
type Tree struct {
	Root *Node
}

// New returns a Tree rooted at root (which may be nil).
func New(root *Node) *Tree {
	return &Tree{Root: root}
}

// Order selects a traversal order.
type Order int

const (
	// InOrder visits left subtree, node, right subtree.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
	// LevelOrder visits breadth-first with a FIFO queue.
	LevelOrder
	// LevelOrderByLevel visits breadth-first by re-descending from the root
	// once per level.
	LevelOrderByLevel
)

var orderNames = [...]string{
	InOrder:           "inorder",
	PreOrder:          "preorder",
	PostOrder:         "postorder",
	LevelOrder:        "levelorder",
	LevelOrderByLevel: "bylevel",
}

// String returns the lower-case name of o.
func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}

	return orderNames[o]
}

// ParseOrder maps a name produced by Order.String (case-insensitive,
// dashes and underscores ignored) back to its Order.
func ParseOrder(name string) (Order, error) {
	norm := strings.NewReplacer("-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(name)))
	for i, n := range orderNames {
		if n == norm {
			return Order(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Option configures Traverse via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*TraverseOptions)

// TraverseOptions holds parameters and callbacks for Traverse.
type TraverseOptions struct {
	// OnVisit is called for every emitted node with its key and depth
	// (root depth 0). Returning an error aborts the traversal.
	OnVisit func(data, depth int) error

	// MaxDepth, if > 0, limits traversal to the first MaxDepth levels
	// (depths 0..MaxDepth-1). 0 disables the limit.
	MaxDepth int

	// Recursive selects the recursive strategy for depth-first orders
	// instead of the default explicit-stack iteration.
	Recursive bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns TraverseOptions with a no-op hook, no depth limit
// and iterative depth-first traversal.
func DefaultOptions() TraverseOptions {
	return TraverseOptions{
		OnVisit:   func(int, int) error { return nil },
		MaxDepth:  0,
		Recursive: false,
	}
}

// WithOnVisit registers a callback run for every emitted node.
func WithOnVisit(fn func(data, depth int) error) Option {
	return func(o *TraverseOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits traversal to the first d levels.
//
//	d > 0: visit levels 1..d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *TraverseOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithRecursive selects recursive depth-first traversal.
func WithRecursive() Option {
	return func(o *TraverseOptions) {
		o.Recursive = true
	}
}
