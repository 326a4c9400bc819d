package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvtree/bintree"
)

var errTreeInput = errors.New("exactly one of --insert, --level-order or --parents is required")

// treeInput holds the mutually exclusive tree construction flags.
type treeInput struct {
	insert     []int
	levelOrder []int
	parents    []int
}

func (in *treeInput) register(fs *pflag.FlagSet) {
	fs.IntSliceVar(&in.insert, "insert", nil, "keys inserted in BST order, e.g. 20,8,22")
	fs.IntSliceVar(&in.levelOrder, "level-order", nil, "values placed positionally in level order")
	fs.IntSliceVar(&in.parents, "parents", nil, "parent array; -1 marks the root (use --parents=-1,0,0)")
}

// bind registers the flags on cmd and makes them mutually exclusive.
func (in *treeInput) bind(cmd *cobra.Command) {
	in.register(cmd.Flags())
	cmd.MarkFlagsMutuallyExclusive("insert", "level-order", "parents")
	cmd.MarkFlagsOneRequired("insert", "level-order", "parents")
}

// build constructs the tree described by whichever flag was set.
func (in *treeInput) build(fs *pflag.FlagSet) (*bintree.Tree, error) {
	switch {
	case fs.Changed("insert"):
		return bintree.FromKeys(in.insert...), nil
	case fs.Changed("level-order"):
		return bintree.FromLevelOrder(in.levelOrder), nil
	case fs.Changed("parents"):
		return bintree.FromParents(in.parents)
	default:
		return nil, errTreeInput
	}
}
