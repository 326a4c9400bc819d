package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/bintree"
)

const (
	strategyIterative = "iterative"
	strategyRecursive = "recursive"
)

// warnIfNotBST logs when BST-search queries run against a non-BST tree.
func (a *app) warnIfNotBST(t *bintree.Tree) {
	if err := t.Validate(); err != nil {
		a.log.WithError(err).Warn("tree is not BST-ordered; search results may be wrong")
	}
}

func (a *app) lcaCommand() *cobra.Command {
	var (
		in       treeInput
		strategy string
	)
	cmd := &cobra.Command{
		Use:   "lca X Y",
		Short: "Print the lowest common ancestor of two keys",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseInts(args)
			if err != nil {
				return err
			}
			t, err := in.build(cmd.Flags())
			if err != nil {
				return err
			}
			a.warnIfNotBST(t)

			x, y := keys[0], keys[1]
			var n *bintree.Node
			switch strategy {
			case strategyIterative:
				if n, err = t.LCA(x, y); err != nil {
					return err
				}
			case strategyRecursive:
				for _, k := range keys {
					if !bintree.ContainsRecursive(t.Root, k) {
						return fmt.Errorf("%w: %d", bintree.ErrKeyNotFound, k)
					}
				}
				n = bintree.LCARecursive(t.Root, x, y)
			default:
				return fmt.Errorf("unknown strategy %q", strategy)
			}
			a.log.WithField("strategy", strategy).Debugf("lca(%d, %d) resolved", x, y)
			newPrinter(cmd.OutOrStdout()).Line("%s", FormatLCA(x, y, n.Data))
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringVar(&strategy, "strategy", strategyIterative, "iterative or recursive")

	return cmd
}

func (a *app) containsCommand() *cobra.Command {
	var in treeInput
	cmd := &cobra.Command{
		Use:   "contains KEY...",
		Short: "Report whether each key is in the tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseInts(args)
			if err != nil {
				return err
			}
			t, err := in.build(cmd.Flags())
			if err != nil {
				return err
			}
			a.warnIfNotBST(t)

			p := newPrinter(cmd.OutOrStdout())
			for _, k := range keys {
				p.Line("%d: %t", k, t.Contains(k))
			}
			return nil
		},
	}
	in.bind(cmd)

	return cmd
}

func (a *app) traverseCommand() *cobra.Command {
	var (
		in        treeInput
		orders    []string
		maxDepth  int
		recursive bool
	)
	cmd := &cobra.Command{
		Use:   "traverse",
		Short: "Print the tree keys in one or more traversal orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := in.build(cmd.Flags())
			if err != nil {
				return err
			}
			opts := []bintree.Option{bintree.WithMaxDepth(maxDepth)}
			if recursive {
				opts = append(opts, bintree.WithRecursive())
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, name := range orders {
				o, err := bintree.ParseOrder(name)
				if err != nil {
					return err
				}
				vals, err := bintree.Traverse(t.Root, o, opts...)
				if err != nil {
					return err
				}
				p.Line("%s: %s", o, joinInts(vals))
			}
			return nil
		},
	}
	in.bind(cmd)
	cmd.Flags().StringSliceVar(&orders, "order", []string{bintree.InOrder.String()},
		"inorder, preorder, postorder, levelorder, bylevel (repeatable)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "visit only the first N levels (0 = all)")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "use recursive depth-first traversal")

	return cmd
}

func (a *app) heightCommand() *cobra.Command {
	var in treeInput
	cmd := &cobra.Command{
		Use:   "height",
		Short: "Print the height of the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := in.build(cmd.Flags())
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).Line("%d", t.Height())
			return nil
		},
	}
	in.bind(cmd)

	return cmd
}
