package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/numeric"
	"github.com/katalvlaran/lvtree/setops"
)

func (a *app) gcdCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd X Y",
		Short: "Print the greatest common divisor (recursive and iterative Euclid)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.Line("Recursive: Greatest Common Divisor of %d & %d is %d", v[0], v[1], numeric.GCDRecursive(v[0], v[1]))
			p.Line("Iterative: Greatest Common Divisor of %d & %d is %d", v[0], v[1], numeric.GCDIterative(v[0], v[1]))
			return nil
		},
	}
}

func (a *app) lcmCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lcm X Y",
		Short: "Print the least common multiple",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).Line("Least Common Multiple of %d & %d is %d", v[0], v[1], numeric.LCM(v[0], v[1]))
			return nil
		},
	}
}

func (a *app) fibCommand() *cobra.Command {
	var methods []string
	cmd := &cobra.Command{
		Use:   "fib N",
		Short: "Print the N-th Fibonacci number by one or more methods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseInts(args)
			if err != nil {
				return err
			}
			selected := numeric.Methods()
			if len(methods) > 0 {
				selected = selected[:0]
				for _, name := range methods {
					m, err := numeric.ParseMethod(name)
					if err != nil {
						return err
					}
					selected = append(selected, m)
				}
			}

			p := newPrinter(cmd.OutOrStdout())
			var lastErr error
			printed := 0
			for _, m := range selected {
				f, err := numeric.Fibonacci(v[0], m)
				if err != nil {
					a.log.WithField("method", m.String()).WithError(err).Warn("fibonacci failed")
					lastErr = err
					continue
				}
				p.Line("%s: %d", m, f)
				printed++
			}
			if printed == 0 {
				return lastErr
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&methods, "method", nil,
		"recursive, dp, space-optimized, fast-doubling, binet (default all)")

	return cmd
}

func (a *app) unionCommand() *cobra.Command {
	var left, right []string
	cmd := &cobra.Command{
		Use:   "union",
		Short: "Print the distinct elements of two lists, first occurrence first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			u := setops.Union(left, right)
			a.log.Debugf("union of %d and %d items has %d", len(left), len(right), len(u))
			newPrinter(cmd.OutOrStdout()).Line("%s", strings.Join(u, ", "))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&left, "a", nil, "first list, comma separated")
	cmd.Flags().StringSliceVar(&right, "b", nil, "second list, comma separated")

	return cmd
}
