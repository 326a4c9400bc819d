// Package cli wires the lvtree console driver: a cobra command tree that
// builds binary trees from flags or YAML scenarios, runs membership, LCA and
// traversal queries, and exposes the numeric and set utilities.
package cli

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand.
type app struct {
	log      *logrus.Logger
	fs       afero.Fs
	logLevel string
}

// NewRootCommand returns the lvtree command tree reading scenario files
// from the OS filesystem.
func NewRootCommand() *cobra.Command {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{log: logrus.New(), fs: fs}

	root := &cobra.Command{
		Use:           "lvtree",
		Short:         "Binary tree construction, LCA and traversal demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log.SetLevel(lvl)
			a.log.SetOutput(cmd.ErrOrStderr())
			a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", logrus.InfoLevel.String(), "log level (trace, debug, info, warn, error)")

	root.AddCommand(
		a.demoCommand(),
		a.lcaCommand(),
		a.containsCommand(),
		a.traverseCommand(),
		a.heightCommand(),
		a.gcdCommand(),
		a.lcmCommand(),
		a.fibCommand(),
		a.unionCommand(),
	)

	return root
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, s)
		}
		out[i] = v
	}

	return out, nil
}
