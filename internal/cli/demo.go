package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtree/bintree"
	"github.com/katalvlaran/lvtree/internal/scenario"
)

func (a *app) demoCommand() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay demonstration scenarios (built-in unless --scenario is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := scenario.Default()
			if path != "" {
				var err error
				if f, err = scenario.Load(a.fs, path); err != nil {
					return err
				}
			}
			a.log.WithField("scenarios", len(f.Scenarios)).Debug("running demo")

			p := newPrinter(cmd.OutOrStdout())
			for _, s := range f.Scenarios {
				if err := a.runScenario(p, s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "scenario", "", "YAML scenario file")

	return cmd
}

// runScenario builds one tree and prints the results of its queries. LCA
// pairs are answered only when both keys are found by the matching search
// strategy; skipped pairs are logged.
func (a *app) runScenario(p *printer, s scenario.Scenario) error {
	log := a.log.WithFields(logrus.Fields{"scenario": s.Name, "kind": s.Build.Kind})
	t, err := s.Build.Tree()
	if err != nil {
		return err
	}
	orders, err := s.Orders()
	if err != nil {
		return err
	}
	if len(s.Contains) > 0 || len(s.LCA) > 0 {
		if verr := t.Validate(); verr != nil {
			log.WithError(verr).Warn("tree is not BST-ordered; search results may be wrong")
		}
	}

	p.Heading(s.Name)
	for _, k := range s.Contains {
		p.Line("Recursive: contains %d: %t", k, bintree.ContainsRecursive(t.Root, k))
		p.Line("Iterative: contains %d: %t", k, bintree.ContainsIterative(t.Root, k))
	}
	for _, pair := range s.LCA {
		x, y := pair[0], pair[1]
		if bintree.ContainsRecursive(t.Root, x) && bintree.ContainsRecursive(t.Root, y) {
			p.Line("Recursive: %s", FormatLCA(x, y, bintree.LCARecursive(t.Root, x, y).Data))
		} else {
			log.Infof("recursive: skipping LCA(%d, %d), key missing", x, y)
		}
		if bintree.ContainsIterative(t.Root, x) && bintree.ContainsIterative(t.Root, y) {
			p.Line("Iterative: %s", FormatLCA(x, y, bintree.LCAIterative(t.Root, x, y).Data))
		} else {
			log.Infof("iterative: skipping LCA(%d, %d), key missing", x, y)
		}
	}
	for _, o := range orders {
		vals, err := bintree.Traverse(t.Root, o)
		if err != nil {
			return err
		}
		p.Line("%s: %s", o, joinInts(vals))
	}
	if s.Height {
		p.Line("height: %d", t.Height())
	}
	p.Rule()

	return nil
}
