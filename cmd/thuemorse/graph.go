package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thuemorse"
	"github.com/katalvlaran/thuemorse/symbolgraph"
)

// kindSets maps --kinds values to edge kinds.
var kindSets = map[string][]symbolgraph.EdgeKind{
	"all":   symbolgraph.AllKinds,
	"slide": symbolgraph.SlideKinds,
	"morph": symbolgraph.MorphKinds,
}

// newGraphCmd walks the symbol graph breadth-first from one symbol.
func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Walk the symbol graph from a start symbol",
		Long:  `Breadth-first walk over slide edges, morph edges or both. Prints each reached symbol with its depth and the path taken.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			start, _ := cmd.Flags().GetString("start")
			kindsName, _ := cmd.Flags().GetString("kinds")
			depth, _ := cmd.Flags().GetInt("depth")

			kinds, ok := kindSets[kindsName]
			if !ok {
				return fmt.Errorf("graph: unknown --kinds %q (want all, slide or morph)", kindsName)
			}

			an, err := thuemorse.Analyze(cfg.K, thuemorse.WithLogger(log))
			if err != nil {
				return err
			}

			res, err := symbolgraph.Walk(an.Graph, start,
				symbolgraph.WithKinds(kinds...),
				symbolgraph.WithMaxDepth(depth),
				symbolgraph.WithContext(cmd.Context()),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, label := range res.Order {
				path, _ := res.PathTo(label)
				fmt.Fprintf(out, "%s %d %s\n", label, res.Depth[label], strings.Join(path, ">"))
			}
			log.Info("walk finished", "start", start, "kinds", kindsName, "reached", len(res.Order), "of", an.Graph.Len())

			return nil
		},
	}

	cmd.Flags().String("start", "A", "label of the start symbol")
	cmd.Flags().String("kinds", "all", "edge kinds to follow: all, slide, morph")
	cmd.Flags().Int("depth", 0, "maximum depth, 0 for no limit")

	return cmd
}
