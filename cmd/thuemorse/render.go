package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thuemorse"
	"github.com/katalvlaran/thuemorse/report"
	"github.com/katalvlaran/thuemorse/symbolgraph"
)

// defaultRenderSymbols is used when neither --length nor render_length is set.
const defaultRenderSymbols = 32

// newRenderCmd spells a sequence prefix in symbol labels.
func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Spell a Thue-Morse prefix over the symbol alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			length, _ := cmd.Flags().GetInt("length")
			if !cmd.Flags().Changed("length") && cfg.RenderLength > 0 {
				length = cfg.RenderLength
			}
			if length < 1 {
				return fmt.Errorf("render: --length must be ≥ 1, got %d", length)
			}

			an, err := thuemorse.Analyze(cfg.K,
				thuemorse.WithRenderLength(length),
				thuemorse.WithLogger(log),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prefix %s\n", an.Prefix)
			fmt.Fprintf(out, "labels %s\n", report.JoinLabels(an.Rendering))

			if sub, _ := cmd.Flags().GetBool("substitute"); sub {
				expanded, err := symbolgraph.Substitute(an.Graph, an.Rendering)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "morph  %s\n", report.JoinLabels(expanded))
			}

			return nil
		},
	}

	cmd.Flags().Int("length", defaultRenderSymbols, "number of symbols to render; overrides render_length from the config file")
	cmd.Flags().Bool("substitute", false, "also print the morph-expanded labels")

	return cmd
}
