package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/thuemorse"
	"github.com/katalvlaran/thuemorse/config"
	"github.com/katalvlaran/thuemorse/report"
)

// newAlphabetCmd lists every symbol with its references.
func newAlphabetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "List the distinct K-bit windows with their neighbors and children",
		Long:  `Scans a Thue-Morse prefix long enough to hold every K-bit window and prints each symbol: bits, label, forward neighbors, morphed bits and children.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			an, err := thuemorse.Analyze(cfg.K,
				thuemorse.WithRenderLength(cfg.RenderLength),
				thuemorse.WithLogger(log),
			)
			if err != nil {
				return err
			}
			log.Info("alphabet ready", "k", cfg.K, "symbols", an.Alphabet.Len(), "format", cfg.Format)

			out := cmd.OutOrStdout()
			switch cfg.Format {
			case config.FormatYAML:
				return report.WriteYAML(out, an)
			case config.FormatMermaid:
				_, err = out.Write([]byte(report.Mermaid(an.Graph)))
				return err
			default:
				return report.WriteText(out, an)
			}
		},
	}

	cmd.Flags().Int("render", config.DefaultRenderLength, "also render this many symbols of the sequence prefix")
	cmd.Flags().String("format", config.DefaultFormat, "output format: text, yaml, mermaid")

	return cmd
}
