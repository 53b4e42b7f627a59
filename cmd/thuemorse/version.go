package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/thuemorse"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of thuemorse",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "thuemorse version %s\n", thuemorse.Version)
		},
	}
}
