package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func newSymbolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "symbols",
		Short: "List the symbols in the built-in registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s52.DefaultSymbolRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tWIDTH\tHEIGHT")
			for _, name := range reg.Names() {
				info, _ := reg.Symbol(name)
				fmt.Fprintf(w, "%s\t%.0f\t%.0f\n", name, info.Width(), info.Height())
			}
			return w.Flush()
		},
	}

	return cmd
}
