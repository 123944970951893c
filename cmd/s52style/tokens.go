package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func newTokensCmd() *cobra.Command {
	var modeName string

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "List the color tokens of a display mode's palette",
		Example: `  s52style tokens
  s52style tokens --mode night`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, err := s52.NewCompiler()
			if err != nil {
				return err
			}

			mode := compiler.Config().Mode
			if modeName != "" {
				mode, err = s52.ParseMode(modeName)
				if err != nil {
					return err
				}
			}
			pal := compiler.Palette(mode)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			for _, token := range pal.Tokens() {
				color, _ := pal.Color(token)
				fmt.Fprintf(w, "%s\t%s\n", token, color)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&modeName, "mode", "m", "", "display mode: day, dusk, or night")

	return cmd
}
