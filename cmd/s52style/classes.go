package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/s52/pkg/s52"
)

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the object classes covered by the lookup rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			compiler, err := s52.NewCompiler()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACRONYM\tOBJL")
			for _, acronym := range compiler.ObjectClasses() {
				if code, ok := s52.ObjectClassCode(acronym); ok {
					fmt.Fprintf(w, "%s\t%d\n", acronym, code)
				} else {
					fmt.Fprintf(w, "%s\t-\n", acronym)
				}
			}
			return w.Flush()
		},
	}

	return cmd
}
