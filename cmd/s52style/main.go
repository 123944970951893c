// Command s52style compiles S-52 presentation rules into MapLibre styles.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "s52style:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "s52style",
		Short: "Compile S-52 presentation rules into MapLibre styles",
		Long: `s52style turns IHO S-52 lookup tables and color palettes into MapLibre
style documents for rendering S-57 electronic navigational charts.

The compile command builds a complete style for a vector tile source. The
tokens, symbols, and classes commands list the color palettes, the symbol
registry, and the object class coverage the compiler works from.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCompileCmd(),
		newTokensCmd(),
		newSymbolsCmd(),
		newClassesCmd(),
	)

	return root
}
