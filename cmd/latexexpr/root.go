package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "latexexpr",
	Short: "Inspect and edit latexexpr variable-store files",
	Long: `latexexpr is a helper for document builds that use the latexexpr library:
it lists and patches the variable-store files that carry computed quantities
between build snippets, and emits \def lines for LaTeX documents.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
