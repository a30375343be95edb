package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/latexexpr"
)

var defCommand string

var defCmd = &cobra.Command{
	Use:   "def <name> <body>",
	Short: "Print a LaTeX variable definition line",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		line, err := latexexpr.ToLaTeXVariable(args[0], args[1], latexexpr.DefCommand(defCommand))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		return nil
	},
}

func init() {
	defCmd.Flags().StringVar(&defCommand, "command", "def", "LaTeX command: def, newcommand or renewcommand")
	rootCmd.AddCommand(defCmd)
}
