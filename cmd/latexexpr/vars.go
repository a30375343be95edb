package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/njchilds90/latexexpr"
)

var storePath string

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "Work with a variable-store file",
}

var varsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every variable in the store file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stored, err := latexexpr.ReadVars(storePath)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(stored))
		for name := range stored {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			v := stored[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n",
				name, strconv.FormatFloat(v.Value, 'g', -1, 64), v.Unit)
		}
		return nil
	},
}

var varsSetCmd = &cobra.Command{
	Use:   "set <name> <value> [unit]",
	Short: "Insert or overwrite one variable in the store file",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number: %w", args[1], err)
		}
		unit := ""
		if len(args) == 3 {
			unit = args[2]
		}

		// A missing store is an empty one; the save rewrites wholesale.
		vars := map[string]latexexpr.Node{}
		stored, err := latexexpr.ReadVars(storePath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		for name, sv := range stored {
			vars[name] = latexexpr.NewVariable(name, sv.Value, sv.Unit)
		}
		vars[args[0]] = latexexpr.NewVariable(args[0], value, unit)
		return latexexpr.SaveVars(storePath, vars)
	},
}

func init() {
	varsCmd.PersistentFlags().StringVarP(&storePath, "file", "f", "latexexpr-vars.yaml", "variable-store file")
	varsCmd.AddCommand(varsListCmd)
	varsCmd.AddCommand(varsSetCmd)
	rootCmd.AddCommand(varsCmd)
}
