package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vic/montague/pkg/formula"
)

var parseTree bool

var parseCmd = &cobra.Command{
	Use:   "parse [formula]",
	Short: "Parse a formula and print it in canonical form",
	Long: `Parses a formula and prints it in canonical bracketed form. The formula
is read from the arguments, or from standard input when none are given.

Example:
  montague parse 'x & y | z -> m'`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&parseTree, "tree", "t", false, "Also print the syntax tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	f, err := formula.ParseFormula(text)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), f)
	if parseTree {
		fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", f)
	}
	return nil
}
