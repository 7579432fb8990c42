package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vic/montague/pkg/formula"
)

var typeCmd = &cobra.Command{
	Use:   "type [type]",
	Short: "Parse a semantic type and print its full and concise forms",
	Long: `Parses a type such as <e, <e, t>> or its abbreviation eet and prints
the full form followed by the concise form.`,
	RunE: runType,
}

func runType(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	typ, err := formula.ParseType(text)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), typ)
	fmt.Fprintln(cmd.OutOrStdout(), typ.ConciseString())
	return nil
}
