package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/montague/pkg/formula"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [formula]",
	Short: "Beta-reduce a formula to normal form",
	Long: `Parses a formula, beta-reduces it and prints the normal form.

Example:
  montague simplify '(Lx.Ly.x & y)(a, b)'`,
	RunE: runSimplify,
}

func runSimplify(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	f, err := formula.ParseFormula(text)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	start := time.Now()
	reduced := formula.Simplify(f)
	logger.Debug("simplified formula",
		zap.Stringer("input", f),
		zap.Stringer("output", reduced),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), reduced)
	return nil
}
