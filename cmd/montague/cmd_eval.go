package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vic/montague/pkg/formula"
	"github.com/vic/montague/pkg/interpreter"
)

var evalWorld string

var evalCmd = &cobra.Command{
	Use:   "eval [formula...]",
	Short: "Evaluate formulas against the world model",
	Long: `Evaluates each formula against the world model and prints its truth
value. Every argument is one formula; with no arguments, formulas are read
from standard input one per line. Formulas are beta-reduced first.

Example:
  montague eval 'Good(j)' 'Ax.Man(x) -> Human(x)'`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalWorld, "world", "w", "", "World model file (overrides config)")
}

func runEval(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				inputs = append(inputs, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no formulas to evaluate")
	}

	formulas := make([]formula.Formula, len(inputs))
	for i, input := range inputs {
		f, err := formula.ParseFormula(input)
		if err != nil {
			return fmt.Errorf("parse error in %q: %w", input, err)
		}
		formulas[i] = formula.Simplify(f)
	}

	path := cfg.World.Path
	if evalWorld != "" {
		path = evalWorld
	}
	model, err := loadWorld(path)
	if err != nil {
		return err
	}

	results, err := interpreter.EvaluateAll(cmd.Context(), model, formulas, cfg.Eval.Workers)
	if err != nil {
		return err
	}
	logger.Debug("evaluated formulas", zap.Int("count", len(results)), zap.Int("workers", cfg.Eval.Workers))

	for i, ok := range results {
		if len(results) == 1 {
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %t\n", inputs[i], ok)
	}
	return nil
}
