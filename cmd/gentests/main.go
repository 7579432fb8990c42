package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/montague/pkg/formula"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package reduction

import (
	_ "embed"
	"testing"

	"github.com/vic/montague/cmd/gentests/helper"
)

//go:embed input.formula
var input string

//go:embed output.formula
var output string

func Test_%s_Reduction(t *testing.T) {
	helper.CheckReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_identity", "(Lx.x)(j)", "j"},
		{"002_identity_of_lambda", "(Lx.x)(Ly.P(y))", "Lz.P(z)"},

		// Currying
		{"010_nested_app", "(Lx.Ly.x & y)(a, b)", "a & b"},
		{"011_k_combinator", "(Lx.Ly.x)(a, b)", "a"},
		{"012_lambda_arg", "(LP.P(x))(Lx.x | a)", "x | a"},
		{"013_super_nested", "(LP.P(a, b))(Lx.Ly.x & y)", "a & b"},

		// Determiners
		{"020_every_child", "(LP.LQ.Ax.P(x) -> Q(x))(Lx.Child(x))", "LQ.Ay.Child(y) -> Q(y)"},
		{"021_every_child_is_good", "(LP.LQ.Ax.P(x) -> Q(x))(Lx.Child(x), (LP.P)(Lx.Good(x)))", "Ax.Child(x) -> Good(x)"},
		{"022_some_man", "(LP.LQ.Ex.P(x) & Q(x))(Lx.Man(x), Lx.Good(x))", "Ex.Man(x) & Good(x)"},

		// Shadowing
		{"030_shadowed_parameter", "(Lx.Lx.x)(a)", "Ly.y"},
		{"031_quantifier_shadow", "(Lx.P(x) & [Ex.Q(x)])(j)", "P(j) & [Ex.Q(x)]"},

		// Connectives
		{"040_negation", "(Lx.~Good(x))(j)", "~Good(j)"},
		{"041_iff", "(Lp.Lq.p <-> q)(rain, snow)", "rain <-> snow"},
		{"042_reduction_inside_connective", "(Lx.Good(x))(j) & (Lx.Bad(x))(m)", "Good(j) & Bad(m)"},

		// Normal forms
		{"050_no_redex", "Ax.Good(x) <-> ~Bad(x)", "Ax.Good(x) <-> ~Bad(x)"},
		{"051_free_application", "F(a, b)", "F(a, b)"},
	}

	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	generated := 0
	for _, tc := range tests {
		dir := filepath.Join(baseDir, tc.Name)

		// Normalize Input
		in, err := formula.ParseFormula(tc.Input)
		if err != nil {
			fmt.Printf("Error parsing input for %s: %v\n", tc.Name, err)
			continue
		}

		// Normalize Output
		out, err := formula.ParseFormula(tc.Output)
		if err != nil {
			fmt.Printf("Error parsing output for %s: %v\n", tc.Name, err)
			continue
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating %s: %v\n", dir, err)
			continue
		}
		testGo := fmt.Sprintf(testTemplate, tc.Name, tc.Name)

		os.WriteFile(filepath.Join(dir, "input.formula"), []byte(in.String()+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "output.formula"), []byte(out.String()+"\n"), 0644)
		os.WriteFile(filepath.Join(dir, "reduction_test.go"), []byte(testGo), 0644)
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
}
