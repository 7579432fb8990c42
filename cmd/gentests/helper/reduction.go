// Package helper checks generated reduction cases.
package helper

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/vic/montague/pkg/formula"
)

// CheckReduction parses inputStr, simplifies it and compares the result with
// outputStr up to the names of bound variables.
func CheckReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	t.Helper()

	expected, err := formula.ParseFormula(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	input, err := formula.ParseFormula(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	start := time.Now()
	actual := formula.Simplify(input)
	elapsed := time.Since(start)

	if formula.HasRedex(actual) {
		t.Errorf("%s: result %s still has a redex", testName, actual)
	}

	if diff := cmp.Diff(Normalize(expected), Normalize(actual)); diff != "" {
		t.Errorf("Mismatch in %s:\nInput:    %s\nExpected: %s\nActual:   %s\n(-want +got):\n%s",
			testName, input, expected, actual, diff)
	}

	t.Logf("%s: reduced in %v", testName, elapsed)
}

// Normalize renames bound variables to a canonical sequence _0, _1, ... in
// the order their binders are met. Free variables keep their names, so two
// formulas normalize equally exactly when they are alpha-equivalent.
func Normalize(f formula.Formula) formula.Formula {
	bindings := make(map[string]string)
	var idx int

	// bind renames name within body, restoring any outer binding after.
	bind := func(name string, body formula.Formula, walk func(formula.Formula) formula.Formula) (string, formula.Formula) {
		canon := fmt.Sprintf("_%d", idx)
		idx++
		old, had := bindings[name]
		bindings[name] = canon
		out := walk(body)
		if had {
			bindings[name] = old
		} else {
			delete(bindings, name)
		}
		return canon, out
	}

	var walk func(formula.Formula) formula.Formula
	walk = func(f formula.Formula) formula.Formula {
		switch v := f.(type) {
		case formula.Var:
			if name, ok := bindings[v.Name]; ok {
				return formula.Var{Name: name}
			}
			return v
		case formula.And:
			return formula.And{Left: walk(v.Left), Right: walk(v.Right)}
		case formula.Or:
			return formula.Or{Left: walk(v.Left), Right: walk(v.Right)}
		case formula.IfThen:
			return formula.IfThen{Left: walk(v.Left), Right: walk(v.Right)}
		case formula.IfAndOnlyIf:
			return formula.IfAndOnlyIf{Left: walk(v.Left), Right: walk(v.Right)}
		case formula.Not:
			return formula.Not{Operand: walk(v.Operand)}
		case formula.Call:
			return formula.Call{Caller: walk(v.Caller), Arg: walk(v.Arg)}
		case formula.Lambda:
			name, body := bind(v.Parameter, v.Body, walk)
			return formula.Lambda{Parameter: name, Body: body}
		case formula.ForAll:
			name, body := bind(v.Symbol, v.Body, walk)
			return formula.ForAll{Symbol: name, Body: body}
		case formula.Exists:
			name, body := bind(v.Symbol, v.Body, walk)
			return formula.Exists{Symbol: name, Body: body}
		default:
			return f
		}
	}
	return walk(f)
}
