// Package formula implements the logical representation language: formula and
// type trees, their printed forms, the parser, substitution and beta reduction.
package formula

import (
	"fmt"
	"strings"
)

// Formula is a node of a logical formula tree. The set of variants is closed.
type Formula interface {
	String() string
	// ReplaceVariable returns a copy of the formula with every free
	// occurrence of name replaced by replacement.
	ReplaceVariable(name string, replacement Formula) Formula
	precedence() int
}

// Printing levels, tightest first. Binary chains associate to the right.
const (
	precAtom = iota + 1
	precAnd
	precOr
	precIfThen
	precIff
	precBinder
)

// Var is a symbol: a bound variable or a free constant.
type Var struct {
	Name string
}

// And is conjunction.
type And struct {
	Left  Formula
	Right Formula
}

// Or is disjunction.
type Or struct {
	Left  Formula
	Right Formula
}

// IfThen is material implication.
type IfThen struct {
	Left  Formula
	Right Formula
}

// IfAndOnlyIf is the biconditional.
type IfAndOnlyIf struct {
	Left  Formula
	Right Formula
}

// Not is negation.
type Not struct {
	Operand Formula
}

// Lambda binds Parameter within Body.
type Lambda struct {
	Parameter string
	Body      Formula
}

// Call applies Caller to a single argument. f(a, b) is Call{Call{f, a}, b}.
type Call struct {
	Caller Formula
	Arg    Formula
}

// ForAll is universal quantification of Symbol over Body.
type ForAll struct {
	Symbol string
	Body   Formula
}

// Exists is existential quantification of Symbol over Body.
type Exists struct {
	Symbol string
	Body   Formula
}

func (Var) precedence() int         { return precAtom }
func (Call) precedence() int        { return precAtom }
func (Not) precedence() int         { return precAtom }
func (And) precedence() int         { return precAnd }
func (Or) precedence() int          { return precOr }
func (IfThen) precedence() int      { return precIfThen }
func (IfAndOnlyIf) precedence() int { return precIff }
func (Lambda) precedence() int      { return precBinder }
func (ForAll) precedence() int      { return precBinder }
func (Exists) precedence() int      { return precBinder }

// Equal reports whether two formulas are structurally identical.
// Every variant is a comparable value struct, so == recurses through the tree.
func Equal(a, b Formula) bool {
	return a == b
}

func (v Var) String() string {
	return v.Name
}

func (a And) String() string {
	return binary(a, a.Left, "&", a.Right)
}

func (o Or) String() string {
	return binary(o, o.Left, "|", o.Right)
}

func (i IfThen) String() string {
	return binary(i, i.Left, "->", i.Right)
}

func (i IfAndOnlyIf) String() string {
	return binary(i, i.Left, "<->", i.Right)
}

func (n Not) String() string {
	return "~" + wrap(n, n.Operand, false)
}

func (l Lambda) String() string {
	return fmt.Sprintf("L%s.%s", l.Parameter, l.Body)
}

func (f ForAll) String() string {
	return fmt.Sprintf("A%s.%s", f.Symbol, f.Body)
}

func (e Exists) String() string {
	return fmt.Sprintf("E%s.%s", e.Symbol, e.Body)
}

// String prints F(x)(y) as F(x, y). A head that is not a symbol is
// parenthesised: (Lx.P(x))(j).
func (c Call) String() string {
	args := []string{c.Arg.String()}
	head := c.Caller
	for {
		inner, ok := head.(Call)
		if !ok {
			break
		}
		args = append(args, inner.Arg.String())
		head = inner.Caller
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	joined := strings.Join(args, ", ")
	if v, ok := head.(Var); ok {
		return fmt.Sprintf("%s(%s)", v.Name, joined)
	}
	return fmt.Sprintf("(%s)(%s)", head, joined)
}

func binary(parent Formula, left Formula, op string, right Formula) string {
	return fmt.Sprintf("%s %s %s", wrap(parent, left, true), op, wrap(parent, right, false))
}

// wrap brackets child when it binds more loosely than parent, or binds at the
// same level on the left of a right-associative operator.
func wrap(parent, child Formula, left bool) string {
	p, c := parent.precedence(), child.precedence()
	if c > p || (c == p && left && c != precAtom) {
		return "[" + child.String() + "]"
	}
	return child.String()
}
