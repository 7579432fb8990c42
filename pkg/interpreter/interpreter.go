// Package interpreter evaluates formulas against a finite world model.
package interpreter

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vic/montague/pkg/formula"
)

// UnboundVariableError is returned when a symbol has no denotation in the
// model or in any enclosing quantifier.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// UninterpretableFormError is returned for a subformula that has no
// denotation of the kind its context needs, such as a lambda abstraction
// where a truth value is expected.
type UninterpretableFormError struct {
	Formula formula.Formula
	Reason  string
}

func (e *UninterpretableFormError) Error() string {
	return fmt.Sprintf("cannot interpret %s: %s", e.Formula, e.Reason)
}

// Interpret returns the truth value of f in model m.
func Interpret(f formula.Formula, m *WorldModel) (bool, error) {
	return truth(f, m, nil)
}

// Evaluate returns the denotation of f in model m. Unlike Interpret it
// accepts formulas denoting individuals or predicates.
func Evaluate(f formula.Formula, m *WorldModel) (Value, error) {
	return eval(f, m, nil)
}

func truth(f formula.Formula, m *WorldModel, s *scope) (bool, error) {
	value, err := eval(f, m, s)
	if err != nil {
		return false, err
	}
	t, ok := value.(Truth)
	if !ok {
		return false, &UninterpretableFormError{Formula: f, Reason: fmt.Sprintf("denotes %s, not a truth value", value)}
	}
	return bool(t), nil
}

// both evaluates the two operands of a connective. Neither side is skipped,
// so an unbound symbol on the right is reported even when the left decides.
func both(left, right formula.Formula, m *WorldModel, s *scope) (bool, bool, error) {
	l, err := truth(left, m, s)
	if err != nil {
		return false, false, err
	}
	r, err := truth(right, m, s)
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}

func eval(f formula.Formula, m *WorldModel, s *scope) (Value, error) {
	switch t := f.(type) {
	case formula.Var:
		value, ok := s.lookup(m, t.Name)
		if !ok {
			return nil, &UnboundVariableError{Name: t.Name}
		}
		return value, nil

	case formula.And:
		l, r, err := both(t.Left, t.Right, m, s)
		return Truth(l && r), err

	case formula.Or:
		l, r, err := both(t.Left, t.Right, m, s)
		return Truth(l || r), err

	case formula.IfThen:
		l, r, err := both(t.Left, t.Right, m, s)
		return Truth(!l || r), err

	case formula.IfAndOnlyIf:
		l, r, err := both(t.Left, t.Right, m, s)
		return Truth(l == r), err

	case formula.Not:
		operand, err := truth(t.Operand, m, s)
		return Truth(!operand), err

	case formula.Call:
		arg, err := eval(t.Arg, m, s)
		if err != nil {
			return nil, err
		}
		caller, err := eval(t.Caller, m, s)
		if err != nil {
			return nil, err
		}
		pred, ok := caller.(*Predicate)
		if !ok {
			return nil, &UninterpretableFormError{Formula: t.Caller, Reason: fmt.Sprintf("denotes %s, not a predicate", caller)}
		}
		individual, ok := arg.(Individual)
		if !ok {
			return nil, &UninterpretableFormError{Formula: t.Arg, Reason: fmt.Sprintf("denotes %s, not an individual", arg)}
		}
		return pred.Apply(individual), nil

	case formula.ForAll:
		for _, individual := range m.Individuals {
			ok, err := truth(t.Body, m, s.bind(t.Symbol, individual))
			if err != nil {
				return nil, err
			}
			if !ok {
				return Truth(false), nil
			}
		}
		return Truth(true), nil

	case formula.Exists:
		for _, individual := range m.Individuals {
			ok, err := truth(t.Body, m, s.bind(t.Symbol, individual))
			if err != nil {
				return nil, err
			}
			if ok {
				return Truth(true), nil
			}
		}
		return Truth(false), nil

	case formula.Lambda:
		return nil, &UninterpretableFormError{Formula: t, Reason: "a lambda abstraction denotes a function, not a truth value"}

	default:
		return nil, &UninterpretableFormError{Formula: f, Reason: fmt.Sprintf("unknown formula %T", f)}
	}
}

// EvaluateAll interprets independent formulas concurrently against the same
// model and returns their truth values in input order. workers bounds the
// number of concurrent evaluations; zero or less means no bound. The first
// failure cancels the remaining evaluations.
func EvaluateAll(ctx context.Context, m *WorldModel, formulas []formula.Formula, workers int) ([]bool, error) {
	results := make([]bool, len(formulas))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, f := range formulas {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := Interpret(f, m)
			if err != nil {
				return fmt.Errorf("formula %d (%s): %w", i, f, err)
			}
			results[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
